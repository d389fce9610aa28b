package repositories

import (
	"smarthome-server/db"
	"smarthome-server/entities"
)

type securityEventGormRepository struct {
	db db.Database
}

func NewSecurityEventGormRepository(database db.Database) SecurityEventRepository {
	return &securityEventGormRepository{db: database}
}

func (r *securityEventGormRepository) Create(event *entities.SecurityEvent) error {
	return r.db.GetDB().Create(event).Error
}

func (r *securityEventGormRepository) GetAll() ([]entities.SecurityEvent, error) {
	var events []entities.SecurityEvent
	err := r.db.GetDB().Find(&events).Error
	return events, err
}

func (r *securityEventGormRepository) GetByDeviceID(deviceID uint) ([]entities.SecurityEvent, error) {
	var events []entities.SecurityEvent
	err := r.db.GetDB().Where("device_id = ?", deviceID).Find(&events).Error
	return events, err
}
