package repositories

import (
	"smarthome-server/db"
	"smarthome-server/entities"
)

type deviceUsageGormRepository struct {
	db db.Database
}

func NewDeviceUsageGormRepository(database db.Database) DeviceUsageRepository {
	return &deviceUsageGormRepository{db: database}
}

func (r *deviceUsageGormRepository) Create(usage *entities.DeviceUsage) error {
	return r.db.GetDB().Create(usage).Error
}

func (r *deviceUsageGormRepository) GetAll() ([]entities.DeviceUsage, error) {
	var usage []entities.DeviceUsage
	err := r.db.GetDB().Find(&usage).Error
	return usage, err
}

func (r *deviceUsageGormRepository) GetByDeviceID(deviceID uint) ([]entities.DeviceUsage, error) {
	var usage []entities.DeviceUsage
	err := r.db.GetDB().Where("device_id = ?", deviceID).Find(&usage).Error
	return usage, err
}
