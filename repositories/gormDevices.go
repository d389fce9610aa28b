package repositories

import (
	"smarthome-server/db"
	"smarthome-server/entities"
)

type deviceGormRepository struct {
	db db.Database
}

func NewDeviceGormRepository(database db.Database) DeviceRepository {
	return &deviceGormRepository{db: database}
}

func (r *deviceGormRepository) Create(device *entities.Device) error {
	return r.db.GetDB().Create(device).Error
}

func (r *deviceGormRepository) GetByID(id uint) (*entities.Device, error) {
	var device entities.Device
	err := r.db.GetDB().Where("id = ?", id).First(&device).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *deviceGormRepository) GetAll() ([]entities.Device, error) {
	var devices []entities.Device
	err := r.db.GetDB().Find(&devices).Error
	return devices, err
}

func (r *deviceGormRepository) GetByOwnerID(ownerID uint) ([]entities.Device, error) {
	var devices []entities.Device
	err := r.db.GetDB().Where("owner_id = ?", ownerID).Find(&devices).Error
	return devices, err
}
