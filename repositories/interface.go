package repositories

import "smarthome-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id uint) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	GetAll() ([]entities.User, error)
	GetHouseAreas() ([]entities.UserHouseArea, error)
}

type DeviceRepository interface {
	Create(device *entities.Device) error
	GetByID(id uint) (*entities.Device, error)
	GetAll() ([]entities.Device, error)
	GetByOwnerID(ownerID uint) ([]entities.Device, error)
}

type SecurityEventRepository interface {
	Create(event *entities.SecurityEvent) error
	GetAll() ([]entities.SecurityEvent, error)
	GetByDeviceID(deviceID uint) ([]entities.SecurityEvent, error)
}

type FeedbackRepository interface {
	Create(feedback *entities.Feedback) error
	GetAll() ([]entities.Feedback, error)
	GetByUserID(userID uint) ([]entities.Feedback, error)
}

type DeviceUsageRepository interface {
	Create(usage *entities.DeviceUsage) error
	GetAll() ([]entities.DeviceUsage, error)
	GetByDeviceID(deviceID uint) ([]entities.DeviceUsage, error)
}

// ReportRepository runs the aggregate queries over the joined tables.
type ReportRepository interface {
	UsageSummary() ([]entities.DeviceUsageSummary, error)
	UsageTimeDistribution() ([]entities.DeviceUsageTimeslot, error)
	UsageByHouseArea() ([]entities.HouseAreaUsage, error)
}
