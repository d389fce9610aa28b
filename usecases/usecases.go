package usecases

import (
	"errors"
	"smarthome-server/entities"
	"smarthome-server/repositories"

	"gorm.io/gorm"
)

// RecordUseCase covers the create and list operations for all five record
// types. Every create path checks its references explicitly before touching
// the store; the database constraints are only a backstop.
type RecordUseCase struct {
	UserRepo     repositories.UserRepository
	DeviceRepo   repositories.DeviceRepository
	EventRepo    repositories.SecurityEventRepository
	FeedbackRepo repositories.FeedbackRepository
	UsageRepo    repositories.DeviceUsageRepository
}

func NewRecordUseCase(
	userRepo repositories.UserRepository,
	deviceRepo repositories.DeviceRepository,
	eventRepo repositories.SecurityEventRepository,
	feedbackRepo repositories.FeedbackRepository,
	usageRepo repositories.DeviceUsageRepository,
) *RecordUseCase {
	return &RecordUseCase{
		UserRepo:     userRepo,
		DeviceRepo:   deviceRepo,
		EventRepo:    eventRepo,
		FeedbackRepo: feedbackRepo,
		UsageRepo:    usageRepo,
	}
}

// ============= User Use Cases =============

// CreateUser validates and persists a new user.
func (uc *RecordUseCase) CreateUser(user *entities.User) error {
	if user.Name == "" {
		return required("name")
	}
	if user.Email == "" {
		return required("email")
	}
	if user.Password == "" {
		return required("password")
	}
	if user.HouseArea <= 0 {
		return &ValidationError{Field: "house_area", Reason: "must be greater than zero"}
	}

	// Duplicate email gets a clean conflict instead of a raw constraint error
	_, err := uc.UserRepo.GetByEmail(user.Email)
	switch {
	case err == nil:
		return ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	return uc.UserRepo.Create(user)
}

// GetAllUsers retrieves all users.
func (uc *RecordUseCase) GetAllUsers() ([]entities.User, error) {
	return uc.UserRepo.GetAll()
}

// GetUserHouseArea returns the house area recorded for one user.
func (uc *RecordUseCase) GetUserHouseArea(id uint) (float64, error) {
	user, err := uc.UserRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return user.HouseArea, nil
}

// GetAllHouseAreas returns (id, name, house_area) for every user.
func (uc *RecordUseCase) GetAllHouseAreas() ([]entities.UserHouseArea, error) {
	return uc.UserRepo.GetHouseAreas()
}

func (uc *RecordUseCase) userExists(id uint) error {
	if _, err := uc.UserRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (uc *RecordUseCase) deviceExists(id uint) error {
	if _, err := uc.DeviceRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDeviceNotFound
		}
		return err
	}
	return nil
}

// ============= Device Use Cases =============

// CreateDevice validates and persists a new device.
func (uc *RecordUseCase) CreateDevice(device *entities.Device) error {
	if device.Name == "" {
		return required("name")
	}
	if device.Type == "" {
		return required("type")
	}
	if device.OwnerID == 0 {
		return required("owner_id")
	}
	if err := uc.userExists(device.OwnerID); err != nil {
		return err
	}
	return uc.DeviceRepo.Create(device)
}

// GetAllDevices retrieves all devices.
func (uc *RecordUseCase) GetAllDevices() ([]entities.Device, error) {
	return uc.DeviceRepo.GetAll()
}

// ============= SecurityEvent Use Cases =============

// CreateSecurityEvent validates and persists a new security event.
func (uc *RecordUseCase) CreateSecurityEvent(event *entities.SecurityEvent) error {
	if event.EventType == "" {
		return required("event_type")
	}
	if event.Description == "" {
		return required("description")
	}
	if event.DeviceID == 0 {
		return required("device_id")
	}
	if err := uc.deviceExists(event.DeviceID); err != nil {
		return err
	}
	return uc.EventRepo.Create(event)
}

// GetAllSecurityEvents retrieves all security events.
func (uc *RecordUseCase) GetAllSecurityEvents() ([]entities.SecurityEvent, error) {
	return uc.EventRepo.GetAll()
}

// ============= Feedback Use Cases =============

// CreateFeedback validates and persists a new feedback entry.
func (uc *RecordUseCase) CreateFeedback(feedback *entities.Feedback) error {
	if feedback.UserID == 0 {
		return required("user_id")
	}
	if feedback.FeedbackText == "" {
		return required("feedback_text")
	}
	if err := uc.userExists(feedback.UserID); err != nil {
		return err
	}
	return uc.FeedbackRepo.Create(feedback)
}

// GetAllFeedback retrieves all feedback entries.
func (uc *RecordUseCase) GetAllFeedback() ([]entities.Feedback, error) {
	return uc.FeedbackRepo.GetAll()
}

// ============= DeviceUsage Use Cases =============

// CreateDeviceUsage validates and persists a new usage record.
func (uc *RecordUseCase) CreateDeviceUsage(usage *entities.DeviceUsage) error {
	if usage.DeviceID == 0 {
		return required("device_id")
	}
	if usage.UserID == 0 {
		return required("user_id")
	}
	if usage.UsageStart == "" {
		return required("usage_start")
	}
	if usage.Duration < 0 {
		return &ValidationError{Field: "duration", Reason: "must not be negative"}
	}
	if err := uc.deviceExists(usage.DeviceID); err != nil {
		return err
	}
	if err := uc.userExists(usage.UserID); err != nil {
		return err
	}
	return uc.UsageRepo.Create(usage)
}

// GetAllDeviceUsage retrieves all usage records.
func (uc *RecordUseCase) GetAllDeviceUsage() ([]entities.DeviceUsage, error) {
	return uc.UsageRepo.GetAll()
}
