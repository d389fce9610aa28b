package usecases

import (
	"errors"
	"testing"

	"smarthome-server/db"
	"smarthome-server/entities"
	"smarthome-server/repositories"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestUseCase wires a RecordUseCase over an in-memory SQLite store.
func newTestUseCase(t *testing.T) *RecordUseCase {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(
		&entities.User{},
		&entities.Device{},
		&entities.SecurityEvent{},
		&entities.Feedback{},
		&entities.DeviceUsage{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	database := &db.GormDatabase{DB: gdb}
	return NewRecordUseCase(
		repositories.NewUserGormRepository(database),
		repositories.NewDeviceGormRepository(database),
		repositories.NewSecurityEventGormRepository(database),
		repositories.NewFeedbackGormRepository(database),
		repositories.NewDeviceUsageGormRepository(database),
	)
}

func validUser() *entities.User {
	return &entities.User{Name: "Ada", Email: "ada@example.com", Password: "secret", HouseArea: 95}
}

func TestCreateUserValidation(t *testing.T) {
	tests := []struct {
		name  string
		user  entities.User
		field string
	}{
		{"missing name", entities.User{Email: "a@b.c", Password: "x", HouseArea: 50}, "name"},
		{"missing email", entities.User{Name: "Ada", Password: "x", HouseArea: 50}, "email"},
		{"missing password", entities.User{Name: "Ada", Email: "a@b.c", HouseArea: 50}, "password"},
		{"zero house area", entities.User{Name: "Ada", Email: "a@b.c", Password: "x"}, "house_area"},
		{"negative house area", entities.User{Name: "Ada", Email: "a@b.c", Password: "x", HouseArea: -10}, "house_area"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(t)
			err := uc.CreateUser(&tt.user)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, verr.Field)
			}
		})
	}
}

func TestCreateUserSucceedsAndList(t *testing.T) {
	uc := newTestUseCase(t)

	user := validUser()
	if err := uc.CreateUser(user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected an assigned id")
	}

	users, err := uc.GetAllUsers()
	if err != nil {
		t.Fatalf("GetAllUsers failed: %v", err)
	}
	if len(users) != 1 || users[0].Email != user.Email {
		t.Errorf("expected the created user in the listing, got %+v", users)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	uc := newTestUseCase(t)

	if err := uc.CreateUser(validUser()); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	dup := validUser()
	dup.Name = "Someone Else"
	if err := uc.CreateUser(dup); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestGetUserHouseArea(t *testing.T) {
	uc := newTestUseCase(t)

	user := validUser()
	if err := uc.CreateUser(user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	area, err := uc.GetUserHouseArea(user.ID)
	if err != nil {
		t.Fatalf("GetUserHouseArea failed: %v", err)
	}
	if area != 95 {
		t.Errorf("expected house area 95, got %v", area)
	}

	if _, err := uc.GetUserHouseArea(9999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for missing user, got %v", err)
	}
}

func TestCreateDeviceChecksOwner(t *testing.T) {
	uc := newTestUseCase(t)

	err := uc.CreateDevice(&entities.Device{Name: "Lamp", Type: "light", OwnerID: 42})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for dangling owner, got %v", err)
	}

	user := validUser()
	if err := uc.CreateUser(user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	device := &entities.Device{Name: "Lamp", Type: "light", OwnerID: user.ID}
	if err := uc.CreateDevice(device); err != nil {
		t.Fatalf("CreateDevice failed: %v", err)
	}
	if device.ID == 0 {
		t.Error("expected an assigned id")
	}
}

func TestCreateSecurityEventChecksDevice(t *testing.T) {
	uc := newTestUseCase(t)

	err := uc.CreateSecurityEvent(&entities.SecurityEvent{
		EventType: "motion", Description: "motion detected", DeviceID: 7,
	})
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("expected ErrDeviceNotFound, got %v", err)
	}

	user := validUser()
	if err := uc.CreateUser(user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	device := &entities.Device{Name: "Camera", Type: "security", OwnerID: user.ID}
	if err := uc.CreateDevice(device); err != nil {
		t.Fatalf("CreateDevice failed: %v", err)
	}

	event := &entities.SecurityEvent{EventType: "motion", Description: "motion detected", DeviceID: device.ID}
	if err := uc.CreateSecurityEvent(event); err != nil {
		t.Fatalf("CreateSecurityEvent failed: %v", err)
	}

	events, err := uc.GetAllSecurityEvents()
	if err != nil {
		t.Fatalf("GetAllSecurityEvents failed: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("expected 1 event, got %d", len(events))
	}
}

func TestCreateFeedbackChecksUser(t *testing.T) {
	uc := newTestUseCase(t)

	err := uc.CreateFeedback(&entities.Feedback{UserID: 42, FeedbackText: "great system"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	user := validUser()
	if err := uc.CreateUser(user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if err := uc.CreateFeedback(&entities.Feedback{UserID: user.ID, FeedbackText: "great system"}); err != nil {
		t.Fatalf("CreateFeedback failed: %v", err)
	}
}

func TestCreateDeviceUsage(t *testing.T) {
	uc := newTestUseCase(t)

	user := validUser()
	if err := uc.CreateUser(user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	device := &entities.Device{Name: "Lamp", Type: "light", OwnerID: user.ID}
	if err := uc.CreateDevice(device); err != nil {
		t.Fatalf("CreateDevice failed: %v", err)
	}

	err := uc.CreateDeviceUsage(&entities.DeviceUsage{
		DeviceID: device.ID, UserID: user.ID,
		UsageStart: "2026-01-10T18:00:00Z", Duration: -5,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "duration" {
		t.Fatalf("expected duration validation error, got %v", err)
	}

	err = uc.CreateDeviceUsage(&entities.DeviceUsage{
		DeviceID: 999, UserID: user.ID,
		UsageStart: "2026-01-10T18:00:00Z", Duration: 60,
	})
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("expected ErrDeviceNotFound, got %v", err)
	}

	usage := &entities.DeviceUsage{
		DeviceID: device.ID, UserID: user.ID,
		UsageStart: "2026-01-10T18:00:00Z", UsageEnd: "2026-01-10T18:01:00Z", Duration: 60,
	}
	if err := uc.CreateDeviceUsage(usage); err != nil {
		t.Fatalf("CreateDeviceUsage failed: %v", err)
	}

	all, err := uc.GetAllDeviceUsage()
	if err != nil {
		t.Fatalf("GetAllDeviceUsage failed: %v", err)
	}
	if len(all) != 1 || all[0].Duration != 60 {
		t.Errorf("expected the stored usage record, got %+v", all)
	}
}
