package db

import (
	"fmt"
	"log"
	"os"
	"smarthome-server/entities"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultSQLitePath is where the store lives when no Postgres settings are present.
const DefaultSQLitePath = "./smart_home.db"

// Connect opens the relational store and runs migrations.
//
// When DB_URL or DB_HOST is set the service talks to Postgres (hosted
// deployments); otherwise it falls back to a file-resident SQLite database,
// created on first start.
func Connect() (Database, error) {
	var (
		db  *gorm.DB
		err error
	)

	gormCfg := &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Info),
		PrepareStmt: true,
	}

	if os.Getenv("DB_URL") != "" || os.Getenv("DB_HOST") != "" {
		dsn, dsnErr := postgresDSN()
		if dsnErr != nil {
			return nil, dsnErr
		}
		log.Println("Connecting to Postgres...")
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
	} else {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = DefaultSQLitePath
		}
		log.Printf("Connecting to SQLite store at %s...", path)
		db, err = gorm.Open(sqlite.Open(path+"?_busy_timeout=5000"), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	if db.Dialector.Name() == "sqlite" {
		// SQLite only supports one writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(0)
	}

	log.Println("Database connection established successfully!")

	log.Println("Running database migrations...")
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Device{},
		&entities.SecurityEvent{},
		&entities.Feedback{},
		&entities.DeviceUsage{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("Database migrations completed successfully!")

	return &GormDatabase{DB: db}, nil
}

func postgresDSN() (string, error) {
	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		dsn := dbURL
		// Hosted Postgres requires SSL; add it when the URL omits it
		if !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
		return dsn, nil
	}

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbPassword == "" || dbName == "" {
		return "", fmt.Errorf("missing required database configuration: DB_URL or (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	sslMode := "require"
	if dbHost == "localhost" || dbHost == "127.0.0.1" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		dbHost, dbUser, dbPassword, dbName, dbPort, sslMode), nil
}
