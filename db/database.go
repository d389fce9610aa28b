package db

import "gorm.io/gorm"

// Database hands out the shared gorm handle. Each request borrows a
// connection from the pool for the duration of its store calls.
type Database interface {
	GetDB() *gorm.DB
}

type GormDatabase struct {
	DB *gorm.DB
}

func (g *GormDatabase) GetDB() *gorm.DB { return g.DB }
