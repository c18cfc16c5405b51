// Package db provides the SQLite-backed credential store.
package db

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mikkon/tiktok-oauth-webhook/internal/db/models"
)

// InitDB opens the SQLite database and runs migrations.
func InitDB(dbPath string, debug bool) (*gorm.DB, error) {
	level := gormlogger.Silent
	if debug {
		level = gormlogger.Info
	}

	database, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(&models.Token{}); err != nil {
		return nil, err
	}

	return database, nil
}
