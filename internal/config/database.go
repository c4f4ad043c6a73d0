package config

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB connects to the relational store selected by DB_DRIVER.
func OpenDB(c *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch c.DBDriver {
	case "postgres":
		dialector = postgres.New(postgres.Config{DSN: c.DBDSN})
	default:
		dialector = mysql.Open(c.DBDSN)
	}

	gormConfig := &gorm.Config{TranslateError: true}
	if c.Env != "prod" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, errors.Wrapf(err, "connect to %s", c.DBDriver)
	}
	Logger.Info("Database connected", zap.String("driver", c.DBDriver))
	return db, nil
}
