package database

import (
	"database/sql"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pipecrm/internal/config"
)

type Postgres struct {
	Gorm *gorm.DB
	SQL  *sql.DB
}

func ConnectPostgres(cfg config.DBConfig) (*Postgres, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqldb, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqldb.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return &Postgres{Gorm: gdb, SQL: sqldb}, nil
}

func (p *Postgres) Close() error {
	if p == nil || p.SQL == nil {
		return nil
	}
	return p.SQL.Close()
}
