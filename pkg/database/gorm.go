package database

import (
	"log"
	"os"
	"time"

	"ai-helper-be/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InMemoryDSN is the sqlite DSN used when no connection string is configured.
// The shared cache keeps every connection on the same in-memory database.
const InMemoryDSN = "file::memory:?cache=shared"

func getLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second, // Slow SQL threshold
			LogLevel:                  logger.Warn, // Log level
			IgnoreRecordNotFoundError: true,        // Ignore ErrRecordNotFound error for logger
			ParameterizedQueries:      true,        // Don't include params in the SQL log
			Colorful:                  true,
		},
	)
}

func configureConnectionPool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	// SetMaxIdleConns sets the maximum number of connections in the idle connection pool.
	sqlDB.SetMaxIdleConns(10)

	// SetMaxOpenConns sets the maximum number of open connections to the database.
	sqlDB.SetMaxOpenConns(100)

	// SetConnMaxLifetime sets the maximum amount of time a connection may be reused.
	sqlDB.SetConnMaxLifetime(time.Hour)

	return nil
}

// NewGormDBFromDSN opens the backing store. An empty DSN selects the embedded
// in-memory database, anything else is treated as a postgres connection string.
func NewGormDBFromDSN(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if dsn == "" {
		dialector = sqlite.Open(InMemoryDSN)
	} else {
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: getLogger(),
	})
	if err != nil {
		return nil, err
	}

	if err := configureConnectionPool(db); err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.PasswordResetToken{},
		&model.Project{},
		&model.AIRequest{},
		&model.FileRecord{},
		&model.UsageLimit{},
		&model.AIModel{},
		&model.ChatMessage{},
		&model.MarketingIdea{},
		&model.Subscription{},
	)
}
