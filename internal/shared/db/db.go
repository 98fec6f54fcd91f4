package db

import (
	"log"
	"strings"
	"time"

	"social-feed/configs"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Store struct{ DB *gorm.DB }

// Open connects using DATABASE_URL when set ("postgres://..." or
// "sqlite://path"), falling back to the discrete DB_* vars. TranslateError
// is on so unique-index violations surface as gorm.ErrDuplicatedKey.
func Open(cfg *configs.Config) *Store {
	dialector := pickDialector(cfg)

	var last error
	var g *gorm.DB
	for i := 0; i < 8; i++ {
		g, last = gorm.Open(dialector, &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Warn),
			TranslateError: true,
		})
		if last == nil {
			sqlDB, _ := g.DB()
			sqlDB.SetMaxOpenConns(40)
			sqlDB.SetMaxIdleConns(10)
			sqlDB.SetConnMaxLifetime(30 * time.Minute)
			return &Store{DB: g}
		}
		time.Sleep(time.Duration(1<<i) * time.Second)
	}
	log.Fatalf("db open failed: %v", last)
	return nil
}

func pickDialector(cfg *configs.Config) gorm.Dialector {
	url := cfg.DatabaseURL
	switch {
	case strings.HasPrefix(url, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(url, "sqlite://"))
	case strings.HasPrefix(url, "postgres://"):
		return postgres.Open(url)
	default:
		return postgres.Open(cfg.DSN())
	}
}

// OpenMemory is for tests: an in-memory sqlite store with the same gorm
// configuration as production.
func OpenMemory() (*Store, error) {
	g, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	return &Store{DB: g}, nil
}
