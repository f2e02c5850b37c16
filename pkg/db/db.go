package db

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	constant "pawhub.xyz/pet-feeder-service/pkg/common"
	"pawhub.xyz/pet-feeder-service/pkg/models"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "1234"
)

// DefaultSettings are the factory values every deployment starts from. Factory
// reset writes the same values back.
var DefaultSettings = map[string]string{
	models.SettingCurrentWeight:   "0",
	models.SettingBatteryLevel:    "0",
	models.SettingIsConnected:     "0",
	models.SettingLastHeartbeat:   "",
	models.SettingLastCalibration: "",
	models.SettingWifiSSID:        "Not Set",
}

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

// GetInstance returns the process-wide singleton. The server uses this; tests
// use NewInstance for an isolated database per test.
func GetInstance(dialector gorm.Dialector) *DB {
	once.Do(func() {
		var err error
		instance, err = NewInstance(dialector)
		if err != nil {
			log.Fatal("Failed to open database: ", err)
		}
	})
	return instance
}

func NewInstance(dialector gorm.Dialector) (*DB, error) {
	var logger = constant.GetLogger()

	conn, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("db: connect: %w", err)
	}

	logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

	d := &DB{Conn: conn}

	err = d.Conn.AutoMigrate(
		&models.Setting{},
		&models.Schedule{},
		&models.HistoryEntry{},
		&models.Alert{},
		&models.User{},
	)
	if err != nil {
		return nil, fmt.Errorf("db: migrate: %w", err)
	}

	logger.Info("Database migration completed")

	if err := d.Conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("db: enable sqlite foreign key support: %w", err)
	}

	if err := d.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		return nil, fmt.Errorf("db: set sqlite journal mode: %w", err)
	}

	// sqlite permits a single writer; a pool of one avoids SQLITE_BUSY under
	// concurrent request handlers.
	if sqlDB, err := d.Conn.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := d.Seed(); err != nil {
		return nil, err
	}

	logger.Info("Database seeding completed")

	return d, nil
}

// Seed inserts the default settings rows and the admin user if missing.
// Existing rows are left untouched.
func (d *DB) Seed() error {
	for key, value := range DefaultSettings {
		setting := models.Setting{Key: key, Value: value}
		if err := d.Conn.Where(models.Setting{Key: key}).FirstOrCreate(&setting).Error; err != nil {
			return fmt.Errorf("db: seed setting %q: %w", key, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("db: hash default admin password: %w", err)
	}

	admin := models.User{Username: DefaultAdminUsername, PasswordHash: string(hash)}
	if err := d.Conn.Where(models.User{Username: DefaultAdminUsername}).FirstOrCreate(&admin).Error; err != nil {
		return fmt.Errorf("db: seed admin user: %w", err)
	}

	return nil
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(constant.EnvKeyFeederDBPath); !found {
		dbPath = "feeder.db"
	}
	return sqlite.Open(dbPath + "?_busy_timeout=5000")
}

// UseMemorySqliteDialector names each in-memory database uniquely so that
// every NewInstance call gets its own isolated store while the connection
// pool still shares the cache.
func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString()))
}
