package feeder

import (
	"testing"
	"time"

	"pawhub.xyz/pet-feeder-service/pkg/db"
	"pawhub.xyz/pet-feeder-service/pkg/models"
)

func newTestFeeder(t *testing.T) *Feeder {
	t.Helper()

	dbInstance, err := db.NewInstance(db.UseMemorySqliteDialector())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	f := &Feeder{Db: *dbInstance}
	f.WithServices(ServiceOpts{
		Schedule: f.GetISchedule(),
		Feed:     f.GetIFeed(),
		Device:   f.GetIDevice(),
		Ledger:   f.GetILedger(),
		Auth:     f.GetIAuth(),
	})
	return f
}

func setTestSetting(t *testing.T, f *Feeder, key, value string) {
	t.Helper()
	err := f.Db.Conn.Model(&models.Setting{}).
		Where("setting_key = ?", key).
		Update("setting_value", value).Error
	if err != nil {
		t.Fatalf("failed to set setting %q: %v", key, err)
	}
}

func testSetting(t *testing.T, f *Feeder, key string) string {
	t.Helper()
	value, err := f.getSetting(key)
	if err != nil {
		t.Fatalf("failed to read setting %q: %v", key, err)
	}
	return value
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
