package feeder

import (
	"time"

	"pawhub.xyz/pet-feeder-service/pkg/db"
	"pawhub.xyz/pet-feeder-service/pkg/models"
)

// DefaultLowFeedThreshold is the stock level (grams) below which a successful
// dispense also raises a Warning alert.
const DefaultLowFeedThreshold = 100

// HeartbeatStaleWindow bounds how old the last heartbeat may be for the
// device to still count as online.
const HeartbeatStaleWindow = 30 * time.Second

// WeightResetValue is the hopper weight written by recalibration.
const WeightResetValue = 1000

// TimestampLayout is the wire format for heartbeat and calibration stamps,
// inherited from the device firmware.
const TimestampLayout = "2006-01-02 15:04:05"

type ISchedule interface {
	ListSchedules() ([]models.Schedule, error)
	CreateSchedule(input *models.Schedule) (uint, error)
	UpdateSchedule(id uint, input *models.Schedule) error
	DeleteSchedule(id uint) error
	DueSchedules(now time.Time) ([]models.Schedule, error)
}

type IFeed interface {
	Dispense(rounds int, feedType string, weightDispensed int) (int, error)
	Recalibrate() (int, error)
}

type IDevice interface {
	Status(now time.Time) (*models.DeviceStatus, error)
	ApplyTelemetry(report *models.TelemetryReport) ([]string, error)
	FactoryReset() error
}

type ILedger interface {
	SearchHistory(search string) ([]models.HistoryEntry, error)
	RecentAlerts(limit int) ([]models.Alert, error)
}

type IAuth interface {
	Login(username, password string) (*models.User, error)
	ChangePassword(username, oldPassword, newPassword string) error
}

type Feeder struct {
	Db db.DB

	// LowFeedThreshold defaults to DefaultLowFeedThreshold when zero.
	LowFeedThreshold int

	// Clock defaults to time.Now; tests pin it.
	Clock func() time.Time

	Schedule ISchedule
	Feed     IFeed
	Device   IDevice
	Ledger   ILedger
	Auth     IAuth
}

type ServiceOpts struct {
	Schedule ISchedule
	Feed     IFeed
	Device   IDevice
	Ledger   ILedger
	Auth     IAuth
}

func (f *Feeder) WithServices(opts ServiceOpts) *Feeder {
	if opts.Schedule != nil {
		f.Schedule = opts.Schedule
	}
	if opts.Feed != nil {
		f.Feed = opts.Feed
	}
	if opts.Device != nil {
		f.Device = opts.Device
	}
	if opts.Ledger != nil {
		f.Ledger = opts.Ledger
	}
	if opts.Auth != nil {
		f.Auth = opts.Auth
	}
	return f
}

// Now reads the injected clock, falling back to wall time.
func (f *Feeder) Now() time.Time {
	if f.Clock != nil {
		return f.Clock()
	}
	return time.Now()
}

func (f *Feeder) now() time.Time { return f.Now() }

func (f *Feeder) lowFeedThreshold() int {
	if f.LowFeedThreshold > 0 {
		return f.LowFeedThreshold
	}
	return DefaultLowFeedThreshold
}
