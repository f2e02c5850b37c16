package models

import "time"

type AlertType string

const (
	AlertTypeInfo    AlertType = "Info"
	AlertTypeWarning AlertType = "Warning"
	AlertTypeError   AlertType = "Error"
)

type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekdays Frequency = "weekdays"
	FrequencyWeekends Frequency = "weekends"
	FrequencyCustom   Frequency = "custom"
)

// Setting keys pre-seeded into the device_settings table.
const (
	SettingCurrentWeight   = "current_weight"
	SettingBatteryLevel    = "battery_level"
	SettingIsConnected     = "is_connected"
	SettingLastHeartbeat   = "last_heartbeat"
	SettingLastCalibration = "last_calibration"
	SettingWifiSSID        = "wifi_ssid"
)

// Setting is a single row of the device_settings key/value table. Values are
// string encoded; callers parse on read.
type Setting struct {
	Key       string `gorm:"primaryKey;column:setting_key"`
	Value     string `gorm:"column:setting_value"`
	UpdatedAt time.Time
}

func (Setting) TableName() string { return "device_settings" }

type Schedule struct {
	ID           uint   `gorm:"primaryKey"`
	IntervalType string `gorm:"type:varchar(10)"`
	StartTime    string `gorm:"type:varchar(5)"` // HH:MM
	Rounds       int    // -1 means free feed, kept as-is
	Frequency    Frequency
	CustomDays   string // comma-separated weekday abbreviations, used iff frequency=custom
	IsActive     bool   `gorm:"default:true"`
	CreatedAt    time.Time
}

type HistoryEntry struct {
	ID        uint   `gorm:"primaryKey"`
	FeedDate  string `gorm:"type:varchar(10)"` // YYYY-MM-DD
	FeedTime  string `gorm:"type:varchar(8)"`  // HH:MM:SS
	Rounds    int
	Type      string // "Manual" / "Scheduled" / "Recalibrate"
	Status    string // "Success" / "Failed (Low Feed)"
	CreatedAt time.Time
}

func (HistoryEntry) TableName() string { return "history" }

type Alert struct {
	ID        uint      `gorm:"primaryKey"`
	Type      AlertType `gorm:"column:alert_type;type:varchar(10);check:alert_type IN ('Info','Warning','Error')"`
	Message   string
	IsRead    bool `gorm:"default:false"`
	CreatedAt time.Time
}

// DeviceStatus is the typed snapshot derived from the device_settings rows.
type DeviceStatus struct {
	Online        bool   `json:"online"`
	Weight        int    `json:"weight"`
	Battery       int    `json:"battery"`
	LastHeartbeat string `json:"last_heartbeat"`
}

// TelemetryReport is a device-originated status update. Nil fields were not
// reported.
type TelemetryReport struct {
	Weight    *int
	Battery   *int
	Dispensed *int
	Type      string
}

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex"`
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
