package feeder

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"pawhub.xyz/pet-feeder-service/pkg/common"
	"pawhub.xyz/pet-feeder-service/pkg/db"
	"pawhub.xyz/pet-feeder-service/pkg/models"
)

// status reduces the settings table into a DeviceStatus. The stored
// connection flag is only a hint: the heartbeat timestamp is authoritative,
// and a heartbeat older than the staleness window forces offline.
func (f *Feeder) status(now time.Time) (*models.DeviceStatus, error) {
	settings, err := f.AllSettings()
	if err != nil {
		return nil, err
	}

	status := &models.DeviceStatus{
		Online:        settings[models.SettingIsConnected] == "1",
		Weight:        atoiOrZero(settings[models.SettingCurrentWeight]),
		Battery:       atoiOrZero(settings[models.SettingBatteryLevel]),
		LastHeartbeat: settings[models.SettingLastHeartbeat],
	}

	if status.LastHeartbeat == "" {
		status.Online = false
		return status, nil
	}

	lastBeat, err := time.ParseInLocation(TimestampLayout, status.LastHeartbeat, now.Location())
	if err != nil || now.Sub(lastBeat) > HeartbeatStaleWindow {
		status.Online = false
	}

	return status, nil
}

// applyTelemetry writes a device report into the settings table. The
// connection flag and heartbeat are always refreshed; weight and battery only
// when reported. A dispensed count additionally lands in the history ledger.
func (f *Feeder) applyTelemetry(report *models.TelemetryReport) ([]string, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFeederCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDevice),
	)

	conn := f.Db.Conn
	updated := make([]string, 0, 2)

	if report.Weight != nil {
		if err := f.setSetting(conn, models.SettingCurrentWeight, fmt.Sprintf("%d", *report.Weight)); err != nil {
			return nil, err
		}
		updated = append(updated, "weight")
	}

	if report.Battery != nil {
		if err := f.setSetting(conn, models.SettingBatteryLevel, fmt.Sprintf("%d", *report.Battery)); err != nil {
			return nil, err
		}
		updated = append(updated, "battery")
	}

	if err := f.setSetting(conn, models.SettingIsConnected, "1"); err != nil {
		return nil, err
	}
	if err := f.setSetting(conn, models.SettingLastHeartbeat, f.now().Format(TimestampLayout)); err != nil {
		return nil, err
	}

	if report.Dispensed != nil {
		feedType := report.Type
		if feedType == "" {
			feedType = "Scheduled"
		}

		if err := f.appendHistory(conn, *report.Dispensed, feedType, "Success"); err != nil {
			return nil, err
		}
		if err := f.appendAlert(conn, models.AlertTypeInfo,
			fmt.Sprintf("Device dispensed %d rounds automatically.", *report.Dispensed)); err != nil {
			return nil, err
		}
	}

	logger.Info("Telemetry applied", zap.Strings("updated", updated))
	return updated, nil
}

// factoryReset truncates schedules, history and alerts, restores the default
// settings rows and resets the admin password.
func (f *Feeder) factoryReset() error {
	logger := common.GetLoggerWith(
		common.LoggerNameFeederCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDevice),
	)

	err := f.Db.Conn.Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := wipe.Delete(&models.Schedule{}).Error; err != nil {
			return err
		}
		if err := wipe.Delete(&models.HistoryEntry{}).Error; err != nil {
			return err
		}
		if err := wipe.Delete(&models.Alert{}).Error; err != nil {
			return err
		}

		for key, value := range db.DefaultSettings {
			if err := f.setSetting(tx, key, value); err != nil {
				return err
			}
		}

		hash, err := hashPassword(db.DefaultAdminPassword)
		if err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("username = ?", db.DefaultAdminUsername).
			Update("password_hash", hash).Error
	})
	if err != nil {
		return err
	}

	logger.Info("Factory reset completed")
	return nil
}

type IDeviceImpl struct {
	feeder *Feeder
}

func (id *IDeviceImpl) Status(now time.Time) (*models.DeviceStatus, error) {
	return id.feeder.status(now)
}

func (id *IDeviceImpl) ApplyTelemetry(report *models.TelemetryReport) ([]string, error) {
	return id.feeder.applyTelemetry(report)
}

func (id *IDeviceImpl) FactoryReset() error {
	return id.feeder.factoryReset()
}

func (f *Feeder) GetIDevice() IDevice {
	return &IDeviceImpl{feeder: f}
}
