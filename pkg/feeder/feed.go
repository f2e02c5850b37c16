package feeder

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"pawhub.xyz/pet-feeder-service/pkg/common"
	"pawhub.xyz/pet-feeder-service/pkg/models"
)

// ErrInsufficientFeed signals that the hopper holds less than the requested
// dispense weight. Dispense returns it together with the unchanged stock.
var ErrInsufficientFeed = errors.New("feeder: insufficient feed")

// dispense decrements the hopper weight and records the outcome.
//
// The decrement is a single conditional UPDATE so that two concurrent
// dispense requests can never both pass the sufficiency check against the
// same stale read (lost update). Zero rows affected means the stock was
// short; the weight row is left untouched.
func (f *Feeder) dispense(rounds int, feedType string, weightDispensed int) (int, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFeederCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryFeed),
	)

	conn := f.Db.Conn

	res := conn.Model(&models.Setting{}).
		Where("setting_key = ? AND CAST(setting_value AS INTEGER) >= ?",
			models.SettingCurrentWeight, weightDispensed).
		Update("setting_value", gorm.Expr("CAST(setting_value AS INTEGER) - ?", weightDispensed))
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected == 0 {
		value, err := f.getSetting(models.SettingCurrentWeight)
		if err != nil {
			return 0, err
		}
		currentWeight := atoiOrZero(value)

		logger.Warn("Dispense refused, insufficient feed",
			zap.Int("rounds", rounds),
			zap.Int("weight_dispensed", weightDispensed),
			zap.Int("current_weight", currentWeight))

		// The failure trail is recorded outside any transaction with the
		// refused decrement: it must survive even though nothing was changed.
		if err := f.appendHistory(conn, rounds, feedType, "Failed (Low Feed)"); err != nil {
			logger.Error("History append failed after refused dispense", zap.Error(err))
		}
		if err := f.appendAlert(conn, models.AlertTypeError,
			fmt.Sprintf("Dispense failed: Insufficient feed for %d rounds.", rounds)); err != nil {
			logger.Error("Alert append failed after refused dispense", zap.Error(err))
		}

		return currentWeight, ErrInsufficientFeed
	}

	value, err := f.getSetting(models.SettingCurrentWeight)
	if err != nil {
		return 0, err
	}
	newWeight := atoiOrZero(value)

	logger.Info("Dispense succeeded",
		zap.Int("rounds", rounds),
		zap.Int("weight_dispensed", weightDispensed),
		zap.Int("new_weight", newWeight))

	if err := f.appendHistory(conn, rounds, feedType, "Success"); err != nil {
		logger.Error("History append failed after dispense", zap.Error(err))
	}
	if err := f.appendAlert(conn, models.AlertTypeInfo,
		fmt.Sprintf("Successfully dispensed %d rounds.", rounds)); err != nil {
		logger.Error("Alert append failed after dispense", zap.Error(err))
	}

	if newWeight < f.lowFeedThreshold() {
		if err := f.appendAlert(conn, models.AlertTypeWarning,
			fmt.Sprintf("Feed supply critically low (<%dg).", f.lowFeedThreshold())); err != nil {
			logger.Error("Low feed warning append failed", zap.Error(err))
		}
	}

	return newWeight, nil
}

// recalibrate resets the weight sensor to the fixed reset value and stamps
// the calibration time. There is no failure path.
func (f *Feeder) recalibrate() (int, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFeederCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryFeed),
	)

	now := f.now().Format(TimestampLayout)

	err := f.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if err := f.setSetting(tx, models.SettingCurrentWeight, fmt.Sprintf("%d", WeightResetValue)); err != nil {
			return err
		}
		if err := f.setSetting(tx, models.SettingLastCalibration, now); err != nil {
			return err
		}
		if err := f.appendHistory(tx, 0, "Recalibrate", "Success"); err != nil {
			return err
		}
		return f.appendAlert(tx, models.AlertTypeInfo,
			fmt.Sprintf("Sensor recalibrated. Weight reset to %dg.", WeightResetValue))
	})
	if err != nil {
		return 0, err
	}

	logger.Info("Recalibration completed", zap.Int("weight", WeightResetValue))
	return WeightResetValue, nil
}

type IFeedImpl struct {
	feeder *Feeder
}

func (ifd *IFeedImpl) Dispense(rounds int, feedType string, weightDispensed int) (int, error) {
	return ifd.feeder.dispense(rounds, feedType, weightDispensed)
}

func (ifd *IFeedImpl) Recalibrate() (int, error) {
	return ifd.feeder.recalibrate()
}

func (f *Feeder) GetIFeed() IFeed {
	return &IFeedImpl{feeder: f}
}
