package feeder

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
	"pawhub.xyz/pet-feeder-service/pkg/common"
	"pawhub.xyz/pet-feeder-service/pkg/models"
)

// appendHistory records a feed event. The ledger is append-only; rows are
// never mutated outside factory reset.
func (f *Feeder) appendHistory(tx *gorm.DB, rounds int, feedType, status string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFeederCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryLedger),
	)

	now := f.now()
	entry := models.HistoryEntry{
		FeedDate: now.Format("2006-01-02"),
		FeedTime: now.Format("15:04:05"),
		Rounds:   rounds,
		Type:     feedType,
		Status:   status,
	}

	if err := tx.Create(&entry).Error; err != nil {
		return err
	}

	logger.Info("History entry recorded", zap.Reflect("entry", entry))
	return nil
}

func (f *Feeder) appendAlert(tx *gorm.DB, alertType models.AlertType, message string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFeederCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryLedger),
	)

	alert := models.Alert{
		Type:    alertType,
		Message: message,
	}

	if err := tx.Create(&alert).Error; err != nil {
		return err
	}

	logger.Info("Alert recorded", zap.Reflect("alert", alert))
	return nil
}

func (f *Feeder) searchHistory(search string) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	pattern := "%" + search + "%"
	err := f.Db.Conn.
		Where("feed_date LIKE ? OR feed_time LIKE ? OR type LIKE ? OR status LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("created_at desc").
		Find(&entries).Error
	return entries, err
}

func (f *Feeder) recentAlerts(limit int) ([]models.Alert, error) {
	var alerts []models.Alert
	err := f.Db.Conn.
		Order("created_at desc").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}

type ILedgerImpl struct {
	feeder *Feeder
}

func (il *ILedgerImpl) SearchHistory(search string) ([]models.HistoryEntry, error) {
	return il.feeder.searchHistory(search)
}

func (il *ILedgerImpl) RecentAlerts(limit int) ([]models.Alert, error) {
	return il.feeder.recentAlerts(limit)
}

func (f *Feeder) GetILedger() ILedger {
	return &ILedgerImpl{feeder: f}
}
