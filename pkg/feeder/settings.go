package feeder

import (
	"strconv"

	"gorm.io/gorm"
	"pawhub.xyz/pet-feeder-service/pkg/common"
	"pawhub.xyz/pet-feeder-service/pkg/models"
)

func (f *Feeder) getSetting(key string) (string, error) {
	var setting models.Setting
	if err := f.Db.Conn.First(&setting, "setting_key = ?", key).Error; err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (f *Feeder) setSetting(tx *gorm.DB, key, value string) error {
	return tx.Model(&models.Setting{}).
		Where("setting_key = ?", key).
		Update("setting_value", value).Error
}

// AllSettings returns the raw device_settings table as a key/value map.
func (f *Feeder) AllSettings() (map[string]string, error) {
	var rows []models.Setting
	if err := f.Db.Conn.Find(&rows).Error; err != nil {
		return nil, err
	}

	settings := common.Reducer(rows, func(acc map[string]string, row models.Setting) map[string]string {
		acc[row.Key] = row.Value
		return acc
	}, make(map[string]string, len(rows)))
	return settings, nil
}

// atoiOrZero parses stored setting values, which are not type enforced.
// Garbage reads as zero rather than surfacing a parse error.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
