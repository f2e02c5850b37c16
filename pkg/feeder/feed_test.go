package feeder

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawhub.xyz/pet-feeder-service/pkg/common"
	"pawhub.xyz/pet-feeder-service/pkg/models"
	_ "pawhub.xyz/pet-feeder-service/pkg/testing"
)

func historyRows(t *testing.T, f *Feeder) []models.HistoryEntry {
	t.Helper()
	var rows []models.HistoryEntry
	require.NoError(t, f.Db.Conn.Find(&rows).Error)
	return rows
}

func alertRows(t *testing.T, f *Feeder) []models.Alert {
	t.Helper()
	var rows []models.Alert
	require.NoError(t, f.Db.Conn.Find(&rows).Error)
	return rows
}

func alertTypes(alerts []models.Alert) map[models.AlertType]int {
	counts := map[models.AlertType]int{}
	for _, a := range alerts {
		counts[a.Type]++
	}
	return counts
}

func TestDispenseSuccess(t *testing.T) {
	common.SetTestLoggerNop()

	f := newTestFeeder(t)
	setTestSetting(t, f, models.SettingCurrentWeight, "500")

	newWeight, err := f.Feed.Dispense(2, "Manual", 50)
	require.NoError(t, err)
	assert.Equal(t, 450, newWeight)

	assert.Equal(t, "450", testSetting(t, f, models.SettingCurrentWeight))

	rows := historyRows(t, f)
	require.Len(t, rows, 1)
	assert.Equal(t, "Success", rows[0].Status)
	assert.Equal(t, "Manual", rows[0].Type)
	assert.Equal(t, 2, rows[0].Rounds)

	counts := alertTypes(alertRows(t, f))
	assert.Equal(t, 1, counts[models.AlertTypeInfo])
	assert.Equal(t, 0, counts[models.AlertTypeWarning], "no warning above the threshold")
}

func TestDispenseLowFeedWarning(t *testing.T) {
	common.SetTestLoggerNop()

	f := newTestFeeder(t)
	setTestSetting(t, f, models.SettingCurrentWeight, "120")

	newWeight, err := f.Feed.Dispense(1, "Manual", 50)
	require.NoError(t, err)
	assert.Equal(t, 70, newWeight)

	counts := alertTypes(alertRows(t, f))
	assert.Equal(t, 1, counts[models.AlertTypeInfo])
	assert.Equal(t, 1, counts[models.AlertTypeWarning], "dropping below the threshold raises a warning")
}

func TestDispenseExactStock(t *testing.T) {
	common.SetTestLoggerNop()

	f := newTestFeeder(t)
	setTestSetting(t, f, models.SettingCurrentWeight, "50")

	newWeight, err := f.Feed.Dispense(1, "Manual", 50)
	require.NoError(t, err)
	assert.Equal(t, 0, newWeight, "stock equal to the request is sufficient")
}

func TestDispenseInsufficient(t *testing.T) {
	common.SetTestLoggerNop()

	f := newTestFeeder(t)
	setTestSetting(t, f, models.SettingCurrentWeight, "40")

	currentWeight, err := f.Feed.Dispense(5, "Manual", 50)
	require.ErrorIs(t, err, ErrInsufficientFeed)
	assert.Equal(t, 40, currentWeight, "refused dispense echoes the unchanged weight")

	assert.Equal(t, "40", testSetting(t, f, models.SettingCurrentWeight), "weight must not change")

	rows := historyRows(t, f)
	require.Len(t, rows, 1)
	assert.Equal(t, "Failed (Low Feed)", rows[0].Status)

	counts := alertTypes(alertRows(t, f))
	assert.Equal(t, 1, counts[models.AlertTypeError])
}

func TestRecalibrate(t *testing.T) {
	common.SetTestLoggerNop()

	f := newTestFeeder(t)
	setTestSetting(t, f, models.SettingCurrentWeight, "37")

	weight, err := f.Feed.Recalibrate()
	require.NoError(t, err)
	assert.Equal(t, WeightResetValue, weight)

	assert.Equal(t, "1000", testSetting(t, f, models.SettingCurrentWeight))
	assert.NotEmpty(t, testSetting(t, f, models.SettingLastCalibration))

	rows := historyRows(t, f)
	require.Len(t, rows, 1)
	assert.Equal(t, "Recalibrate", rows[0].Type)
	assert.Equal(t, "Success", rows[0].Status)
	assert.Equal(t, 0, rows[0].Rounds)
}

// The conditional UPDATE diverges from the naive read-check-write sequence on
// purpose: under concurrency the naive form loses updates, letting two
// requests both pass the sufficiency check against the same stale read. With
// the atomic form, N concurrent requests for w grams against stock S must
// leave exactly S - w*k where k is the number that succeeded.
func TestDispenseConcurrentNoLostUpdates(t *testing.T) {
	common.SetTestLoggerNop()

	f := newTestFeeder(t)
	setTestSetting(t, f, models.SettingCurrentWeight, "450")

	const workers = 10
	const perDispense = 100

	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.Feed.Dispense(1, "Manual", perDispense)
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
		} else {
			require.ErrorIs(t, err, ErrInsufficientFeed)
		}
	}

	assert.Equal(t, 4, successes, "450g admits exactly four 100g dispenses")
	assert.Equal(t, "50", testSetting(t, f, models.SettingCurrentWeight),
		"final stock must equal initial minus the successful decrements, never below zero")
}
