package feeder

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"pawhub.xyz/pet-feeder-service/pkg/common"
	"pawhub.xyz/pet-feeder-service/pkg/models"
)

var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "Sun",
	time.Monday:    "Mon",
	time.Tuesday:   "Tue",
	time.Wednesday: "Wed",
	time.Thursday:  "Thu",
	time.Friday:    "Fri",
	time.Saturday:  "Sat",
}

// scheduleDueOn decides whether a schedule's day rule matches the given
// weekday abbreviation. Start time is deliberately not compared here: the
// server filters by day, the device matches the returned start_time against
// its own clock.
func scheduleDueOn(s *models.Schedule, day string) bool {
	switch s.Frequency {
	case models.FrequencyDaily:
		return true
	case models.FrequencyWeekdays:
		switch day {
		case "Mon", "Tue", "Wed", "Thu", "Fri":
			return true
		}
		return false
	case models.FrequencyWeekends:
		return day == "Sat" || day == "Sun"
	case models.FrequencyCustom:
		for _, custom := range strings.Split(s.CustomDays, ",") {
			if strings.TrimSpace(custom) == day {
				return true
			}
		}
		return false
	default:
		// unrecognized frequency never matches
		return false
	}
}

func (f *Feeder) listSchedules() ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := f.Db.Conn.
		Where("is_active = ?", true).
		Order("created_at desc").
		Find(&schedules).Error
	return schedules, err
}

func (f *Feeder) createSchedule(input *models.Schedule) (uint, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFeederCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySchedule),
	)

	schedule := models.Schedule{
		IntervalType: input.IntervalType,
		StartTime:    input.StartTime,
		Rounds:       input.Rounds,
		Frequency:    input.Frequency,
		CustomDays:   input.CustomDays,
		IsActive:     true,
	}

	if err := f.Db.Conn.Create(&schedule).Error; err != nil {
		return 0, err
	}

	logger.Info("Schedule created", zap.Reflect("schedule", schedule))
	return schedule.ID, nil
}

func (f *Feeder) updateSchedule(id uint, input *models.Schedule) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFeederCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySchedule),
	)

	err := f.Db.Conn.Model(&models.Schedule{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"interval_type": input.IntervalType,
			"start_time":    input.StartTime,
			"rounds":        input.Rounds,
			"frequency":     input.Frequency,
			"custom_days":   input.CustomDays,
		}).Error
	if err != nil {
		return err
	}

	logger.Info("Schedule updated", zap.Uint("id", id))
	return nil
}

func (f *Feeder) deleteSchedule(id uint) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFeederCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySchedule),
	)

	if err := f.Db.Conn.Delete(&models.Schedule{}, id).Error; err != nil {
		return err
	}

	logger.Info("Schedule deleted", zap.Uint("id", id))
	return nil
}

// dueSchedules is the activation evaluator: the subset of active schedules
// whose day rule matches now's weekday.
func (f *Feeder) dueSchedules(now time.Time) ([]models.Schedule, error) {
	var schedules []models.Schedule
	if err := f.Db.Conn.Where("is_active = ?", true).Find(&schedules).Error; err != nil {
		return nil, err
	}

	day := weekdayNames[now.Weekday()]

	due := make([]models.Schedule, 0, len(schedules))
	for _, s := range schedules {
		if scheduleDueOn(&s, day) {
			due = append(due, s)
		}
	}
	return due, nil
}

type IScheduleImpl struct {
	feeder *Feeder
}

func (is *IScheduleImpl) ListSchedules() ([]models.Schedule, error) {
	return is.feeder.listSchedules()
}

func (is *IScheduleImpl) CreateSchedule(input *models.Schedule) (uint, error) {
	return is.feeder.createSchedule(input)
}

func (is *IScheduleImpl) UpdateSchedule(id uint, input *models.Schedule) error {
	return is.feeder.updateSchedule(id, input)
}

func (is *IScheduleImpl) DeleteSchedule(id uint) error {
	return is.feeder.deleteSchedule(id)
}

func (is *IScheduleImpl) DueSchedules(now time.Time) ([]models.Schedule, error) {
	return is.feeder.dueSchedules(now)
}

func (f *Feeder) GetISchedule() ISchedule {
	return &IScheduleImpl{feeder: f}
}
