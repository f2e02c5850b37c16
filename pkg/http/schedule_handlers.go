package http

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"pawhub.xyz/pet-feeder-service/pkg/common"
	"pawhub.xyz/pet-feeder-service/pkg/models"
)

type ScheduleRequest struct {
	Interval   string `json:"interval"`
	Time       string `json:"time"`
	Rounds     int    `json:"rounds"`
	Frequency  string `json:"frequency"`
	CustomDays string `json:"customDays"`
}

var startTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

var scheduleRequestSchema = z.Struct(z.Shape{
	"Interval":   z.String().OneOf([]string{"2h", "3h", "4h", "6h", "8h", "10h", "12h", "free"}).Required(),
	"Time":       z.String().Match(startTimePattern).Required(),
	"Rounds":     z.Int().GTE(-1).Required(),
	"Frequency":  z.String().OneOf([]string{"daily", "weekdays", "weekends", "custom"}).Required(),
	"CustomDays": z.String().Optional(),
})

func (req *ScheduleRequest) toModel() *models.Schedule {
	return &models.Schedule{
		IntervalType: req.Interval,
		StartTime:    req.Time,
		Rounds:       req.Rounds,
		Frequency:    models.Frequency(req.Frequency),
		CustomDays:   req.CustomDays,
	}
}

func scheduleIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "Invalid URL parameters")
		return 0, false
	}
	return uint(id), true
}

func (rs *RestfulServer) ListSchedules(c *gin.Context) {
	schedules, err := rs.Feeder.Schedule.ListSchedules()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"schedules": common.Mapper(schedules, func(s models.Schedule) gin.H {
			return gin.H{
				"id":         s.ID,
				"interval":   s.IntervalType,
				"time":       s.StartTime,
				"rounds":     s.Rounds,
				"frequency":  s.Frequency,
				"customDays": s.CustomDays,
			}
		}),
	})
}

// ActiveSchedules serves the hardware poller: schedules whose day rule
// matches today, annotated with start_time for the device to match against
// its own clock.
func (rs *RestfulServer) ActiveSchedules(c *gin.Context) {
	currentTime := rs.Feeder.Now()

	due, err := rs.Feeder.Schedule.DueSchedules(currentTime)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"schedules": common.Mapper(due, func(s models.Schedule) gin.H {
			return gin.H{
				"id":         s.ID,
				"interval":   s.IntervalType,
				"start_time": s.StartTime,
				"rounds":     s.Rounds,
			}
		}),
		"current_time": currentTime.Format("15:04:05"),
	})
}

func (rs *RestfulServer) CreateSchedule(c *gin.Context) {
	var req ScheduleRequest
	if issues := scheduleRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		validationFailed(c, issues)
		return
	}

	id, err := rs.Feeder.Schedule.CreateSchedule(req.toModel())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Schedule created successfully",
		"id":      id,
	})
}

func (rs *RestfulServer) UpdateSchedule(c *gin.Context) {
	id, ok := scheduleIDParam(c)
	if !ok {
		return
	}

	var req ScheduleRequest
	if issues := scheduleRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		validationFailed(c, issues)
		return
	}

	if err := rs.Feeder.Schedule.UpdateSchedule(id, req.toModel()); err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Schedule updated successfully"})
}

func (rs *RestfulServer) DeleteSchedule(c *gin.Context) {
	id, ok := scheduleIDParam(c)
	if !ok {
		return
	}

	if err := rs.Feeder.Schedule.DeleteSchedule(id); err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Schedule deleted successfully"})
}
