package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"pawhub.xyz/pet-feeder-service/pkg/models"
)

func (rs *RestfulServer) GetSettings(c *gin.Context) {
	settings, err := rs.Feeder.AllSettings()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}

func (rs *RestfulServer) GetStatus(c *gin.Context) {
	status, err := rs.Feeder.Device.Status(rs.Feeder.Now())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}

func (rs *RestfulServer) FactoryReset(c *gin.Context) {
	if err := rs.Feeder.Device.FactoryReset(); err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Factory reset complete"})
}

type HardwareUpdateRequest struct {
	Weight    *int   `json:"weight"`
	Battery   *int   `json:"battery"`
	Dispensed *int   `json:"dispensed"`
	Type      string `json:"type"`
}

var hardwareUpdateRequestSchema = z.Struct(z.Shape{
	"Weight":    z.Ptr(z.Int().GTE(0)),
	"Battery":   z.Ptr(z.Int().GTE(0).LTE(100)),
	"Dispensed": z.Ptr(z.Int().GTE(0)),
	"Type":      z.String().OneOf([]string{"Scheduled", "Manual"}).Optional(),
})

func (rs *RestfulServer) HardwareUpdate(c *gin.Context) {
	var req HardwareUpdateRequest
	if issues := hardwareUpdateRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		validationFailed(c, issues)
		return
	}

	updated, err := rs.Feeder.Device.ApplyTelemetry(&models.TelemetryReport{
		Weight:    req.Weight,
		Battery:   req.Battery,
		Dispensed: req.Dispensed,
		Type:      req.Type,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Hardware update received",
		"updated": updated,
	})
}
