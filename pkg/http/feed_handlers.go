package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"pawhub.xyz/pet-feeder-service/pkg/feeder"
)

type FeedRequest struct {
	Rounds          int    `json:"rounds"`
	Type            string `json:"type"`
	WeightDispensed int    `json:"weightDispensed"`
}

var feedRequestSchema = z.Struct(z.Shape{
	"Rounds":          z.Int().GTE(1).LTE(50).Required(),
	"Type":            z.String().OneOf([]string{"Manual", "Scheduled"}).Optional(),
	"WeightDispensed": z.Int().GTE(0).Required(),
})

func (rs *RestfulServer) Dispense(c *gin.Context) {
	var req FeedRequest
	if issues := feedRequestSchema.Parse(zhttp.Request(c.Request), &req); issues != nil {
		validationFailed(c, issues)
		return
	}

	if req.Type == "" {
		req.Type = "Manual"
	}

	currentWeight, err := rs.Feeder.Feed.Dispense(req.Rounds, req.Type, req.WeightDispensed)
	if errors.Is(err, feeder.ErrInsufficientFeed) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":       false,
			"message":       fmt.Sprintf("Insufficient feed. Only %dg remaining.", currentWeight),
			"currentWeight": currentWeight,
		})
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       fmt.Sprintf("Successfully dispensed %d rounds (%dg).", req.Rounds, req.WeightDispensed),
		"currentWeight": currentWeight,
	})
}

func (rs *RestfulServer) Recalibrate(c *gin.Context) {
	currentWeight, err := rs.Feeder.Feed.Recalibrate()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"currentWeight": currentWeight,
	})
}
