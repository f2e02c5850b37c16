package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pawhub.xyz/pet-feeder-service/pkg/common"
	"pawhub.xyz/pet-feeder-service/pkg/models"
)

const alertListLimit = 50

func (rs *RestfulServer) GetHistory(c *gin.Context) {
	search := c.Query("search")
	if len(search) > 100 {
		respondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	history, err := rs.Feeder.Ledger.SearchHistory(search)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"history": common.Mapper(history, func(h models.HistoryEntry) gin.H {
			return gin.H{
				"id":     h.ID,
				"date":   h.FeedDate,
				"time":   h.FeedTime,
				"rounds": h.Rounds,
				"type":   h.Type,
				"status": h.Status,
			}
		}),
	})
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	alerts, err := rs.Feeder.Ledger.RecentAlerts(alertListLimit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"alerts": common.Mapper(alerts, func(a models.Alert) gin.H {
			return gin.H{
				"id":        a.ID,
				"type":      a.Type,
				"message":   a.Message,
				"timestamp": a.CreatedAt,
			}
		}),
	})
}
