package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"pawhub.xyz/pet-feeder-service/pkg/feeder"
)

type RestfulServer struct {
	Server           *gin.Engine
	Feeder           *feeder.Feeder
	Sessions         *SessionStore
	HardwareKey      string
	RateLimiterStore *feeder.RateLimiterStore
}

const contextKeySession = "feeder_session"

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// RequireSession guards the admin surface. Missing, unknown, or expired
// tokens all read as unauthenticated.
func (rs *RestfulServer) RequireSession(c *gin.Context) {
	token, err := c.Cookie(SessionCookieName)
	if err != nil || token == "" {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		c.Abort()
		return
	}

	session, ok := rs.Sessions.Get(token)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		c.Abort()
		return
	}

	c.Set(contextKeySession, session)
	c.Next()
}

// RequireHardwareKey guards the device channel with the shared secret. The
// compare is constant time; mismatches leak nothing beyond the 401.
func (rs *RestfulServer) RequireHardwareKey(c *gin.Context) {
	key := c.GetHeader("X-API-Key")
	if rs.HardwareKey == "" || key == "" ||
		subtle.ConstantTimeCompare([]byte(key), []byte(rs.HardwareKey)) != 1 {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		c.Abort()
		return
	}
	c.Next()
}

func (rs *RestfulServer) GetLimiter(clientKey string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	}
	return rs.RateLimiterStore.GetLimiter(clientKey)
}

func (rs *RestfulServer) CheckClientLimiter(c *gin.Context) bool {
	limiter := rs.GetLimiter(c.ClientIP())
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

// LimitHardwareClient rate limits the device channel per client.
func (rs *RestfulServer) LimitHardwareClient(c *gin.Context) {
	if !rs.CheckClientLimiter(c) {
		c.Status(http.StatusTooManyRequests)
		c.Abort()
		return
	}
	c.Next()
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}))

	rs.Server.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "Endpoint not found")
	})

	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("/api")

	api.POST("/auth/login", rs.Login)
	api.POST("/auth/logout", rs.Logout)
	api.GET("/auth/session", rs.SessionInfo)

	admin := api.Group("", rs.RequireSession)
	{
		admin.POST("/auth/change-password", rs.ChangePassword)

		admin.GET("/schedules", rs.ListSchedules)
		admin.POST("/schedules", rs.CreateSchedule)
		admin.PUT("/schedules/:id", rs.UpdateSchedule)
		admin.DELETE("/schedules/:id", rs.DeleteSchedule)

		admin.POST("/feed/dispense", rs.Dispense)
		admin.POST("/feed/recalibrate", rs.Recalibrate)

		admin.GET("/settings", rs.GetSettings)
		admin.GET("/settings/status", rs.GetStatus)
		admin.POST("/settings/factory-reset", rs.FactoryReset)

		admin.GET("/history", rs.GetHistory)
		admin.GET("/alerts", rs.GetAlerts)
	}

	hardware := api.Group("", rs.RequireHardwareKey, rs.LimitHardwareClient)
	{
		hardware.GET("/schedules/active", rs.ActiveSchedules)
		hardware.POST("/hardware/update", rs.HardwareUpdate)
	}
}
