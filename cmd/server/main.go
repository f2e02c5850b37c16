package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"pawhub.xyz/pet-feeder-service/pkg/common"
	"pawhub.xyz/pet-feeder-service/pkg/db"
	"pawhub.xyz/pet-feeder-service/pkg/feeder"
	feederHttp "pawhub.xyz/pet-feeder-service/pkg/http"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	feederDbType := os.Getenv(common.EnvKeyFeederDBType)
	switch feederDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown FEEDER_DB_TYPE: " + feederDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyFeederHttpHostPort))

	hardwareKey := strings.TrimSpace(os.Getenv(common.EnvKeyFeederHardwareAPIKey))
	if hardwareKey == "" {
		log.Fatal("FEEDER_HW_API_KEY not set in .env, the device channel cannot be served without it")
	}

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyFeederDefaultRate), 64); err != nil {
		log.Fatal("Invalid FEEDER_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyFeederDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid FEEDER_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	lowFeedThreshold := feeder.DefaultLowFeedThreshold
	if raw := os.Getenv(common.EnvKeyFeederLowFeedThreshold); raw != "" {
		if lowFeedThreshold, err = strconv.Atoi(raw); err != nil {
			log.Fatal("Invalid FEEDER_LOW_FEED_THRESHOLD, should be an int value")
		}
	}

	sessionTTL := feederHttp.DefaultSessionTTL
	if raw := os.Getenv(common.EnvKeyFeederSessionTTLHours); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatal("Invalid FEEDER_SESSION_TTL_HOURS, should be an int value")
		}
		sessionTTL = time.Duration(hours) * time.Hour
	}

	logger := common.GetLogger()

	feederCore := feeder.Feeder{
		Db:               *dbInstance,
		LowFeedThreshold: lowFeedThreshold,
	}
	feederCore.WithServices(feeder.ServiceOpts{
		Schedule: feederCore.GetISchedule(),
		Feed:     feederCore.GetIFeed(),
		Device:   feederCore.GetIDevice(),
		Ledger:   feederCore.GetILedger(),
		Auth:     feederCore.GetIAuth(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":3000"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &feederHttp.RestfulServer{
		Server:           gin.Default(),
		Feeder:           &feederCore,
		Sessions:         feederHttp.NewSessionStore(sessionTTL),
		HardwareKey:      hardwareKey,
		RateLimiterStore: feeder.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
