package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyFeederDBType string = "FEEDER_DB_TYPE"
	EnvKeyFeederDBPath string = "FEEDER_DB_PATH"

	EnvKeyFeederHttpHostPort string = "FEEDER_HTTP_HOST_PORT"

	EnvKeyFeederHardwareAPIKey string = "FEEDER_HW_API_KEY"

	EnvKeyFeederDefaultRate  string = "FEEDER_DEFAULT_RATE"
	EnvKeyFeederDefaultBurst string = "FEEDER_DEFAULT_BURST"

	EnvKeyFeederLowFeedThreshold string = "FEEDER_LOW_FEED_THRESHOLD"
	EnvKeyFeederSessionTTLHours  string = "FEEDER_SESSION_TTL_HOURS"

	LoggerNameFeederCore    string = "feeder_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerFieldCategory     string = "category"
	LoggerCategorySchedule  string = "schedule"
	LoggerCategoryFeed      string = "feed"
	LoggerCategoryDevice    string = "device"
	LoggerCategoryLedger    string = "ledger"
	LoggerCategoryAuth      string = "auth"
)
