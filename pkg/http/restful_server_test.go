package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pawhub.xyz/pet-feeder-service/pkg/feeder/mocks"
	_ "pawhub.xyz/pet-feeder-service/pkg/testing"

	"pawhub.xyz/pet-feeder-service/pkg/common"
	"pawhub.xyz/pet-feeder-service/pkg/db"
	"pawhub.xyz/pet-feeder-service/pkg/feeder"
	"pawhub.xyz/pet-feeder-service/pkg/models"
)

const testHardwareKey = "test-hardware-key"

func setupTestServer(t *testing.T) *RestfulServer {
	t.Helper()

	dbInstance, err := db.NewInstance(db.UseMemorySqliteDialector())
	require.NoError(t, err)

	feederObj := feeder.Feeder{Db: *dbInstance}
	feederObj.WithServices(feeder.ServiceOpts{
		Schedule: feederObj.GetISchedule(),
		Feed:     feederObj.GetIFeed(),
		Device:   feederObj.GetIDevice(),
		Ledger:   feederObj.GetILedger(),
		Auth:     feederObj.GetIAuth(),
	})

	rs := &RestfulServer{
		Server:      gin.Default(),
		Feeder:      &feederObj,
		Sessions:    NewSessionStore(0),
		HardwareKey: testHardwareKey,
		// default we use no limiter, if need, later assign it rs.RateLimiterStore = feeder.NewRateLimiterStore(...)
	}

	rs.Setup()

	return rs
}

func setupTestServerWithLimiter(t *testing.T, limiter *feeder.RateLimiterStore) *RestfulServer {
	t.Helper()
	rs := setupTestServer(t)
	rs.RateLimiterStore = limiter
	return rs
}

func postJSON(rs *RestfulServer, path string, payload any, cookie *http.Cookie, headers map[string]string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func getPath(rs *RestfulServer, path string, cookie *http.Cookie, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func loginAdmin(t *testing.T, rs *RestfulServer) *http.Cookie {
	t.Helper()

	w := postJSON(rs, "/api/auth/login", gin.H{
		"username": db.DefaultAdminUsername,
		"password": db.DefaultAdminPassword,
	}, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == SessionCookieName {
			return cookie
		}
	}
	t.Fatal("login response carried no session cookie")
	return nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer(t)

	w := getPath(rs, "/healthz", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestLogin(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)

	{
		w := postJSON(rs, "/api/auth/login", gin.H{
			"username": db.DefaultAdminUsername,
			"password": db.DefaultAdminPassword,
		}, nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Login successful", body["message"])
		user := body["user"].(map[string]any)
		assert.Equal(t, db.DefaultAdminUsername, user["username"])
	}

	{
		w := postJSON(rs, "/api/auth/login", gin.H{
			"username": db.DefaultAdminUsername,
			"password": "wrong",
		}, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid password", decodeBody(t, w)["message"])
	}

	{
		w := postJSON(rs, "/api/auth/login", gin.H{
			"username": "nobody-here",
			"password": "whatever",
		}, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "User not found", decodeBody(t, w)["message"])
	}

	{
		// username below the minimum length fails validation
		w := postJSON(rs, "/api/auth/login", gin.H{
			"username": "ab",
			"password": "1234",
		}, nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Validation failed", decodeBody(t, w)["message"])
	}
}

func TestSessionLifecycle(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)

	// Unauthenticated probe
	w := getPath(rs, "/api/auth/session", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["authenticated"])

	cookie := loginAdmin(t, rs)

	w = getPath(rs, "/api/auth/session", cookie, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["authenticated"])
	assert.Equal(t, db.DefaultAdminUsername, body["user"].(map[string]any)["username"])

	// Logout invalidates the token server side
	w = postJSON(rs, "/api/auth/logout", nil, cookie, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = getPath(rs, "/api/schedules", cookie, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireSession(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/schedules"},
		{http.MethodPost, "/api/feed/dispense"},
		{http.MethodGet, "/api/settings"},
		{http.MethodGet, "/api/settings/status"},
		{http.MethodPost, "/api/settings/factory-reset"},
		{http.MethodGet, "/api/history"},
		{http.MethodGet, "/api/alerts"},
		{http.MethodPost, "/api/auth/change-password"},
	}

	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s must require a session", p.method, p.path)
		assert.Equal(t, "Authentication required", decodeBody(t, w)["message"])
	}
}

func TestScheduleEndpoints(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	cookie := loginAdmin(t, rs)

	// Create
	w := postJSON(rs, "/api/schedules", gin.H{
		"interval":  "4h",
		"time":      "07:30",
		"rounds":    2,
		"frequency": "daily",
	}, cookie, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Schedule created successfully", body["message"])
	id := int(body["id"].(float64))
	require.NotZero(t, id)

	// List
	w = getPath(rs, "/api/schedules", cookie, nil)
	require.Equal(t, http.StatusOK, w.Code)
	schedules := decodeBody(t, w)["schedules"].([]any)
	require.Len(t, schedules, 1)
	first := schedules[0].(map[string]any)
	assert.Equal(t, "07:30", first["time"])
	assert.Equal(t, "4h", first["interval"])

	// Update
	updateBody, _ := json.Marshal(gin.H{
		"interval":   "6h",
		"time":       "18:00",
		"rounds":     4,
		"frequency":  "custom",
		"customDays": "Tue,Thu",
	})
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/schedules/%d", id), bytes.NewReader(updateBody))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	rs.Server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	w = getPath(rs, "/api/schedules", cookie, nil)
	schedules = decodeBody(t, w)["schedules"].([]any)
	require.Len(t, schedules, 1)
	assert.Equal(t, "18:00", schedules[0].(map[string]any)["time"])

	// Delete
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/schedules/%d", id), nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	rs.Server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	w = getPath(rs, "/api/schedules", cookie, nil)
	assert.Len(t, decodeBody(t, w)["schedules"].([]any), 0)
}

func TestScheduleEndpoints_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	cookie := loginAdmin(t, rs)

	{
		// out-of-range time fails validation
		w := postJSON(rs, "/api/schedules", gin.H{
			"interval":  "4h",
			"time":      "25:00",
			"rounds":    2,
			"frequency": "daily",
		}, cookie, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Validation failed", decodeBody(t, w)["message"])
	}

	{
		// unknown interval fails validation
		w := postJSON(rs, "/api/schedules", gin.H{
			"interval":  "5h",
			"time":      "08:00",
			"rounds":    2,
			"frequency": "daily",
		}, cookie, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		// non-numeric id in the path
		req := httptest.NewRequest(http.MethodDelete, "/api/schedules/abc", nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid URL parameters", decodeBody(t, w)["message"])
	}
}

func setWeight(t *testing.T, rs *RestfulServer, value string) {
	t.Helper()
	err := rs.Feeder.Db.Conn.Model(&models.Setting{}).
		Where("setting_key = ?", models.SettingCurrentWeight).
		Update("setting_value", value).Error
	require.NoError(t, err)
}

func TestDispenseEndpoint(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	cookie := loginAdmin(t, rs)
	setWeight(t, rs, "500")

	w := postJSON(rs, "/api/feed/dispense", gin.H{
		"rounds":          2,
		"weightDispensed": 50,
	}, cookie, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Successfully dispensed 2 rounds (50g).", body["message"])
	assert.Equal(t, float64(450), body["currentWeight"])
}

func TestDispenseEndpoint_InsufficientFeed(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	cookie := loginAdmin(t, rs)
	setWeight(t, rs, "40")

	w := postJSON(rs, "/api/feed/dispense", gin.H{
		"rounds":          5,
		"weightDispensed": 50,
	}, cookie, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Insufficient feed. Only 40g remaining.", body["message"])
	assert.Equal(t, float64(40), body["currentWeight"])

	// The refused dispense must leave the stock untouched
	var setting models.Setting
	require.NoError(t, rs.Feeder.Db.Conn.Take(&setting, "setting_key = ?", models.SettingCurrentWeight).Error)
	assert.Equal(t, "40", setting.Value)
}

func TestDispenseEndpoint_Validation(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	cookie := loginAdmin(t, rs)

	// rounds above the cap
	w := postJSON(rs, "/api/feed/dispense", gin.H{
		"rounds":          51,
		"weightDispensed": 50,
	}, cookie, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed", decodeBody(t, w)["message"])
}

func TestRecalibrateEndpoint(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	cookie := loginAdmin(t, rs)
	setWeight(t, rs, "37")

	w := postJSON(rs, "/api/feed/recalibrate", nil, cookie, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(feeder.WeightResetValue), decodeBody(t, w)["currentWeight"])

	w = getPath(rs, "/api/settings/status", cookie, nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := decodeBody(t, w)["status"].(map[string]any)
	assert.Equal(t, float64(feeder.WeightResetValue), status["weight"])
}

func TestChangePasswordEndpoint(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	cookie := loginAdmin(t, rs)

	{
		w := postJSON(rs, "/api/auth/change-password", gin.H{
			"oldPassword":     db.DefaultAdminPassword,
			"newPassword":     "Correct1Horse",
			"confirmPassword": "Different1Horse",
		}, cookie, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Passwords do not match", decodeBody(t, w)["message"])
	}

	{
		// policy rejection surfaces the reason
		w := postJSON(rs, "/api/auth/change-password", gin.H{
			"oldPassword":     db.DefaultAdminPassword,
			"newPassword":     "aaaaaaaa",
			"confirmPassword": "aaaaaaaa",
		}, cookie, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Password must contain at least two of: digits, uppercase, lowercase, or special characters",
			decodeBody(t, w)["message"])
	}

	{
		w := postJSON(rs, "/api/auth/change-password", gin.H{
			"oldPassword":     "wrong",
			"newPassword":     "Correct1Horse",
			"confirmPassword": "Correct1Horse",
		}, cookie, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Old password is incorrect", decodeBody(t, w)["message"])
	}

	{
		w := postJSON(rs, "/api/auth/change-password", gin.H{
			"oldPassword":     db.DefaultAdminPassword,
			"newPassword":     "Correct1Horse",
			"confirmPassword": "Correct1Horse",
		}, cookie, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Password updated successfully", decodeBody(t, w)["message"])
	}

	// Old credentials stop working
	w := postJSON(rs, "/api/auth/login", gin.H{
		"username": db.DefaultAdminUsername,
		"password": db.DefaultAdminPassword,
	}, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(rs, "/api/auth/login", gin.H{
		"username": db.DefaultAdminUsername,
		"password": "Correct1Horse",
	}, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHardwareUpdateEndpoint(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	hwHeaders := map[string]string{"X-API-Key": testHardwareKey}

	w := postJSON(rs, "/api/hardware/update", gin.H{"battery": 55}, nil, hwHeaders)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Hardware update received", body["message"])
	updated := body["updated"].([]any)
	require.Len(t, updated, 1)
	assert.Equal(t, "battery", updated[0])

	// The heartbeat refresh flips the derived status online
	cookie := loginAdmin(t, rs)
	w = getPath(rs, "/api/settings/status", cookie, nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := decodeBody(t, w)["status"].(map[string]any)
	assert.Equal(t, true, status["online"])
	assert.Equal(t, float64(55), status["battery"])
}

func TestHardwareUpdateEndpoint_Dispensed(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	hwHeaders := map[string]string{"X-API-Key": testHardwareKey}
	setWeight(t, rs, "900")

	w := postJSON(rs, "/api/hardware/update", gin.H{"weight": 820, "dispensed": 3}, nil, hwHeaders)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := loginAdmin(t, rs)
	w = getPath(rs, "/api/history", cookie, nil)
	require.Equal(t, http.StatusOK, w.Code)
	history := decodeBody(t, w)["history"].([]any)
	require.Len(t, history, 1)
	entry := history[0].(map[string]any)
	assert.Equal(t, float64(3), entry["rounds"])
	assert.Equal(t, "Scheduled", entry["type"])
	assert.Equal(t, "Success", entry["status"])
}

func TestHardwareKeyGuard(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)

	{
		// missing key
		w := postJSON(rs, "/api/hardware/update", gin.H{"battery": 55}, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Unauthorized", decodeBody(t, w)["message"])
	}

	{
		// wrong key
		w := postJSON(rs, "/api/hardware/update", gin.H{"battery": 55}, nil,
			map[string]string{"X-API-Key": "not-the-key"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	{
		// server configured without a key refuses everything
		rs.HardwareKey = ""
		w := postJSON(rs, "/api/hardware/update", gin.H{"battery": 55}, nil,
			map[string]string{"X-API-Key": ""})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestActiveSchedulesEndpoint(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	hwHeaders := map[string]string{"X-API-Key": testHardwareKey}

	require.NoError(t, rs.Feeder.Db.Conn.Create(&models.Schedule{
		IntervalType: "4h",
		StartTime:    "08:00",
		Rounds:       3,
		Frequency:    models.FrequencyDaily,
		IsActive:     true,
	}).Error)
	require.NoError(t, rs.Feeder.Db.Conn.Create(&models.Schedule{
		IntervalType: "6h",
		StartTime:    "09:00",
		Rounds:       2,
		Frequency:    models.FrequencyDaily,
		IsActive:     false,
	}).Error)

	w := getPath(rs, "/api/schedules/active", nil, hwHeaders)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	schedules := body["schedules"].([]any)
	require.Len(t, schedules, 1, "inactive schedules are not served to the device")
	first := schedules[0].(map[string]any)
	assert.Equal(t, "08:00", first["start_time"])
	assert.Equal(t, float64(3), first["rounds"])
	assert.NotEmpty(t, body["current_time"])
}

func TestHardwareRateLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(t, feeder.NewRateLimiterStore(2, 2))
	hwHeaders := map[string]string{"X-API-Key": testHardwareKey}

	// Burst of 2, then the third immediate request is refused
	for i := 0; i < 3; i++ {
		w := postJSON(rs, "/api/hardware/update", gin.H{"battery": 50}, nil, hwHeaders)
		if i < 2 {
			require.Equal(t, http.StatusOK, w.Code, "request %d should be allowed", i+1)
		} else {
			require.Equal(t, http.StatusTooManyRequests, w.Code, "request %d should be rate limited", i+1)
		}
	}

	// Admin surface is not limited
	cookie := loginAdmin(t, rs)
	w := getPath(rs, "/api/settings", cookie, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetAlerts_InternalError(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	cookie := loginAdmin(t, rs)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockILedger := mocks.NewMockILedger(ctrl)
	rs.Feeder.Ledger = mockILedger
	mockILedger.EXPECT().
		RecentAlerts(gomock.Eq(alertListLimit)).
		Return(nil, fmt.Errorf("just causing error")).
		Times(1)

	w := getPath(rs, "/api/alerts", cookie, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decodeBody(t, w)["message"])
}

func TestGetHistory_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	cookie := loginAdmin(t, rs)

	longSearch := make([]byte, 101)
	for i := range longSearch {
		longSearch[i] = 'a'
	}
	w := getPath(rs, "/api/history?search="+string(longSearch), cookie, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid query parameters", decodeBody(t, w)["message"])
}

func TestFactoryResetEndpoint(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	cookie := loginAdmin(t, rs)
	setWeight(t, rs, "777")

	w := postJSON(rs, "/api/settings/factory-reset", nil, cookie, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Factory reset complete", decodeBody(t, w)["message"])

	w = getPath(rs, "/api/settings", cookie, nil)
	require.Equal(t, http.StatusOK, w.Code)
	settings := decodeBody(t, w)["settings"].(map[string]any)
	assert.Equal(t, "0", settings[models.SettingCurrentWeight])
	assert.Equal(t, "Not Set", settings[models.SettingWifiSSID])
}

func TestUnknownEndpoint(t *testing.T) {
	rs := setupTestServer(t)

	w := getPath(rs, "/api/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Endpoint not found", decodeBody(t, w)["message"])
}
