package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/storelinehq/admin-gateway-go/internal/config"
	"github.com/storelinehq/admin-gateway-go/internal/domain/user"
	"github.com/storelinehq/admin-gateway-go/internal/pkg/jwt"
	"github.com/storelinehq/admin-gateway-go/internal/pkg/upstream"
	attendanceService "github.com/storelinehq/admin-gateway-go/internal/service/attendance"
	leaveService "github.com/storelinehq/admin-gateway-go/internal/service/leave"
	masterService "github.com/storelinehq/admin-gateway-go/internal/service/master"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHR serves the handful of HR API endpoints the gateway touches.
func fakeHR(w http.ResponseWriter, r *http.Request) {
	switch {
	case strings.HasPrefix(r.URL.Path, "/api/employee/paid-leave/request/list"):
		w.Write([]byte(`[{"id": 15, "employee": 1, "employee_name": "Ana", "employee_branch": "Central",
			"leave_date": "2026-03-05", "created_at": "2026-03-01T08:00:00Z", "status": "pending"}]`))
	case strings.Contains(r.URL.Path, "update-status"):
		w.WriteHeader(http.StatusOK)
	case strings.HasPrefix(r.URL.Path, "/api/employee/monthly-leave/requests"):
		w.Write([]byte(`{"data": [{"id": 4, "employee_name": "Dewi", "branch_id": 2, "branch_name": "Central",
			"aggregate_status": "pending", "created_at": "2026-02-28T10:00:00Z",
			"leaves": [{"id": 10, "leave_date": "2026-03-05", "status": "pending"}]}]}`))
	case strings.Contains(r.URL.Path, "/monthly-leave/update/"):
		w.WriteHeader(http.StatusOK)
	case strings.HasPrefix(r.URL.Path, "/api/branch"):
		w.Write([]byte(`[{"id": 1, "name": "Central"}]`))
	case strings.HasPrefix(r.URL.Path, "/api/employee"):
		w.Write([]byte(`{"results": [
			{"id": 1, "name": "Ana", "role": "Cashier", "branch_name": "Central", "base_salary": 2600000}
		], "count": 1}`))
	default:
		http.NotFound(w, r)
	}
}

func newTestServer(t *testing.T) (*httptest.Server, jwt.Service) {
	t.Helper()

	hr := httptest.NewServer(http.HandlerFunc(fakeHR))
	t.Cleanup(hr.Close)

	client, err := upstream.NewClient(config.UpstreamConfig{
		BaseURL: hr.URL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)

	pay := config.PayPolicy{
		WorkingDaysPerMonth: 26,
		StandardHoursPerDay: 8,
		OvertimeMultiplier:  1.5,
		ExpectedClockIn:     "09:00:00",
		ExpectedClockOut:    "18:00:00",
	}

	jwtService := jwt.NewJWTService("test-secret")
	roster := attendanceService.NewRosterService(client, attendanceService.NewPayCalculator(pay), pay, time.Hour)
	t.Cleanup(roster.Stop)

	router := NewRouter(
		config.AppConfig{Env: "test", DashboardURL: "http://localhost:3000"},
		jwtService,
		NewAttendanceHandler(roster),
		NewLeaveHandler(leaveService.NewDailyService(client), leaveService.NewMonthlyService(client)),
		NewMasterHandler(masterService.NewMasterService(client)),
		NewNavigationHandler(),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, jwtService
}

func mintToken(t *testing.T, jwtService jwt.Service, role user.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken("user-1", role, time.Hour)
	require.NoError(t, err)
	return token
}

func call(t *testing.T, srv *httptest.Server, method, path, token, body string) (int, map[string]interface{}) {
	t.Helper()

	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reqBody)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func TestRouter_RejectsMissingToken(t *testing.T) {
	srv, _ := newTestServer(t)

	status, body := call(t, srv, http.MethodGet, "/api/v1/attendance", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, body["success"])
}

func TestRouter_AttendanceListAndCheckIn(t *testing.T) {
	srv, jwtService := newTestServer(t)
	token := mintToken(t, jwtService, user.RoleSubadmin)

	status, body := call(t, srv, http.MethodGet, "/api/v1/attendance?page=1", token, "")
	require.Equal(t, http.StatusOK, status)

	rows := body["data"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "Ana", row["name"])
	assert.Equal(t, "absent", row["status"])
	assert.Equal(t, float64(100000), row["daily_salary"])

	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, float64(1), meta["total_items"])

	status, _ = call(t, srv, http.MethodPost, "/api/v1/attendance/1/check-in", token, "")
	require.Equal(t, http.StatusOK, status)

	// second check-in is a conflict
	status, body = call(t, srv, http.MethodPost, "/api/v1/attendance/1/check-in", token, "")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, false, body["success"])
}

func TestRouter_SearchIsAccepted(t *testing.T) {
	srv, jwtService := newTestServer(t)
	token := mintToken(t, jwtService, user.RoleAdmin)

	status, _ := call(t, srv, http.MethodPost, "/api/v1/attendance/search", token, `{"query": "ana"}`)
	assert.Equal(t, http.StatusAccepted, status)
}

func TestRouter_DailyLeaveRoleSplit(t *testing.T) {
	srv, jwtService := newTestServer(t)
	subadmin := mintToken(t, jwtService, user.RoleSubadmin)
	admin := mintToken(t, jwtService, user.RoleAdmin)

	// both roles may read the list
	status, _ := call(t, srv, http.MethodGet, "/api/v1/leave/daily?date=2026-03-05", subadmin, "")
	assert.Equal(t, http.StatusOK, status)

	// only admins may decide
	status, _ = call(t, srv, http.MethodPost, "/api/v1/leave/daily/15/status", subadmin, `{"status": "approved"}`)
	assert.Equal(t, http.StatusForbidden, status)

	status, body := call(t, srv, http.MethodPost, "/api/v1/leave/daily/15/status", admin, `{"status": "approved"}`)
	require.Equal(t, http.StatusOK, status)
	assert.NotNil(t, body["data"], "decision reply carries the refetched list")

	// a non-decision status is rejected outright
	status, body = call(t, srv, http.MethodPost, "/api/v1/leave/daily/15/status", admin, `{"status": "pending"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
}

func TestRouter_MonthlyReviewIsAdminOnly(t *testing.T) {
	srv, jwtService := newTestServer(t)
	subadmin := mintToken(t, jwtService, user.RoleSubadmin)
	admin := mintToken(t, jwtService, user.RoleAdmin)

	status, _ := call(t, srv, http.MethodGet, "/api/v1/leave/monthly?month=3&year=2026", subadmin, "")
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = call(t, srv, http.MethodGet, "/api/v1/leave/monthly?month=3&year=2026", admin, "")
	require.Equal(t, http.StatusOK, status)

	status, body := call(t, srv, http.MethodPost, "/api/v1/leave/monthly/4/review", admin, "")
	require.Equal(t, http.StatusOK, status)
	session := body["data"].(map[string]interface{})
	sessionID := session["session_id"].(string)
	require.NotEmpty(t, sessionID)

	status, _ = call(t, srv, http.MethodPost, "/api/v1/leave/monthly/review/"+sessionID+"/dates/5/status", admin, `{"status": "approved"}`)
	assert.Equal(t, http.StatusOK, status)

	// a day with no leave record is a 404, not a silent no-op
	status, _ = call(t, srv, http.MethodPost, "/api/v1/leave/monthly/review/"+sessionID+"/dates/28/status", admin, `{"status": "approved"}`)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = call(t, srv, http.MethodDelete, "/api/v1/leave/monthly/review/"+sessionID, admin, "")
	assert.Equal(t, http.StatusOK, status)
}

func TestRouter_MonthlyListValidation(t *testing.T) {
	srv, jwtService := newTestServer(t)
	admin := mintToken(t, jwtService, user.RoleAdmin)

	status, _ := call(t, srv, http.MethodGet, "/api/v1/leave/monthly?month=abc&year=2026", admin, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := call(t, srv, http.MethodGet, "/api/v1/leave/monthly?month=13&year=2026", admin, "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	errDetail := body["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errDetail["code"])
}

func TestRouter_NavigationDiffersByRole(t *testing.T) {
	srv, jwtService := newTestServer(t)

	_, adminBody := call(t, srv, http.MethodGet, "/api/v1/navigation", mintToken(t, jwtService, user.RoleAdmin), "")
	adminMenu := adminBody["data"].([]interface{})
	assert.Len(t, adminMenu, 6)

	_, subBody := call(t, srv, http.MethodGet, "/api/v1/navigation", mintToken(t, jwtService, user.RoleSubadmin), "")
	subMenu := subBody["data"].([]interface{})
	require.Len(t, subMenu, 3)

	for _, raw := range subMenu {
		item := raw.(map[string]interface{})
		assert.NotEqual(t, "monthly-leave", item["id"])
		assert.NotEqual(t, "sales-analytics", item["id"])
		assert.NotEqual(t, "branches", item["id"])
	}
}

func TestRouter_Branches(t *testing.T) {
	srv, jwtService := newTestServer(t)
	token := mintToken(t, jwtService, user.RoleSubadmin)

	status, body := call(t, srv, http.MethodGet, "/api/v1/master/branches", token, "")
	require.Equal(t, http.StatusOK, status)

	branches := body["data"].([]interface{})
	require.Len(t, branches, 1)
	assert.Equal(t, "Central", branches[0].(map[string]interface{})["name"])
}
