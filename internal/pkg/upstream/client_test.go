package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/storelinehq/admin-gateway-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(config.UpstreamConfig{
		BaseURL: srv.URL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)
	return client, srv
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := NewClient(config.UpstreamConfig{BaseURL: "http://localhost", Token: ""})
	assert.Error(t, err)

	_, err = NewClient(config.UpstreamConfig{BaseURL: "", Token: "tok"})
	assert.Error(t, err)
}

func TestClient_SendsAuthHeaders(t *testing.T) {
	var gotAuth, gotContentType, gotRequestID string
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte("[]"))
	})

	_, err := client.ListBranches(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID)
}

func TestListEmployees_AcceptsBareArray(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/employee/", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "ana", r.URL.Query().Get("search"))
		w.Write([]byte(`[{"id": 1, "name": "Ana", "base_salary": 26000}]`))
	})

	page, err := client.ListEmployees(context.Background(), 2, "ana", "")
	require.NoError(t, err)

	require.Len(t, page.Employees, 1)
	assert.Equal(t, "Ana", page.Employees[0].Name)
	assert.Equal(t, "1", page.Employees[0].ID.String())
	assert.Equal(t, int64(1), page.Count)
}

func TestListEmployees_AcceptsResultsEnvelope(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{"id": "e-1", "name": "Budi"}], "count": 41, "next": "page=3", "previous": "page=1"}`))
	})

	page, err := client.ListEmployees(context.Background(), 2, "", "")
	require.NoError(t, err)

	require.Len(t, page.Employees, 1)
	assert.Equal(t, "e-1", page.Employees[0].ID.String())
	assert.Equal(t, int64(41), page.Count)
	require.NotNil(t, page.Next)
	assert.Equal(t, "page=3", *page.Next)
	require.NotNil(t, page.Previous)
}

func TestListEmployees_AcceptsDataEnvelope(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"id": 7, "name": "Citra"}]}`))
	})

	page, err := client.ListEmployees(context.Background(), 1, "", "")
	require.NoError(t, err)

	require.Len(t, page.Employees, 1)
	assert.Equal(t, "Citra", page.Employees[0].Name)
	assert.Equal(t, int64(1), page.Count)
	assert.Nil(t, page.Next)
}

func TestListEmployees_AcceptsMixedIDTypes(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [
			{"id": 7, "name": "Citra"},
			{"id": "e-1", "name": "Budi"}
		], "count": 2}`))
	})

	page, err := client.ListEmployees(context.Background(), 1, "", "")
	require.NoError(t, err)

	require.Len(t, page.Employees, 2)
	assert.Equal(t, "7", page.Employees[0].ID.String())
	assert.Equal(t, "e-1", page.Employees[1].ID.String())
}

func TestID_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want ID
	}{
		{"number", `42`, ID("42")},
		{"string", `"e-1"`, ID("e-1")},
		{"numeric string", `"42"`, ID("42")},
		{"null", `null`, ID("")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(c.raw), &id))
			assert.Equal(t, c.want, id)
		})
	}

	var id ID
	assert.Error(t, json.Unmarshal([]byte(`true`), &id))
	assert.Error(t, json.Unmarshal([]byte(`{"id": 1}`), &id))
}

func TestListEmployees_ServerCountWinsOverPageLength(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [], "count": 0}`))
	})

	page, err := client.ListEmployees(context.Background(), 9, "", "")
	require.NoError(t, err)

	assert.Empty(t, page.Employees)
	assert.Equal(t, int64(0), page.Count)
}

func TestClient_MapsNon2xxToAPIError(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"detail": "upstream exploded"}`))
	})

	_, err := client.ListEmployees(context.Background(), 1, "", "")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream exploded", apiErr.Message)
}

func TestUpdateDailyLeaveStatus_PostsStatusBody(t *testing.T) {
	var gotPath string
	var gotBody statusBody
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	})

	err := client.UpdateDailyLeaveStatus(context.Background(), "15", "approved")
	require.NoError(t, err)

	assert.Equal(t, "/api/employee/paid-leave/request/15/update-status/", gotPath)
	assert.Equal(t, "approved", gotBody.Status)
}

func TestListMonthlyLeaveRequests_DecodesDataEnvelope(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/employee/monthly-leave/requests/list/admin/", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("month"))
		assert.Equal(t, "2026", r.URL.Query().Get("year"))
		w.Write([]byte(`{"data": [{"id": 4, "employee_name": "Dewi", "aggregate_status": "pending",
			"leaves": [{"id": 10, "leave_date": "2026-03-05", "status": "pending"}]}]}`))
	})

	requests, err := client.ListMonthlyLeaveRequests(context.Background(), 3, 2026, "")
	require.NoError(t, err)

	require.Len(t, requests, 1)
	assert.Equal(t, "Dewi", requests[0].EmployeeName)
	require.Len(t, requests[0].Leaves, 1)
	assert.Equal(t, "10", requests[0].Leaves[0].ID.String())
}

func TestUpdateMonthlyLeaveStatus_PostsToLeaveID(t *testing.T) {
	var gotPath string
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	err := client.UpdateMonthlyLeaveStatus(context.Background(), "10", "rejected")
	require.NoError(t, err)

	assert.Equal(t, "/api/employee/monthly-leave/update/10/", gotPath)
}
