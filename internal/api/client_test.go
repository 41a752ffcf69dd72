package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/maniksharma/vitalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHTTPTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("skipping HTTP integration test: local listener unavailable (%v)", r)
			}
		}()
		srv = httptest.NewServer(handler)
	}()
	return srv
}

func testClient(srv *httptest.Server, token string) *Client {
	return NewClient(srv.URL, 2000, func() string { return token })
}

func TestClient_SetsAuthAndTracingHeaders(t *testing.T) {
	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Equal(t, "7", r.URL.Query().Get("days"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"logs": []any{}, "count": 0})
	})
	defer srv.Close()

	window, err := testClient(srv, "tok-123").Logs(context.Background(), domain.LogGlucose, 7)
	require.NoError(t, err)
	assert.Empty(t, window.Records)
	assert.Zero(t, window.Count)
}

func TestClient_Logs_DecodesLooseWireRecords(t *testing.T) {
	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/logs/activity", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"logs": [
				{"id": 1, "log_type": "activity", "value": 30, "reading_context": "walking (moderate)", "created_at": "2025-06-18T08:00:00"},
				{"id": 2, "log_type": "activity", "value": null, "logged_at": "2025-06-17 18:30:00"},
				{"id": 3, "log_type": "activity", "value": 20, "created_at": "not-a-time"}
			],
			"stats": {"avg_value": 25, "min_value": 20, "max_value": 30, "count": 3, "avg_secondary": null},
			"count": 3
		}`))
	})
	defer srv.Close()

	window, err := testClient(srv, "tok").Logs(context.Background(), domain.LogActivity, 7)
	require.NoError(t, err)
	require.Len(t, window.Records, 3)

	first := window.Records[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, domain.LogActivity, first.Kind)
	assert.Equal(t, 30.0, first.Value)
	assert.Equal(t, 2025, first.CreatedAt.Year())

	// null value degrades to zero, not an error
	assert.Zero(t, window.Records[1].Value)
	assert.False(t, window.Records[1].CreatedAt.IsZero())

	// unparseable timestamp keeps the value but lands in no bucket
	assert.Equal(t, 20.0, window.Records[2].Value)
	assert.True(t, window.Records[2].CreatedAt.IsZero())

	require.NotNil(t, window.Stats)
	assert.Equal(t, 25.0, window.Stats.Avg)
	assert.Equal(t, 3, window.Stats.Count)
	assert.Zero(t, window.Stats.AvgSecondary)
}

func TestClient_Unauthorized(t *testing.T) {
	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Could not validate credentials"}`))
	})
	defer srv.Close()

	_, err := testClient(srv, "expired").CarePlan(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_APIErrorCarriesDetail(t *testing.T) {
	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "Email already registered"}`))
	})
	defer srv.Close()

	_, err := testClient(srv, "").Signup(context.Background(), SignupRequest{Email: "a@b.c"})
	require.ErrorIs(t, err, ErrAPI)
	assert.Contains(t, err.Error(), "Email already registered")
	assert.Contains(t, err.Error(), "400")
}

func TestClient_Timeout(t *testing.T) {
	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	})
	defer srv.Close()

	client := NewClient(srv.URL, 50, nil)
	_, err := client.CarePlan(context.Background())
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClient_CanceledContextIsNotATimeout(t *testing.T) {
	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testClient(srv, "tok").CarePlan(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestClient_InvalidResponseBody(t *testing.T) {
	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tasks": "not-an-array"`))
	})
	defer srv.Close()

	_, err := testClient(srv, "tok").CarePlan(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_Unavailable(t *testing.T) {
	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	httpClient := srv.Client()
	srv.Close() // nothing listening anymore

	client := NewClient(srv.URL, 200, nil, WithHTTPClient(httpClient))
	_, err := client.CarePlan(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Login(t *testing.T) {
	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Empty(t, r.Header.Get("Authorization"), "login must not send a token")

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "meera@example.com", req.Email)

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-abc",
			"token_type":   "bearer",
			"user": map[string]any{
				"id": 7, "name": "Meera", "email": req.Email,
				"age": 54, "gender": "female",
				"diseases": []string{"diabetes", "hypertension"},
			},
		})
	})
	defer srv.Close()

	session, err := testClient(srv, "").Login(context.Background(), LoginRequest{
		Email:    "meera@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", session.Token)
	assert.Equal(t, int64(7), session.User.ID)
	assert.Equal(t, []string{"diabetes", "hypertension"}, session.User.Diseases)
}

func TestClient_LogGlucose_SurfacesAlert(t *testing.T) {
	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/logs/glucose", r.URL.Path)

		var entry GlucoseEntry
		require.NoError(t, json.NewDecoder(r.Body).Decode(&entry))
		assert.Equal(t, 250.0, entry.Value)
		assert.Equal(t, domain.ReadingFasting, entry.ReadingType)

		json.NewEncoder(w).Encode(map[string]any{
			"id":      41,
			"message": "Glucose reading of 250 mg/dL logged successfully",
			"alert":   "CRITICAL: Very high blood sugar!",
		})
	})
	defer srv.Close()

	created, err := testClient(srv, "tok").LogGlucose(context.Background(), GlucoseEntry{
		Value:       250,
		ReadingType: domain.ReadingFasting,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(41), created.ID)
	assert.NotEmpty(t, created.Alert)
}

func TestClient_Medications_RoundTrip(t *testing.T) {
	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/medications":
			w.Write([]byte(`{
				"medications": [{
					"id": 3, "name": "Metformin", "dosage": "500mg",
					"frequency": "twice_daily", "times_of_day": ["08:00", "20:00"],
					"today_status": [{"time": "08:00", "taken": true}, {"time": "20:00", "taken": false}]
				}],
				"disclaimer": "Do not modify dosage without consulting your doctor."
			}`))
		case r.Method == http.MethodPost && r.URL.Path == "/medications/log":
			var req IntakeRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, int64(3), req.MedicationID)
			assert.Equal(t, "20:00", req.ScheduledTime)
			assert.True(t, req.Taken)
			w.Write([]byte(`{"id": 9, "message": "Medication intake logged"}`))
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/medications/"):
			assert.Equal(t, "/medications/3", r.URL.Path)
			w.Write([]byte(`{"message": "deleted"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	defer srv.Close()

	client := testClient(srv, "tok")
	ctx := context.Background()

	meds, err := client.Medications(ctx)
	require.NoError(t, err)
	require.Len(t, meds, 1)
	assert.Equal(t, "Metformin", meds[0].Name)
	assert.Equal(t, domain.FrequencyTwiceDaily, meds[0].Frequency)
	require.Len(t, meds[0].TodayStatus, 2)
	assert.True(t, meds[0].TodayStatus[0].Taken)

	require.NoError(t, client.LogMedicationIntake(ctx, IntakeRequest{
		MedicationID: 3, ScheduledTime: "20:00", Taken: true,
	}))
	require.NoError(t, client.DeleteMedication(ctx, 3))
}

func TestClient_AnalyzeFoodImage_Multipart(t *testing.T) {
	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/food/analyze-image", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "lunch", r.FormValue("meal_type"))
		assert.Equal(t, "1 plate", r.FormValue("quantity"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "meal.jpg", header.Filename)

		json.NewEncoder(w).Encode(map[string]any{
			"log_id": 12,
			"food":   "vegetable biryani",
			"nutrition": map[string]any{
				"calories": 290, "carbs": 35, "protein": 15,
			},
			"rating": "Acceptable",
		})
	})
	defer srv.Close()

	analysis, err := testClient(srv, "tok").AnalyzeFoodImage(
		context.Background(), "/tmp/meal.jpg", strings.NewReader("jpegbytes"),
		domain.MealLunch, "1 plate")
	require.NoError(t, err)
	assert.Equal(t, int64(12), analysis.LogID)
	assert.Equal(t, 290.0, analysis.Nutrition.Calories)
}

func TestParseAPITime(t *testing.T) {
	assert.True(t, parseAPITime().IsZero())
	assert.True(t, parseAPITime("", "garbage").IsZero())
	assert.False(t, parseAPITime("2025-06-18").IsZero())
	assert.False(t, parseAPITime("", "2025-06-18 08:00:00").IsZero(),
		"falls through empty candidates")
	assert.Equal(t, time.Local, parseAPITime("2025-06-18T08:00:00").Location(),
		"zoneless timestamps are device-local")
}
