package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/maniksharma/vitalog/internal/domain"
)

// ── auth ─────────────────────────────────────────────────────────────────────

// SignupRequest registers a new user together with baseline health data
// keyed by condition.
type SignupRequest struct {
	Name       string                    `json:"name"`
	Email      string                    `json:"email"`
	Password   string                    `json:"password"`
	Age        int                       `json:"age"`
	Gender     string                    `json:"gender"`
	Diseases   []string                  `json:"diseases"`
	HealthData map[string]map[string]any `json:"health_data"`
}

// LoginRequest authenticates an existing user.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) (*Session, error) {
	var s Session
	if err := c.do(ctx, http.MethodPost, "/signup", nil, req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	var s Session
	if err := c.do(ctx, http.MethodPost, "/login", nil, req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*domain.UserProfile, error) {
	var p domain.UserProfile
	if err := c.do(ctx, http.MethodGet, "/me", nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ── log entries ──────────────────────────────────────────────────────────────

// GlucoseEntry is a new blood glucose reading in mg/dL.
type GlucoseEntry struct {
	Value       float64            `json:"value"`
	ReadingType domain.ReadingType `json:"reading_type"`
	Notes       string             `json:"notes,omitempty"`
}

// BPEntry is a new blood pressure reading in mmHg.
type BPEntry struct {
	Systolic       float64 `json:"systolic"`
	Diastolic      float64 `json:"diastolic"`
	Pulse          int     `json:"pulse,omitempty"`
	ReadingContext string  `json:"reading_context,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}

// FoodEntry is a new food intake entry in kcal.
type FoodEntry struct {
	Calories    float64         `json:"calories"`
	MealType    domain.MealType `json:"meal_type"`
	Description string          `json:"description,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// ActivityEntry is a new physical activity entry in minutes.
type ActivityEntry struct {
	DurationMinutes float64             `json:"duration_minutes"`
	ActivityType    domain.ActivityType `json:"activity_type"`
	Intensity       domain.Intensity    `json:"intensity"`
	Notes           string              `json:"notes,omitempty"`
}

// WaterEntry is a new water intake entry in millilitres.
type WaterEntry struct {
	AmountML int `json:"amount_ml"`
}

func (c *Client) LogGlucose(ctx context.Context, entry GlucoseEntry) (*LogCreated, error) {
	return c.createLog(ctx, "/logs/glucose", entry)
}

func (c *Client) LogBP(ctx context.Context, entry BPEntry) (*LogCreated, error) {
	return c.createLog(ctx, "/logs/bp", entry)
}

func (c *Client) LogFood(ctx context.Context, entry FoodEntry) (*LogCreated, error) {
	return c.createLog(ctx, "/logs/food", entry)
}

func (c *Client) LogActivity(ctx context.Context, entry ActivityEntry) (*LogCreated, error) {
	return c.createLog(ctx, "/logs/activity", entry)
}

func (c *Client) LogWater(ctx context.Context, entry WaterEntry) (*LogCreated, error) {
	return c.createLog(ctx, "/logs/water", entry)
}

func (c *Client) createLog(ctx context.Context, path string, entry any) (*LogCreated, error) {
	var created LogCreated
	if err := c.do(ctx, http.MethodPost, path, nil, entry, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Logs fetches the trailing window of records for one log kind.
func (c *Client) Logs(ctx context.Context, kind domain.LogKind, days int) (*LogWindow, error) {
	var wire logsWire
	path := "/logs/" + string(kind)
	if err := c.do(ctx, http.MethodGet, path, daysQuery(days), nil, &wire); err != nil {
		return nil, err
	}
	return wire.toDomain(), nil
}

// AllLogs fetches the trailing window across every log kind.
func (c *Client) AllLogs(ctx context.Context, days int) (*LogWindow, error) {
	var wire logsWire
	if err := c.do(ctx, http.MethodGet, "/logs", daysQuery(days), nil, &wire); err != nil {
		return nil, err
	}
	return wire.toDomain(), nil
}

// ── care plan, trends, summaries ─────────────────────────────────────────────

func (c *Client) CarePlan(ctx context.Context) (*domain.CarePlan, error) {
	var plan domain.CarePlan
	if err := c.do(ctx, http.MethodGet, "/care-plan", nil, nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) Trends(ctx context.Context) (*TrendBundle, error) {
	var bundle TrendBundle
	if err := c.do(ctx, http.MethodGet, "/trends", nil, nil, &bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

func (c *Client) GlucoseTrends(ctx context.Context) (*domain.TrendReport, error) {
	return c.trendReport(ctx, "/trends/glucose")
}

func (c *Client) BPTrends(ctx context.Context) (*domain.TrendReport, error) {
	return c.trendReport(ctx, "/trends/bp")
}

func (c *Client) trendReport(ctx context.Context, path string) (*domain.TrendReport, error) {
	var report domain.TrendReport
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) WeeklyAdjustments(ctx context.Context) (*domain.WeeklyAdjustments, error) {
	var adj domain.WeeklyAdjustments
	if err := c.do(ctx, http.MethodGet, "/weekly-adjustments", nil, nil, &adj); err != nil {
		return nil, err
	}
	return &adj, nil
}

func (c *Client) WeeklySummary(ctx context.Context) (*domain.WeeklySummary, error) {
	var sum domain.WeeklySummary
	if err := c.do(ctx, http.MethodGet, "/weekly-summary", nil, nil, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

// WaterToday returns today's water intake against the daily target.
func (c *Client) WaterToday(ctx context.Context) (*domain.WaterStatus, error) {
	var ws domain.WaterStatus
	if err := c.do(ctx, http.MethodGet, "/water/today", nil, nil, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// Reminders is the personalized care reminders feed.
type Reminders struct {
	Custom     []domain.Reminder
	Daily      []domain.Reminder
	Disclaimer string
}

func (c *Client) Reminders(ctx context.Context) (*Reminders, error) {
	var wire remindersWire
	if err := c.do(ctx, http.MethodGet, "/reminders", nil, nil, &wire); err != nil {
		return nil, err
	}
	return &Reminders{Custom: wire.Custom, Daily: wire.Daily, Disclaimer: wire.Disclaimer}, nil
}

// ── food analysis ────────────────────────────────────────────────────────────

// FoodAnalyzeRequest asks the server to estimate nutrition for a described
// meal; the server also records it as a food log.
type FoodAnalyzeRequest struct {
	FoodDescription string          `json:"food_description"`
	Quantity        string          `json:"quantity"`
	MealType        domain.MealType `json:"meal_type"`
}

func (c *Client) AnalyzeFood(ctx context.Context, req FoodAnalyzeRequest) (*domain.FoodAnalysis, error) {
	var analysis domain.FoodAnalysis
	if err := c.do(ctx, http.MethodPost, "/food/analyze", nil, req, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// AnalyzeFoodImage uploads a meal photo for nutrition analysis. The image
// travels as a multipart form alongside the meal type and quantity fields.
func (c *Client) AnalyzeFoodImage(ctx context.Context, filename string, image io.Reader, mealType domain.MealType, quantity string) (*domain.FoodAnalysis, error) {
	start := time.Now()
	analysis, status, err := c.postImage(ctx, filename, image, mealType, quantity)

	c.observer.OnCallComplete(CallEvent{
		Method:    http.MethodPost,
		Path:      "/food/analyze-image",
		Status:    status,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	return analysis, err
}

func (c *Client) postImage(ctx context.Context, filename string, image io.Reader, mealType domain.MealType, quantity string) (*domain.FoodAnalysis, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filepath.Base(filename))
	if err != nil {
		return nil, 0, fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, 0, fmt.Errorf("reading image: %w", err)
	}
	_ = mw.WriteField("meal_type", string(mealType))
	_ = mw.WriteField("quantity", quantity)
	if err := mw.Close(); err != nil {
		return nil, 0, fmt.Errorf("building multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/food/analyze-image", nil, &buf)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, transportError(ctx, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}
	if err := checkStatus(resp.StatusCode, respBody); err != nil {
		return nil, resp.StatusCode, err
	}

	var analysis domain.FoodAnalysis
	if err := sonic.Unmarshal(respBody, &analysis); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return &analysis, resp.StatusCode, nil
}

// ── medications ──────────────────────────────────────────────────────────────

// MedicationCreate adds a doctor-prescribed medication with its schedule.
type MedicationCreate struct {
	Name       string           `json:"name"`
	Dosage     string           `json:"dosage"`
	Frequency  domain.Frequency `json:"frequency"`
	TimesOfDay []string         `json:"times_of_day"`
	Notes      string           `json:"notes,omitempty"`
}

// IntakeRequest marks one scheduled dose as taken or skipped today.
type IntakeRequest struct {
	MedicationID  int64  `json:"medication_id"`
	ScheduledTime string `json:"scheduled_time"`
	Taken         bool   `json:"taken"`
}

func (c *Client) Medications(ctx context.Context) ([]domain.Medication, error) {
	var wire medicationsWire
	if err := c.do(ctx, http.MethodGet, "/medications", nil, nil, &wire); err != nil {
		return nil, err
	}
	return wire.Medications, nil
}

func (c *Client) AddMedication(ctx context.Context, req MedicationCreate) (*MedCreated, error) {
	var created MedCreated
	if err := c.do(ctx, http.MethodPost, "/medications", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteMedication(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/medications/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) LogMedicationIntake(ctx context.Context, req IntakeRequest) error {
	return c.do(ctx, http.MethodPost, "/medications/log", nil, req, nil)
}

// ── HbA1c lab results ────────────────────────────────────────────────────────

// HbA1cEntry records a lab-tested HbA1c result in percent.
type HbA1cEntry struct {
	Value    float64 `json:"value"`
	TestDate string  `json:"test_date"`
	LabName  string  `json:"lab_name,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

// HbA1cLogged acknowledges a new result; Feedback carries the server's
// reading of the value against clinical bands.
type HbA1cLogged struct {
	ID       int64  `json:"id"`
	Message  string `json:"message"`
	Feedback string `json:"feedback"`
	Citation string `json:"citation"`
}

func (c *Client) LogHbA1c(ctx context.Context, entry HbA1cEntry) (*HbA1cLogged, error) {
	var logged HbA1cLogged
	if err := c.do(ctx, http.MethodPost, "/hba1c", nil, entry, &logged); err != nil {
		return nil, err
	}
	return &logged, nil
}

func (c *Client) HbA1cHistory(ctx context.Context) (*domain.HbA1cHistory, error) {
	var hist domain.HbA1cHistory
	if err := c.do(ctx, http.MethodGet, "/hba1c", nil, nil, &hist); err != nil {
		return nil, err
	}
	return &hist, nil
}
