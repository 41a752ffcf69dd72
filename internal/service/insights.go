package service

import (
	"context"
	"fmt"
	"os"

	"github.com/maniksharma/vitalog/internal/api"
	"github.com/maniksharma/vitalog/internal/domain"
)

// InsightService fetches the server-computed analysis views: trends,
// weekly summary, weekly plan adjustments, and the reminders feed.
type InsightService struct {
	client *api.Client
}

// NewInsightService creates an InsightService.
func NewInsightService(client *api.Client) *InsightService {
	return &InsightService{client: client}
}

// CarePlan returns today's per-condition care plan.
func (s *InsightService) CarePlan(ctx context.Context) (*domain.CarePlan, error) {
	return s.client.CarePlan(ctx)
}

func (s *InsightService) Trends(ctx context.Context) (*api.TrendBundle, error) {
	return s.client.Trends(ctx)
}

// TrendFor returns the single-metric trend report for glucose or bp.
func (s *InsightService) TrendFor(ctx context.Context, kind domain.LogKind) (*domain.TrendReport, error) {
	switch kind {
	case domain.LogGlucose:
		return s.client.GlucoseTrends(ctx)
	case domain.LogBP:
		return s.client.BPTrends(ctx)
	default:
		return nil, fmt.Errorf("no trend report for log kind %q", kind)
	}
}

func (s *InsightService) WeeklySummary(ctx context.Context) (*domain.WeeklySummary, error) {
	return s.client.WeeklySummary(ctx)
}

func (s *InsightService) WeeklyAdjustments(ctx context.Context) (*domain.WeeklyAdjustments, error) {
	return s.client.WeeklyAdjustments(ctx)
}

func (s *InsightService) Reminders(ctx context.Context) (*api.Reminders, error) {
	return s.client.Reminders(ctx)
}

// FoodService submits food descriptions or photos for analysis. Every
// analysis also creates a food log server-side.
type FoodService struct {
	client *api.Client
}

// NewFoodService creates a FoodService.
func NewFoodService(client *api.Client) *FoodService {
	return &FoodService{client: client}
}

// Analyze estimates nutrition for a described meal.
func (s *FoodService) Analyze(ctx context.Context, description, quantity string, meal domain.MealType) (*domain.FoodAnalysis, error) {
	if description == "" {
		return nil, fmt.Errorf("food description is required")
	}
	if quantity == "" {
		quantity = "1 serving"
	}
	if !domain.ValidMealTypes[string(meal)] {
		return nil, fmt.Errorf("unknown meal type %q", meal)
	}
	return s.client.AnalyzeFood(ctx, api.FoodAnalyzeRequest{
		FoodDescription: description,
		Quantity:        quantity,
		MealType:        meal,
	})
}

// AnalyzeImage uploads a meal photo for analysis.
func (s *FoodService) AnalyzeImage(ctx context.Context, path string, meal domain.MealType, quantity string) (*domain.FoodAnalysis, error) {
	if !domain.ValidMealTypes[string(meal)] {
		return nil, fmt.Errorf("unknown meal type %q", meal)
	}
	if quantity == "" {
		quantity = "1 serving"
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	return s.client.AnalyzeFoodImage(ctx, path, f, meal, quantity)
}
