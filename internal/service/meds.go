package service

import (
	"context"
	"fmt"
	"time"

	"github.com/maniksharma/vitalog/internal/api"
	"github.com/maniksharma/vitalog/internal/domain"
)

// MedicationService manages the medication list and dose tracking.
type MedicationService struct {
	client *api.Client
}

// NewMedicationService creates a MedicationService.
func NewMedicationService(client *api.Client) *MedicationService {
	return &MedicationService{client: client}
}

// List returns all active medications with today's dose status.
func (s *MedicationService) List(ctx context.Context) ([]domain.Medication, error) {
	return s.client.Medications(ctx)
}

// Add validates and creates a medication.
func (s *MedicationService) Add(ctx context.Context, req api.MedicationCreate) (*api.MedCreated, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("medication name is required")
	}
	if !domain.ValidFrequencies[string(req.Frequency)] {
		return nil, fmt.Errorf("unknown frequency %q", req.Frequency)
	}
	if len(req.TimesOfDay) == 0 {
		return nil, fmt.Errorf("at least one scheduled time is required")
	}
	for _, tod := range req.TimesOfDay {
		if _, err := time.Parse("15:04", tod); err != nil {
			return nil, fmt.Errorf("invalid time of day %q (use HH:MM)", tod)
		}
	}
	return s.client.AddMedication(ctx, req)
}

// Remove deletes a medication. Medications are the only domain entities
// the API allows deleting.
func (s *MedicationService) Remove(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid medication id %d", id)
	}
	return s.client.DeleteMedication(ctx, id)
}

// MarkDose records one scheduled dose as taken (or skipped) today. The
// scheduled time must match one of the medication's times of day, which
// the caller resolves from List.
func (s *MedicationService) MarkDose(ctx context.Context, medID int64, scheduledTime string, taken bool) error {
	if medID <= 0 {
		return fmt.Errorf("invalid medication id %d", medID)
	}
	if _, err := time.Parse("15:04", scheduledTime); err != nil {
		return fmt.Errorf("invalid scheduled time %q (use HH:MM)", scheduledTime)
	}
	return s.client.LogMedicationIntake(ctx, api.IntakeRequest{
		MedicationID:  medID,
		ScheduledTime: scheduledTime,
		Taken:         taken,
	})
}

// AdherenceToday computes today's dose adherence across all medications:
// doses taken over doses scheduled. No scheduled doses counts as fully
// adherent.
func AdherenceToday(meds []domain.Medication) (taken, scheduled int) {
	for _, m := range meds {
		for _, d := range m.TodayStatus {
			scheduled++
			if d.Taken {
				taken++
			}
		}
	}
	return taken, scheduled
}
