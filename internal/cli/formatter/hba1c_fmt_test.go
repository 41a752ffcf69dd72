package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maniksharma/vitalog/internal/api"
	"github.com/maniksharma/vitalog/internal/domain"
)

func TestFormatHbA1cLogged(t *testing.T) {
	out := FormatHbA1cLogged(&api.HbA1cLogged{
		Message:  "HbA1c of 6.8% logged for 2026-08-01",
		Feedback: "Good control for most diabetics.",
		Citation: "ADA Standards of Care",
	})
	assert.Contains(t, out, "6.8%")
	assert.Contains(t, out, "Good control")
	assert.Contains(t, out, "ADA Standards of Care")
}

func TestFormatHbA1cHistory(t *testing.T) {
	out := FormatHbA1cHistory(&domain.HbA1cHistory{
		History: []domain.HbA1cResult{
			{Value: 6.8, TestDate: "2026-08-01", LabName: "City Labs"},
			{Value: 7.4, TestDate: "2026-05-02"},
		},
		Reminder: "It's been 115 days since your last HbA1c test.",
		Target:   "Below 7% for most adults with diabetes",
	})
	assert.Contains(t, out, "HBA1C HISTORY")
	assert.Contains(t, out, "2026-08-01")
	assert.Contains(t, out, "6.8%")
	assert.Contains(t, out, "City Labs")
	assert.Contains(t, out, "Below 7%")
	assert.Contains(t, out, "115 days")
}

func TestFormatHbA1cHistory_Empty(t *testing.T) {
	out := FormatHbA1cHistory(&domain.HbA1cHistory{
		Reminder: "No HbA1c records found.",
	})
	assert.Contains(t, out, "No results recorded yet.")
	assert.Contains(t, out, "No HbA1c records found.")
}

func TestHbA1cBand(t *testing.T) {
	assert.Equal(t, StyleGreen, hba1cBand(5.6))
	assert.Equal(t, StyleGreen, hba1cBand(6.9))
	assert.Equal(t, StyleYellow, hba1cBand(7.5))
	assert.Equal(t, StyleRed, hba1cBand(8.2))
}
