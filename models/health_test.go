package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPatientStatus_Next(t *testing.T) {
	tests := []struct {
		from PatientStatus
		want PatientStatus
	}{
		{PatientSafe, PatientInjured},
		{PatientInjured, PatientCritical},
		{PatientCritical, PatientDeceased},
		{PatientDeceased, PatientSafe},
		{"", PatientSafe},
		{"Safe", PatientSafe},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Next())
		})
	}
}

func TestHealthReport_String_Empty(t *testing.T) {
	report := HealthReport{
		ShelterID:   "kalix",
		GeneratedAt: time.Date(2024, 10, 19, 12, 30, 0, 0, time.UTC),
	}

	want := "SOS health report, shelter: kalix\n" +
		"Date: 2024-10-19 12:30\n" +
		"\nPeople:\n- (none)\n" +
		"\nSupplies:\n- (none)\n" +
		"\nSummary:\n0 total. Safe: 0, Injured: 0, Critical: 0, Deceased: 0.\n"
	assert.Equal(t, want, report.String())
}
