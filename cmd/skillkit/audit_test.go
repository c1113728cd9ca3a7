package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/skillkit/skillkit/pkg/audit"
)

func TestEventDetails(t *testing.T) {
	tests := []struct {
		name     string
		event    audit.Event
		expected string
	}{
		{
			name: "license applied",
			event: audit.Event{
				Kind:   audit.EventLicenseApplied,
				Tier:   "maximum",
				Entity: "Acme Robotics LLC",
			},
			expected: "maximum tier, entity Acme Robotics LLC",
		},
		{
			name: "validation passed",
			event: audit.Event{
				Kind:   audit.EventValidationRun,
				Passed: true,
			},
			expected: "passed",
		},
		{
			name: "validation failed",
			event: audit.Event{
				Kind:     audit.EventValidationRun,
				Passed:   false,
				Failures: 3,
			},
			expected: "failed (3 checks)",
		},
		{
			name:     "unknown kind",
			event:    audit.Event{Kind: "other", CreatedAt: time.Now()},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, eventDetails(tt.event))
		})
	}
}
