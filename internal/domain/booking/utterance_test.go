//go:build unit

package booking_test

import (
	"testing"

	"campus-tickets/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestIsAffirmative(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      bool
	}{
		{"plain yes", "yes", true},
		{"yes with punctuation", "Yes!", true},
		{"yes in a sentence", "sure, go ahead", true},
		{"confirm keyword", "confirm the booking", true},
		{"okay", "okay", true},
		{"plain no", "no", false},
		{"negation wins over affirmation", "no, not yet... ok?", false},
		{"cancel wins over yes", "yes wait cancel that", false},
		{"unrelated text", "what events are on", false},
		{"affirmative token inside a word", "yesterday was fun", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.IsAffirmative(tt.utterance))
		})
	}
}

func TestIsNegative(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      bool
	}{
		{"plain no", "no", true},
		{"nope", "Nope.", true},
		{"cancel", "cancel it please", true},
		{"stop", "STOP", true},
		{"plain yes", "yes", false},
		{"negative token inside a word", "nostalgia night sounds great", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.IsNegative(tt.utterance))
		})
	}
}
