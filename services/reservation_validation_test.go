package services

import (
	"errors"
	"testing"
	"time"

	"hotel-reservations/apperrors"
)

func day(offset int) time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestValidateReservationDates(t *testing.T) {
	cases := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{name: "tomorrow to next week", start: day(1), end: day(7), wantErr: false},
		{name: "today to tomorrow", start: day(0), end: day(1), wantErr: false},
		{name: "same day", start: day(1), end: day(1), wantErr: true},
		{name: "inverted range", start: day(2), end: day(1), wantErr: true},
		{name: "start in the past", start: day(-1), end: day(1), wantErr: true},
		{name: "start in the past with valid length", start: day(-3), end: day(3), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateReservationDates(tc.start, tc.end)
			if tc.wantErr {
				if !errors.Is(err, apperrors.ErrInvalidRequest) {
					t.Fatalf("expected invalid request, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateDiscountRate(t *testing.T) {
	cases := []struct {
		name    string
		rate    float64
		wantErr bool
	}{
		{name: "zero", rate: 0, wantErr: false},
		{name: "fifteen percent", rate: 0.15, wantErr: false},
		{name: "full discount", rate: 1, wantErr: false},
		{name: "negative", rate: -0.1, wantErr: true},
		{name: "above one", rate: 1.5, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateDiscountRate(tc.rate)
			if tc.wantErr {
				if !errors.Is(err, apperrors.ErrInvalidRequest) {
					t.Fatalf("expected invalid request, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// Two reservations may cover the same room for overlapping date ranges;
// nothing rejects the second booking today. Documented here so the gap is
// visible if availability checking ever becomes a requirement.
func TestOverlappingReservationsUnverified(t *testing.T) {
	t.Skip("no availability conflict detection: overlapping reservations for the same room are permitted")
}
