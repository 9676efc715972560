package models

import (
	"testing"
	"time"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestReservationAmount(t *testing.T) {
	cases := []struct {
		name        string
		reservation Reservation
		expected    float64
	}{
		{
			name: "three nights plain",
			reservation: Reservation{
				StartDate: date("2024-01-01"),
				EndDate:   date("2024-01-04"),
				Kind:      KindStandard,
				Room:      Room{Price: 500},
			},
			expected: 1500.0,
		},
		{
			name: "three nights online with 20 percent discount",
			reservation: Reservation{
				StartDate:    date("2024-01-01"),
				EndDate:      date("2024-01-04"),
				Kind:         KindOnline,
				DiscountRate: 0.20,
				Room:         Room{Price: 500},
			},
			expected: 1200.0,
		},
		{
			name: "same-day range floors at one night",
			reservation: Reservation{
				StartDate: date("2024-01-01"),
				EndDate:   date("2024-01-01"),
				Kind:      KindStandard,
				Room:      Room{Price: 500},
			},
			expected: 500.0,
		},
		{
			name: "inverted range floors at one night",
			reservation: Reservation{
				StartDate: date("2024-01-04"),
				EndDate:   date("2024-01-01"),
				Kind:      KindStandard,
				Room:      Room{Price: 500},
			},
			expected: 500.0,
		},
		{
			name: "full discount online",
			reservation: Reservation{
				StartDate:    date("2024-01-01"),
				EndDate:      date("2024-01-03"),
				Kind:         KindOnline,
				DiscountRate: 1.0,
				Room:         Room{Price: 750},
			},
			expected: 0.0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.reservation.Amount()
			if got != tc.expected {
				t.Fatalf("expected amount %v, got %v", tc.expected, got)
			}
			if got < 0 {
				t.Fatalf("amount must never be negative, got %v", got)
			}
		})
	}
}

func TestConfirmKeepsPreviousEmployeeWhenNoneSupplied(t *testing.T) {
	previousID := uint(7)
	previous := &Employee{Name: "Amina"}
	previous.ID = previousID

	res := Reservation{Status: StatusPending, Employee: previous, EmployeeID: &previousID}
	res.Confirm(nil)

	if res.Status != StatusConfirmed {
		t.Fatalf("expected status %s, got %s", StatusConfirmed, res.Status)
	}
	if res.EmployeeID == nil || *res.EmployeeID != previousID {
		t.Fatal("confirm without employee must leave the recorded employee untouched")
	}
}

func TestConfirmOverwritesEmployeeWhenSupplied(t *testing.T) {
	acting := &Employee{Name: "Karim"}
	acting.ID = 3

	res := Reservation{Status: StatusPending}
	res.Confirm(acting)

	if res.Status != StatusConfirmed {
		t.Fatalf("expected status %s, got %s", StatusConfirmed, res.Status)
	}
	if res.EmployeeID == nil || *res.EmployeeID != acting.ID {
		t.Fatal("confirm with employee must record it as the acting employee")
	}
}

func TestCancelClearsEmployeeWhenNoneSupplied(t *testing.T) {
	previousID := uint(7)
	previous := &Employee{Name: "Amina"}
	previous.ID = previousID

	res := Reservation{Status: StatusConfirmed, Employee: previous, EmployeeID: &previousID}
	res.Cancel(nil)

	if res.Status != StatusCancelled {
		t.Fatalf("expected status %s, got %s", StatusCancelled, res.Status)
	}
	if res.EmployeeID != nil || res.Employee != nil {
		t.Fatal("cancel without employee must clear the recorded employee")
	}
}

func TestCancelSetsEmployeeWhenSupplied(t *testing.T) {
	acting := &Employee{Name: "Karim"}
	acting.ID = 3

	res := Reservation{Status: StatusPending}
	res.Cancel(acting)

	if res.Status != StatusCancelled {
		t.Fatalf("expected status %s, got %s", StatusCancelled, res.Status)
	}
	if res.EmployeeID == nil || *res.EmployeeID != acting.ID {
		t.Fatal("cancel with employee must record it as the acting employee")
	}
}

func TestStatusHistoryAppendsOnEachTransition(t *testing.T) {
	acting := &Employee{Name: "Karim"}
	acting.ID = 3

	res := Reservation{Status: StatusPending}
	res.Confirm(acting)
	res.Cancel(nil)

	history := res.History()
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	if history[0].Status != StatusConfirmed || history[0].Actor != "Karim" {
		t.Fatalf("unexpected first entry: %+v", history[0])
	}
	if history[1].Status != StatusCancelled || history[1].Actor != SystemActor {
		t.Fatalf("unexpected second entry: %+v", history[1])
	}
}

func TestActorName(t *testing.T) {
	if got := ActorName(nil); got != SystemActor {
		t.Fatalf("expected %q for nil employee, got %q", SystemActor, got)
	}
	if got := ActorName(&Employee{Name: "Amina"}); got != "Amina" {
		t.Fatalf("expected employee name, got %q", got)
	}
}
