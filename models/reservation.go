package models

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
)

const (
	KindStandard = "STANDARD"
	KindOnline   = "ONLINE"
)

// DefaultPlatform is the booking platform attributed to online reservations
// created without an explicit one (VIP client bookings).
const DefaultPlatform = "WEBSITE"

// SystemActor labels confirm/cancel transitions performed without an
// employee.
const SystemActor = "system"

// Reservation is a kind-tagged variant: online reservations carry
// Kind = "ONLINE" plus a platform and a discount rate in [0,1].
type Reservation struct {
	gorm.Model

	ReferenceCode string    `json:"referenceCode" gorm:"column:reference_code;size:64"`
	StartDate     time.Time `json:"startDate" gorm:"column:start_date"`
	EndDate       time.Time `json:"endDate" gorm:"column:end_date"`
	Status        string    `json:"status" gorm:"size:20;default:PENDING"`
	Kind          string    `json:"kind" gorm:"size:20;default:STANDARD"`

	ClientID   uint  `json:"clientId" gorm:"index;column:client_id"`
	RoomID     uint  `json:"roomId" gorm:"index;column:room_id"`
	EmployeeID *uint `json:"employeeId,omitempty" gorm:"column:employee_id"`

	// Online-only fields.
	Platform     string  `json:"platform,omitempty" gorm:"type:varchar(50)"`
	DiscountRate float64 `json:"discountRate" gorm:"column:discount_rate"`

	// Append-only transition log, one entry per confirm/cancel.
	StatusHistory datatypes.JSON `json:"statusHistory,omitempty" gorm:"column:status_history"`

	Client   Client    `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Room     Room      `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// StatusChange is one entry of a reservation's status history.
type StatusChange struct {
	Status string    `json:"status"`
	Actor  string    `json:"actor"`
	At     time.Time `json:"at"`
}

func (r Reservation) IsOnline() bool {
	return r.Kind == KindOnline
}

// ActorName returns the display name for a transition actor, falling back
// to the system label when no employee acted.
func ActorName(by *Employee) string {
	if by == nil {
		return SystemActor
	}
	return by.Name
}

// Confirm marks the reservation CONFIRMED. When an employee is supplied it
// is recorded as the acting employee; otherwise the previously recorded
// employee, if any, is left untouched. There is no guard against
// re-confirming.
func (r *Reservation) Confirm(by *Employee) {
	if by != nil {
		r.Employee = by
		r.EmployeeID = &by.ID
	}
	r.Status = StatusConfirmed
	r.appendStatusChange(ActorName(by))
	log.Printf("✅ reservation %d confirmed by %s", r.ID, ActorName(by))
	if r.IsOnline() {
		log.Printf("🌐 online reservation confirmed via %s", r.Platform)
	}
}

// Cancel marks the reservation CANCELLED. Unlike Confirm, the acting
// employee is always overwritten with the supplied value, so cancelling
// without an employee clears the record.
func (r *Reservation) Cancel(by *Employee) {
	r.Employee = by
	if by != nil {
		r.EmployeeID = &by.ID
	} else {
		r.EmployeeID = nil
	}
	r.Status = StatusCancelled
	r.appendStatusChange(ActorName(by))
	log.Printf("❌ reservation %d cancelled by %s", r.ID, ActorName(by))
}

func (r *Reservation) appendStatusChange(actor string) {
	history := r.History()
	history = append(history, StatusChange{
		Status: r.Status,
		Actor:  actor,
		At:     time.Now().UTC(),
	})
	raw, err := json.Marshal(history)
	if err != nil {
		log.Printf("⚠️  failed to encode status history for reservation %d: %v", r.ID, err)
		return
	}
	r.StatusHistory = datatypes.JSON(raw)
}

// History decodes the status-history column. A missing or malformed column
// yields an empty slice.
func (r Reservation) History() []StatusChange {
	if len(r.StatusHistory) == 0 {
		return nil
	}
	var history []StatusChange
	if err := json.Unmarshal(r.StatusHistory, &history); err != nil {
		return nil
	}
	return history
}

// Nights returns the whole days between start and end, floored at one so a
// same-day range never produces a zero charge.
func (r Reservation) Nights() int64 {
	nights := int64(r.EndDate.Sub(r.StartDate).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return nights
}

// Amount computes the total charge: nightly room price times nights, with
// the online discount applied multiplicatively. No rounding is performed.
func (r Reservation) Amount() float64 {
	total := r.Room.Price * float64(r.Nights())
	if r.IsOnline() {
		total *= 1 - r.DiscountRate
	}
	return total
}

func (r Reservation) Describe() string {
	if r.IsOnline() {
		return fmt.Sprintf("Online reservation %d [%s] via %s: %s %s -> room %d (discount: %d%%) - %.2f",
			r.ID, r.Status, r.Platform, r.Client.FirstName, r.Client.LastName,
			r.Room.RoomNumber, int(r.DiscountRate*100), r.Amount())
	}
	return fmt.Sprintf("Reservation %d [%s]: %s %s -> room %d from %s to %s - %.2f",
		r.ID, r.Status, r.Client.FirstName, r.Client.LastName, r.Room.RoomNumber,
		r.StartDate.Format("2006-01-02"), r.EndDate.Format("2006-01-02"), r.Amount())
}
