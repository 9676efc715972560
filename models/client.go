package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DefaultVIPDiscount is the discount rate applied to VIP clients when none
// is given explicitly.
const DefaultVIPDiscount = 0.15

// Client is a kind-tagged variant: VIP clients carry VIP = true and a
// discount rate in [0,1]; plain clients leave both zero-valued.
type Client struct {
	gorm.Model

	LastName  string `json:"lastName" gorm:"column:last_name;type:varchar(50)"`
	FirstName string `json:"firstName" gorm:"column:first_name;type:varchar(50)"`
	Email     string `json:"email" gorm:"type:varchar(100)"`
	Phone     string `json:"phone" gorm:"type:varchar(20)"`

	VIP          bool    `json:"vip"`
	DiscountRate float64 `json:"discountRate" gorm:"column:discount_rate"`
}

// NewReservation builds a pending reservation for this client. VIP clients
// always book online with their own discount rate applied; plain clients
// get a standard reservation.
func (c Client) NewReservation(room Room, start, end time.Time) Reservation {
	res := Reservation{
		StartDate: start,
		EndDate:   end,
		Status:    StatusPending,
		Kind:      KindStandard,
		ClientID:  c.ID,
		RoomID:    room.ID,
		Client:    c,
		Room:      room,
	}
	if c.VIP {
		res.Kind = KindOnline
		res.Platform = DefaultPlatform
		res.DiscountRate = c.DiscountRate
	}
	return res
}

func (c Client) Describe() string {
	base := fmt.Sprintf("%s %s (id=%d) - %s - %s", c.FirstName, c.LastName, c.ID, c.Email, c.Phone)
	if c.VIP {
		return fmt.Sprintf("%s - VIP (%d%%)", base, int(c.DiscountRate*100))
	}
	return base
}
