package models

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	RoomTypeSimple = "SIMPLE"
	RoomTypeSuite  = "SUITE"
)

// Room is a single-table variant: plain rooms leave the suite fields
// zero-valued, suites carry RoomType = "SUITE" plus the extra columns.
type Room struct {
	gorm.Model

	RoomNumber int     `json:"roomNumber" gorm:"column:room_number;uniqueIndex"`
	Price      float64 `json:"price"`
	RoomType   string  `json:"roomType" gorm:"column:room_type;type:varchar(20);default:SIMPLE"`

	// Suite-only fields.
	SuiteName string `json:"suiteName,omitempty" gorm:"column:suite_name;type:varchar(100)"`
	RoomCount int    `json:"roomCount,omitempty" gorm:"column:room_count"`
	Jacuzzi   bool   `json:"jacuzzi"`
}

func (r Room) IsSuite() bool {
	return r.RoomType == RoomTypeSuite
}

func (r Room) Describe() string {
	if r.IsSuite() {
		jacuzzi := "no"
		if r.Jacuzzi {
			jacuzzi = "yes"
		}
		return fmt.Sprintf("Suite %d (id=%d) - %s - %d rooms - jacuzzi: %s - %.2f per night",
			r.RoomNumber, r.ID, r.SuiteName, r.RoomCount, jacuzzi, r.Price)
	}
	return fmt.Sprintf("Room %d (id=%d) - %s - %.2f per night",
		r.RoomNumber, r.ID, r.RoomType, r.Price)
}
