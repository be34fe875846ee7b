package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Activity is a scheduled event within a destination.
type Activity struct {
	Model
	DestinationID uint64
	Destination   Destination
	Name          string
	DateTime      time.Time
	Location      string
	Description   string
	Cost          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`

	ActivityMembers []ActivityMember `gorm:"constraint:OnDelete:CASCADE"`
	Expenses        []Expense        `gorm:"constraint:OnDelete:CASCADE"`
	Ratings         []ActivityRating `gorm:"constraint:OnDelete:CASCADE"`
}
