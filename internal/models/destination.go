package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Destination is a trip grouping that owns the activities planned for it.
type Destination struct {
	Model
	Name        string
	Location    string
	StartDate   time.Time
	EndDate     time.Time
	Description string
	Budget      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`

	Activities []Activity `gorm:"constraint:OnDelete:CASCADE"`
}
