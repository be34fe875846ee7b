package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a cost incurred for an activity. Its member-level breakdown
// is stored in ExpenseSplit rows.
type Expense struct {
	Model
	ActivityID  uint64
	Activity    Activity
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        time.Time

	ExpenseSplits []ExpenseSplit `gorm:"constraint:OnDelete:CASCADE"`
}

// ExpenseSplit is one member's share of an expense.
type ExpenseSplit struct {
	Model
	ExpenseID uint64
	MemberID  uint64
	Member    Member          `gorm:"constraint:OnDelete:CASCADE"`
	Share     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	IsPaid    bool
}
