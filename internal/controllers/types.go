package controllers

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tripfolio/backend/internal/models"
)

// DestinationSummary is the short destination projection nested in
// activity and member responses.
type DestinationSummary struct {
	DestinationID uint64 `json:"destinationId" example:"2"`
	Name          string `json:"name" example:"Tokyo Trip"`
	Location      string `json:"location" example:"Tokyo"`
}

func newDestinationSummary(model models.Destination) DestinationSummary {
	return DestinationSummary{
		DestinationID: model.ID,
		Name:          model.Name,
		Location:      model.Location,
	}
}

// ActivitySummary is the scalar activity projection nested in destination
// and pairing responses.
type ActivitySummary struct {
	ActivityID    uint64          `json:"activityId" example:"7"`
	Name          string          `json:"name" example:"Tower Visit"`
	DateTime      time.Time       `json:"dateTime" example:"2024-07-02T10:00:00Z"`
	Location      string          `json:"location" example:"Tokyo Tower"`
	Description   string          `json:"description"`
	Cost          decimal.Decimal `json:"cost" example:"1200"`
	DestinationID uint64          `json:"destinationId" example:"2"`
}

func newActivitySummary(model models.Activity) ActivitySummary {
	return ActivitySummary{
		ActivityID:    model.ID,
		Name:          model.Name,
		DateTime:      model.DateTime,
		Location:      model.Location,
		Description:   model.Description,
		Cost:          model.Cost,
		DestinationID: model.DestinationID,
	}
}

// MemberSummary is the member projection nested in activity responses. It
// carries the member's role for that activity, drawn from the pairing.
type MemberSummary struct {
	MemberID    uint64 `json:"memberId" example:"3"`
	Name        string `json:"name" example:"Alice"`
	Email       string `json:"email" example:"alice@example.com"`
	IsOrganizer bool   `json:"isOrganizer" example:"true"`
	Notes       string `json:"notes"`
}

// MemberInfo is the scalar member projection nested in pairing responses.
type MemberInfo struct {
	MemberID             uint64 `json:"memberId" example:"3"`
	Name                 string `json:"name" example:"Alice"`
	Email                string `json:"email" example:"alice@example.com"`
	DietaryRestrictions  string `json:"dietaryRestrictions"`
	HealthConsiderations string `json:"healthConsiderations"`
	EmergencyContact     string `json:"emergencyContact"`
}

func newMemberInfo(model models.Member) MemberInfo {
	return MemberInfo{
		MemberID:             model.ID,
		Name:                 model.Name,
		Email:                model.Email,
		DietaryRestrictions:  model.DietaryRestrictions,
		HealthConsiderations: model.HealthConsiderations,
		EmergencyContact:     model.EmergencyContact,
	}
}
