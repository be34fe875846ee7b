package models

// Member is a trip participant. Members are referenced by activity
// pairings, expense splits, and ratings, but owned by none of them.
type Member struct {
	Model
	Name                 string
	Email                string
	DietaryRestrictions  string
	HealthConsiderations string
	EmergencyContact     string

	ActivityMembers []ActivityMember `gorm:"constraint:OnDelete:CASCADE"`
}
