package models

// ActivityMember links one member to one activity, with the member's role
// for that activity. The (activity, member) pair is the primary key, so a
// second pairing for the same pair fails on the storage layer.
type ActivityMember struct {
	ActivityID  uint64 `gorm:"primaryKey"`
	MemberID    uint64 `gorm:"primaryKey"`
	IsOrganizer bool
	Notes       string

	Activity Activity
	Member   Member
}
