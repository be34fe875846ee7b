package models

// ActivityRating is one member's 1-5 score and comment for one activity.
// The unique index makes a second rating by the same member for the same
// activity fail on the storage layer.
type ActivityRating struct {
	Model
	ActivityID uint64 `gorm:"uniqueIndex:activity_rating_activity_member"`
	Activity   Activity
	MemberID   uint64 `gorm:"uniqueIndex:activity_rating_activity_member"`
	Member     Member `gorm:"constraint:OnDelete:CASCADE"`
	Rating     int
	Comment    string
}
