package models

import "errors"

var (
	// ErrGeneral is used for all database errors where we cannot give the
	// user a more helpful message than "something went wrong".
	ErrGeneral = errors.New("an error occurred on the server during your request")

	// ErrActivityMemberExists is returned when an activity-member pairing
	// with the same composite key already exists.
	ErrActivityMemberExists = errors.New("this member is already linked to this activity")

	// ErrActivityRatingExists is returned when a member rates the same
	// activity a second time. The message is part of the API contract.
	ErrActivityRatingExists = errors.New("Member has already rated this activity")
)
