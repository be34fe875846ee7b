package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tripfolio/backend/internal/controllers"
	"github.com/tripfolio/backend/internal/httputil"
	"github.com/tripfolio/backend/test"
)

func createTestActivityRating(t *testing.T, c controllers.ActivityRatingEditable, expectedStatus ...int) controllers.ActivityRating {
	if c.ActivityID == 0 {
		c.ActivityID = createTestActivity(t, controllers.ActivityEditable{}).ActivityID
	}

	if c.MemberID == 0 {
		c.MemberID = createTestMember(t, controllers.MemberEditable{}).MemberID
	}

	if c.Rating == 0 {
		c.Rating = 4
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/api/ActivityRatings", c)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var rating controllers.ActivityRating
	if r.Code == http.StatusCreated {
		test.DecodeResponse(t, &r, &rating)
	}

	return rating
}

func (suite *TestSuiteStandard) TestActivityRatingsOptions() {
	rating := createTestActivityRating(suite.T(), controllers.ActivityRatingEditable{})

	tests := []struct {
		name  string
		path  string
		allow string
	}{
		{"List endpoint", "", "OPTIONS, GET, POST"},
		{"Existing rating", fmt.Sprintf("/%d", rating.RatingID), "OPTIONS, GET, PUT, DELETE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com/api/ActivityRatings"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestActivityRatingsCreate() {
	a := createTestActivity(suite.T(), controllers.ActivityEditable{Name: "Tower Visit"})
	m := createTestMember(suite.T(), controllers.MemberEditable{Name: "Alice"})

	editable := controllers.ActivityRatingEditable{
		ActivityID: a.ActivityID,
		MemberID:   m.MemberID,
		Rating:     5,
		Comment:    "Great view from the top",
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/ActivityRatings", editable)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var rating controllers.ActivityRating
	test.DecodeResponse(suite.T(), &r, &rating)

	assert.Equal(suite.T(), "Tower Visit", rating.ActivityName)
	assert.Equal(suite.T(), "Alice", rating.MemberName)
	assert.Equal(suite.T(), 5, rating.Rating)
	assert.Equal(suite.T(), "Great view from the top", rating.Comment)

	location := r.Header().Get("Location")
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/api/ActivityRatings/%d", rating.RatingID), location)
}

func (suite *TestSuiteStandard) TestActivityRatingsCreateFails() {
	a := createTestActivity(suite.T(), controllers.ActivityEditable{})
	m := createTestMember(suite.T(), controllers.MemberEditable{})

	tests := []struct {
		name  string
		body  controllers.ActivityRatingEditable
		error string
	}{
		{"Rating too low", controllers.ActivityRatingEditable{ActivityID: a.ActivityID, MemberID: m.MemberID, Rating: 0}, "Rating must be between 1 and 5"},
		{"Rating too high", controllers.ActivityRatingEditable{ActivityID: a.ActivityID, MemberID: m.MemberID, Rating: 6}, "Rating must be between 1 and 5"},
		{"Invalid activity", controllers.ActivityRatingEditable{ActivityID: 912388, MemberID: m.MemberID, Rating: 3}, "Invalid ActivityId"},
		{"Invalid member", controllers.ActivityRatingEditable{ActivityID: a.ActivityID, MemberID: 912388, Rating: 3}, "Invalid MemberId"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/api/ActivityRatings", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response httputil.HTTPError
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.error, response.Error)
		})
	}
}

// TestActivityRatingsCreateDuplicate verifies that a member can rate an
// activity only once.
func (suite *TestSuiteStandard) TestActivityRatingsCreateDuplicate() {
	rating := createTestActivityRating(suite.T(), controllers.ActivityRatingEditable{Rating: 3})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/ActivityRatings", controllers.ActivityRatingEditable{
		ActivityID: rating.ActivityID,
		MemberID:   rating.MemberID,
		Rating:     5,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response httputil.HTTPError
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Member has already rated this activity", response.Error)
}

func (suite *TestSuiteStandard) TestActivityRatingsGetByActivity() {
	a := createTestActivity(suite.T(), controllers.ActivityEditable{})

	_ = createTestActivityRating(suite.T(), controllers.ActivityRatingEditable{ActivityID: a.ActivityID})
	_ = createTestActivityRating(suite.T(), controllers.ActivityRatingEditable{ActivityID: a.ActivityID})

	// A rating for another activity is not returned
	_ = createTestActivityRating(suite.T(), controllers.ActivityRatingEditable{})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/api/ActivityRatings/activity/%d", a.ActivityID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var ratings []controllers.ActivityRating
	test.DecodeResponse(suite.T(), &r, &ratings)
	assert.Len(suite.T(), ratings, 2)
}

func (suite *TestSuiteStandard) TestActivityRatingsGetSingle() {
	rating := createTestActivityRating(suite.T(), controllers.ActivityRatingEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing rating", fmt.Sprintf("%d", rating.RatingID), http.StatusOK},
		{"No rating with this ID", "912388", http.StatusNotFound},
		{"Invalid ID", "notanumber", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/api/ActivityRatings/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestActivityRatingsUpdate() {
	rating := createTestActivityRating(suite.T(), controllers.ActivityRatingEditable{Rating: 2, Comment: "Too crowded"})

	update := controllers.ActivityRatingEditable{
		RatingID:   rating.RatingID,
		ActivityID: rating.ActivityID,
		MemberID:   rating.MemberID,
		Rating:     4,
		Comment:    "Better on a weekday",
	}

	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/api/ActivityRatings/%d", rating.RatingID), update)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/api/ActivityRatings/%d", rating.RatingID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated controllers.ActivityRating
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), 4, updated.Rating)
	assert.Equal(suite.T(), "Better on a weekday", updated.Comment)
}

func (suite *TestSuiteStandard) TestActivityRatingsUpdateFails() {
	rating := createTestActivityRating(suite.T(), controllers.ActivityRatingEditable{})

	tests := []struct {
		name   string
		id     string
		body   controllers.ActivityRatingEditable
		status int
		error  string
	}{
		{
			"ID mismatch",
			fmt.Sprintf("%d", rating.RatingID),
			controllers.ActivityRatingEditable{RatingID: rating.RatingID + 1, ActivityID: rating.ActivityID, MemberID: rating.MemberID, Rating: 3},
			http.StatusBadRequest,
			"Rating ID mismatch",
		},
		{
			"Rating out of range",
			fmt.Sprintf("%d", rating.RatingID),
			controllers.ActivityRatingEditable{RatingID: rating.RatingID, ActivityID: rating.ActivityID, MemberID: rating.MemberID, Rating: 17},
			http.StatusBadRequest,
			"Rating must be between 1 and 5",
		},
		{
			"No rating with this ID",
			"912388",
			controllers.ActivityRatingEditable{RatingID: 912388, ActivityID: rating.ActivityID, MemberID: rating.MemberID, Rating: 3},
			http.StatusNotFound,
			"",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, fmt.Sprintf("http://example.com/api/ActivityRatings/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.error != "" {
				var response httputil.HTTPError
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, tt.error, response.Error)
			}
		})
	}
}

// TestActivityRatingsUpdateKeysImmutable verifies that an update only
// changes the rating value and the comment, the activity and member the
// rating is keyed to stay as they are.
func (suite *TestSuiteStandard) TestActivityRatingsUpdateKeysImmutable() {
	rating := createTestActivityRating(suite.T(), controllers.ActivityRatingEditable{Rating: 4})

	update := controllers.ActivityRatingEditable{
		RatingID:   rating.RatingID,
		ActivityID: rating.ActivityID + 100,
		MemberID:   rating.MemberID + 100,
		Rating:     2,
		Comment:    "Changed my mind",
	}

	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/api/ActivityRatings/%d", rating.RatingID), update)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/api/ActivityRatings/%d", rating.RatingID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated controllers.ActivityRating
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), rating.ActivityID, updated.ActivityID)
	assert.Equal(suite.T(), rating.MemberID, updated.MemberID)
	assert.Equal(suite.T(), 2, updated.Rating)
	assert.Equal(suite.T(), "Changed my mind", updated.Comment)
}

// TestActivityRatingsUpdateAfterDelete verifies that an update for a deleted
// rating is answered with 404 and does not recreate the row.
func (suite *TestSuiteStandard) TestActivityRatingsUpdateAfterDelete() {
	rating := createTestActivityRating(suite.T(), controllers.ActivityRatingEditable{})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/api/ActivityRatings/%d", rating.RatingID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	update := controllers.ActivityRatingEditable{RatingID: rating.RatingID, Rating: 3}
	r = test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/api/ActivityRatings/%d", rating.RatingID), update)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/api/ActivityRatings/%d", rating.RatingID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestActivityRatingsDelete() {
	rating := createTestActivityRating(suite.T(), controllers.ActivityRatingEditable{})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/api/ActivityRatings/%d", rating.RatingID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/api/ActivityRatings/%d", rating.RatingID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestActivityRatingsDBClosed verifies that errors are processed correctly
// when the database is closed.
func (suite *TestSuiteStandard) TestActivityRatingsDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/ActivityRatings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	// The activity check must not report the storage fault as an invalid
	// activity
	createTestActivityRating(suite.T(), controllers.ActivityRatingEditable{ActivityID: 1, MemberID: 1, Rating: 3}, http.StatusInternalServerError)
}
