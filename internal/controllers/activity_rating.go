package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripfolio/backend/internal/httputil"
	"github.com/tripfolio/backend/internal/models"
	"gorm.io/gorm"
)

// ActivityRatingEditable represents all user configurable parameters of a rating
type ActivityRatingEditable struct {
	RatingID   uint64 `json:"ratingId" example:"4"`
	ActivityID uint64 `json:"activityId" example:"7"`
	MemberID   uint64 `json:"memberId" example:"3"`
	Rating     int    `json:"rating" example:"5"`
	Comment    string `json:"comment" example:"Great view from the top"`
}

func (editable ActivityRatingEditable) model() models.ActivityRating {
	return models.ActivityRating{
		ActivityID: editable.ActivityID,
		MemberID:   editable.MemberID,
		Rating:     editable.Rating,
		Comment:    editable.Comment,
	}
}

// ActivityRating is the API representation of a member's rating of an activity.
type ActivityRating struct {
	RatingID     uint64 `json:"ratingId" example:"4"`
	ActivityID   uint64 `json:"activityId" example:"7"`
	ActivityName string `json:"activityName" example:"Tower Visit"`
	MemberID     uint64 `json:"memberId" example:"3"`
	MemberName   string `json:"memberName" example:"Alice"`
	Rating       int    `json:"rating" example:"5"`
	Comment      string `json:"comment" example:"Great view from the top"`
}

func newActivityRating(model models.ActivityRating) ActivityRating {
	return ActivityRating{
		RatingID:     model.ID,
		ActivityID:   model.ActivityID,
		ActivityName: model.Activity.Name,
		MemberID:     model.MemberID,
		MemberName:   model.Member.Name,
		Rating:       model.Rating,
		Comment:      model.Comment,
	}
}

// ratingInRange reports whether a rating value is on the 1 to 5 scale.
func ratingInRange(rating int) bool {
	return rating >= 1 && rating <= 5
}

// RegisterActivityRatingRoutes registers the routes for activity ratings
// with the RouterGroup that is passed.
func RegisterActivityRatingRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsActivityRatingList)
		r.GET("", GetActivityRatings)
		r.POST("", CreateActivityRating)
	}

	// Filtered by activity
	r.GET("/activity/:id", GetActivityRatingsByActivity)

	// Rating with ID
	{
		r.OPTIONS("/:id", OptionsActivityRatingDetail)
		r.GET("/:id", GetActivityRating)
		r.PUT("/:id", UpdateActivityRating)
		r.DELETE("/:id", DeleteActivityRating)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ActivityRatings
// @Success		204
// @Router			/api/ActivityRatings [options]
func OptionsActivityRatingList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ActivityRatings
// @Success		204
// @Param			id	path	uint64	true	"ID of the rating"
// @Router			/api/ActivityRatings/{id} [options]
func OptionsActivityRatingDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		List ratings
// @Description	Returns all activity ratings
// @Tags			ActivityRatings
// @Produce		json
// @Success		200	{array}		ActivityRating
// @Failure		500	{object}	httputil.HTTPError
// @Router			/api/ActivityRatings [get]
func GetActivityRatings(c *gin.Context) {
	var ratings []models.ActivityRating
	err := models.DB.Preload("Activity").Preload("Member").Find(&ratings).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	data := make([]ActivityRating, 0, len(ratings))
	for _, rating := range ratings {
		data = append(data, newActivityRating(rating))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		List ratings by activity
// @Description	Returns the ratings for one activity
// @Tags			ActivityRatings
// @Produce		json
// @Success		200	{array}		ActivityRating
// @Failure		400	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		uint64	true	"ID of the activity"
// @Router			/api/ActivityRatings/activity/{id} [get]
func GetActivityRatingsByActivity(c *gin.Context) {
	activityID, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var ratings []models.ActivityRating
	err = models.DB.Preload("Activity").Preload("Member").Where("activity_id = ?", activityID).Find(&ratings).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	data := make([]ActivityRating, 0, len(ratings))
	for _, rating := range ratings {
		data = append(data, newActivityRating(rating))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get rating
// @Description	Returns a rating by its ID
// @Tags			ActivityRatings
// @Produce		json
// @Success		200	{object}	ActivityRating
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		uint64	true	"ID of the rating"
// @Router			/api/ActivityRatings/{id} [get]
func GetActivityRating(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var rating models.ActivityRating
	err = models.DB.Preload("Activity").Preload("Member").First(&rating, id).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, newActivityRating(rating))
}

// @Summary		Create rating
// @Description	Creates a new rating of an activity by a member. A member can rate each activity only once.
// @Tags			ActivityRatings
// @Accept			json
// @Produce		json
// @Success		201		{object}	ActivityRating
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			rating	body		ActivityRatingEditable	true	"Rating"
// @Router			/api/ActivityRatings [post]
func CreateActivityRating(c *gin.Context) {
	var editable ActivityRatingEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if !ratingInRange(editable.Rating) {
		httputil.NewError(c, http.StatusBadRequest, errors.New("Rating must be between 1 and 5"))
		return
	}

	var activity models.Activity
	if err := models.DB.First(&activity, editable.ActivityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httputil.NewError(c, http.StatusBadRequest, errors.New("Invalid ActivityId"))
			return
		}

		httputil.FetchErrorHandler(c, err)
		return
	}

	var member models.Member
	if err := models.DB.First(&member, editable.MemberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httputil.NewError(c, http.StatusBadRequest, errors.New("Invalid MemberId"))
			return
		}

		httputil.FetchErrorHandler(c, err)
		return
	}

	rating := editable.model()
	if err := models.DB.Create(&rating).Error; err != nil {
		// The unique index on (activity, member) rejects a second rating
		if errors.Is(err, models.ErrActivityRatingExists) {
			httputil.NewError(c, http.StatusBadRequest, models.ErrActivityRatingExists)
			return
		}

		httputil.FetchErrorHandler(c, err)
		return
	}

	rating.Activity = activity
	rating.Member = member

	createdLocation(c, rating.ID)
	c.JSON(http.StatusCreated, newActivityRating(rating))
}

// @Summary		Update rating
// @Description	Updates the rating value and comment of an existing rating
// @Tags			ActivityRatings
// @Accept			json
// @Produce		json
// @Success		204
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		uint64					true	"ID of the rating"
// @Param			rating	body		ActivityRatingEditable	true	"Rating"
// @Router			/api/ActivityRatings/{id} [put]
func UpdateActivityRating(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var editable ActivityRatingEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if editable.RatingID != id {
		httputil.NewError(c, http.StatusBadRequest, errors.New("Rating ID mismatch"))
		return
	}

	if !ratingInRange(editable.Rating) {
		httputil.NewError(c, http.StatusBadRequest, errors.New("Rating must be between 1 and 5"))
		return
	}

	// Only the rating value and the comment are mutable. The rating stays
	// keyed to its activity and member, the payload IDs are ignored. An
	// update matching no row is reported as not found, this also covers a
	// concurrent delete of the rating.
	result := models.DB.Model(&models.ActivityRating{}).Where("id = ?", id).Select("Rating", "Comment").Updates(models.ActivityRating{
		Rating:  editable.Rating,
		Comment: editable.Comment,
	})
	if result.Error != nil {
		httputil.FetchErrorHandler(c, result.Error)
		return
	}

	if result.RowsAffected == 0 {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Delete rating
// @Description	Deletes a rating
// @Tags			ActivityRatings
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		uint64	true	"ID of the rating"
// @Router			/api/ActivityRatings/{id} [delete]
func DeleteActivityRating(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var rating models.ActivityRating
	err = models.DB.First(&rating, id).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	err = models.DB.Delete(&rating).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
