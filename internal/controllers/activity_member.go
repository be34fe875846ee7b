package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripfolio/backend/internal/httputil"
	"github.com/tripfolio/backend/internal/models"
	"gorm.io/gorm"
)

// ActivityMemberEditable represents all user configurable parameters of a pairing
type ActivityMemberEditable struct {
	ActivityID  uint64 `json:"activityId" example:"7"`
	MemberID    uint64 `json:"memberId" example:"3"`
	IsOrganizer bool   `json:"isOrganizer" example:"true"`
	Notes       string `json:"notes" example:"Tour guide contact needed"`
}

func (editable ActivityMemberEditable) model() models.ActivityMember {
	return models.ActivityMember{
		ActivityID:  editable.ActivityID,
		MemberID:    editable.MemberID,
		IsOrganizer: editable.IsOrganizer,
		Notes:       editable.Notes,
	}
}

// ActivityMember is the API representation of a pairing. The counterpart
// projections are only set on the routes that include them.
type ActivityMember struct {
	ActivityID  uint64           `json:"activityId" example:"7"`
	MemberID    uint64           `json:"memberId" example:"3"`
	IsOrganizer bool             `json:"isOrganizer" example:"true"`
	Notes       string           `json:"notes"`
	Activity    *ActivitySummary `json:"activity,omitempty"`
	Member      *MemberInfo      `json:"member,omitempty"`
}

func newActivityMember(model models.ActivityMember, withActivity, withMember bool) ActivityMember {
	pairing := ActivityMember{
		ActivityID:  model.ActivityID,
		MemberID:    model.MemberID,
		IsOrganizer: model.IsOrganizer,
		Notes:       model.Notes,
	}

	if withActivity {
		activity := newActivitySummary(model.Activity)
		pairing.Activity = &activity
	}

	if withMember {
		member := newMemberInfo(model.Member)
		pairing.Member = &member
	}

	return pairing
}

// RegisterActivityMemberRoutes registers the routes for pairings with
// the RouterGroup that is passed.
func RegisterActivityMemberRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsActivityMemberList)
		r.GET("", GetActivityMembers)
		r.POST("", CreateActivityMember)
	}

	// Filtered by one of the two parents
	{
		r.GET("/activity/:activityId", GetActivityMembersByActivity)
		r.GET("/member/:memberId", GetActivityMembersByMember)
	}

	// Pairing keyed by the (activity, member) pair
	{
		r.OPTIONS("/:activityId/:memberId", OptionsActivityMemberDetail)
		r.PUT("/:activityId/:memberId", UpdateActivityMember)
		r.DELETE("/:activityId/:memberId", DeleteActivityMember)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ActivityMembers
// @Success		204
// @Router			/api/ActivityMembers [options]
func OptionsActivityMemberList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ActivityMembers
// @Success		204
// @Param			activityId	path	uint64	true	"ID of the activity"
// @Param			memberId	path	uint64	true	"ID of the member"
// @Router			/api/ActivityMembers/{activityId}/{memberId} [options]
func OptionsActivityMemberDetail(c *gin.Context) {
	httputil.OptionsPutDelete(c)
}

// @Summary		List pairings
// @Description	Returns all activity-member pairings with both counterpart summaries
// @Tags			ActivityMembers
// @Produce		json
// @Success		200	{array}		ActivityMember
// @Failure		500	{object}	httputil.HTTPError
// @Router			/api/ActivityMembers [get]
func GetActivityMembers(c *gin.Context) {
	var pairings []models.ActivityMember
	err := models.DB.Preload("Activity").Preload("Member").Find(&pairings).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	data := make([]ActivityMember, 0, len(pairings))
	for _, pairing := range pairings {
		data = append(data, newActivityMember(pairing, true, true))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		List pairings by activity
// @Description	Returns the pairings for one activity with the member summaries
// @Tags			ActivityMembers
// @Produce		json
// @Success		200			{array}		ActivityMember
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			activityId	path		uint64	true	"ID of the activity"
// @Router			/api/ActivityMembers/activity/{activityId} [get]
func GetActivityMembersByActivity(c *gin.Context) {
	activityID, err := httputil.ParseID(c, "activityId")
	if err != nil {
		return
	}

	var pairings []models.ActivityMember
	err = models.DB.Preload("Member").Where("activity_id = ?", activityID).Find(&pairings).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	data := make([]ActivityMember, 0, len(pairings))
	for _, pairing := range pairings {
		data = append(data, newActivityMember(pairing, false, true))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		List pairings by member
// @Description	Returns the pairings for one member with the activity summaries
// @Tags			ActivityMembers
// @Produce		json
// @Success		200			{array}		ActivityMember
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			memberId	path		uint64	true	"ID of the member"
// @Router			/api/ActivityMembers/member/{memberId} [get]
func GetActivityMembersByMember(c *gin.Context) {
	memberID, err := httputil.ParseID(c, "memberId")
	if err != nil {
		return
	}

	var pairings []models.ActivityMember
	err = models.DB.Preload("Activity").Where("member_id = ?", memberID).Find(&pairings).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	data := make([]ActivityMember, 0, len(pairings))
	for _, pairing := range pairings {
		data = append(data, newActivityMember(pairing, true, false))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Create pairing
// @Description	Links a member to an activity
// @Tags			ActivityMembers
// @Accept			json
// @Produce		json
// @Success		201		{object}	ActivityMember
// @Failure		400		{object}	httputil.HTTPError
// @Failure		409		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			pairing	body		ActivityMemberEditable	true	"Pairing"
// @Router			/api/ActivityMembers [post]
func CreateActivityMember(c *gin.Context) {
	var editable ActivityMemberEditable
	if err := httputil.BindData(c, &editable); err != nil {
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

	pairing := editable.model()
	err := models.DB.Create(&pairing).Error
	if err != nil {
		// The composite primary key rejects a duplicate pairing
		if errors.Is(err, models.ErrActivityMemberExists) {
			httputil.NewError(c, http.StatusConflict, err)
			return
		}

		httputil.FetchErrorHandler(c, err)
		return
	}

	c.Header("Location", httputil.RequestURL(c))
	c.JSON(http.StatusCreated, newActivityMember(pairing, false, false))
}

// @Summary		Update pairing
// @Description	Updates the role and notes of a pairing. The payload IDs must match the path IDs.
// @Tags			ActivityMembers
// @Accept			json
// @Success		204
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404
// @Failure		500			{object}	httputil.HTTPError
// @Param			activityId	path		uint64					true	"ID of the activity"
// @Param			memberId	path		uint64					true	"ID of the member"
// @Param			pairing		body		ActivityMemberEditable	true	"Pairing"
// @Router			/api/ActivityMembers/{activityId}/{memberId} [put]
func UpdateActivityMember(c *gin.Context) {
	activityID, err := httputil.ParseID(c, "activityId")
	if err != nil {
		return
	}

	memberID, err := httputil.ParseID(c, "memberId")
	if err != nil {
		return
	}

	var editable ActivityMemberEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if editable.ActivityID != activityID || editable.MemberID != memberID {
		httputil.NewError(c, http.StatusBadRequest, errors.New("Activity ID or Member ID mismatch"))
		return
	}

	// Only the role and the notes are mutable. An update matching no row
	// is reported as not found, this also covers a concurrent delete of
	// the pairing.
	result := models.DB.Model(&models.ActivityMember{}).Where("activity_id = ? AND member_id = ?", activityID, memberID).Select("IsOrganizer", "Notes").Updates(models.ActivityMember{
		IsOrganizer: editable.IsOrganizer,
		Notes:       editable.Notes,
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

// @Summary		Delete pairing
// @Description	Removes a member from an activity
// @Tags			ActivityMembers
// @Success		204
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404
// @Failure		500			{object}	httputil.HTTPError
// @Param			activityId	path		uint64	true	"ID of the activity"
// @Param			memberId	path		uint64	true	"ID of the member"
// @Router			/api/ActivityMembers/{activityId}/{memberId} [delete]
func DeleteActivityMember(c *gin.Context) {
	activityID, err := httputil.ParseID(c, "activityId")
	if err != nil {
		return
	}

	memberID, err := httputil.ParseID(c, "memberId")
	if err != nil {
		return
	}

	var pairing models.ActivityMember
	err = models.DB.Where("activity_id = ? AND member_id = ?", activityID, memberID).First(&pairing).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	err = models.DB.Where("activity_id = ? AND member_id = ?", activityID, memberID).Delete(&models.ActivityMember{}).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
