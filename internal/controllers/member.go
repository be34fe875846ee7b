package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tripfolio/backend/internal/httputil"
	"github.com/tripfolio/backend/internal/models"
)

// MemberEditable represents all user configurable parameters of a member
type MemberEditable struct {
	MemberID             uint64 `json:"memberId" example:"3"` // Only evaluated on update, where it must match the path ID
	Name                 string `json:"name" example:"Alice"`
	Email                string `json:"email" example:"alice@example.com"`
	DietaryRestrictions  string `json:"dietaryRestrictions" example:"vegetarian"`
	HealthConsiderations string `json:"healthConsiderations"`
	EmergencyContact     string `json:"emergencyContact" example:"Bob, +81 90 1234 5678"`
}

func (editable MemberEditable) model() models.Member {
	return models.Member{
		Name:                 editable.Name,
		Email:                editable.Email,
		DietaryRestrictions:  editable.DietaryRestrictions,
		HealthConsiderations: editable.HealthConsiderations,
		EmergencyContact:     editable.EmergencyContact,
	}
}

// MemberActivity is one activity a member participates in, with the
// member's role for it and the destination it belongs to.
type MemberActivity struct {
	ActivityID  uint64             `json:"activityId" example:"7"`
	Name        string             `json:"name" example:"Tower Visit"`
	DateTime    time.Time          `json:"dateTime" example:"2024-07-02T10:00:00Z"`
	Location    string             `json:"location" example:"Tokyo Tower"`
	Description string             `json:"description"`
	Cost        decimal.Decimal    `json:"cost" example:"1200"`
	IsOrganizer bool               `json:"isOrganizer" example:"true"`
	Notes       string             `json:"notes"`
	Destination DestinationSummary `json:"destination"`
}

// Member is the API representation of a member with the activities they
// participate in.
type Member struct {
	MemberID             uint64           `json:"memberId" example:"3"`
	Name                 string           `json:"name" example:"Alice"`
	Email                string           `json:"email" example:"alice@example.com"`
	DietaryRestrictions  string           `json:"dietaryRestrictions"`
	HealthConsiderations string           `json:"healthConsiderations"`
	EmergencyContact     string           `json:"emergencyContact"`
	Activities           []MemberActivity `json:"activities"`
}

func newMember(model models.Member) Member {
	member := Member{
		MemberID:             model.ID,
		Name:                 model.Name,
		Email:                model.Email,
		DietaryRestrictions:  model.DietaryRestrictions,
		HealthConsiderations: model.HealthConsiderations,
		EmergencyContact:     model.EmergencyContact,
		Activities:           make([]MemberActivity, 0, len(model.ActivityMembers)),
	}

	for _, pairing := range model.ActivityMembers {
		member.Activities = append(member.Activities, MemberActivity{
			ActivityID:  pairing.Activity.ID,
			Name:        pairing.Activity.Name,
			DateTime:    pairing.Activity.DateTime,
			Location:    pairing.Activity.Location,
			Description: pairing.Activity.Description,
			Cost:        pairing.Activity.Cost,
			IsOrganizer: pairing.IsOrganizer,
			Notes:       pairing.Notes,
			Destination: newDestinationSummary(pairing.Activity.Destination),
		})
	}

	return member
}

// RegisterMemberRoutes registers the routes for members with
// the RouterGroup that is passed.
func RegisterMemberRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMemberList)
		r.GET("", GetMembers)
		r.POST("", CreateMember)
	}

	// Member with ID
	{
		r.OPTIONS("/:id", OptionsMemberDetail)
		r.GET("/:id", GetMember)
		r.PUT("/:id", UpdateMember)
		r.DELETE("/:id", DeleteMember)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Members
// @Success		204
// @Router			/api/Members [options]
func OptionsMemberList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Members
// @Success		204
// @Param			id	path	uint64	true	"ID of the member"
// @Router			/api/Members/{id} [options]
func OptionsMemberDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		List members
// @Description	Returns all members with their activity participations
// @Tags			Members
// @Produce		json
// @Success		200	{array}		Member
// @Failure		500	{object}	httputil.HTTPError
// @Router			/api/Members [get]
func GetMembers(c *gin.Context) {
	var members []models.Member
	err := models.DB.Preload("ActivityMembers.Activity.Destination").Find(&members).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	data := make([]Member, 0, len(members))
	for _, member := range members {
		data = append(data, newMember(member))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get member
// @Description	Returns a member by their ID with their activity participations
// @Tags			Members
// @Produce		json
// @Success		200	{object}	Member
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		uint64	true	"ID of the member"
// @Router			/api/Members/{id} [get]
func GetMember(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var member models.Member
	err = models.DB.Preload("ActivityMembers.Activity.Destination").First(&member, id).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, newMember(member))
}

// @Summary		Create member
// @Description	Creates a new member
// @Tags			Members
// @Accept			json
// @Produce		json
// @Success		201		{object}	Member
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			member	body		MemberEditable	true	"Member"
// @Router			/api/Members [post]
func CreateMember(c *gin.Context) {
	var editable MemberEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	member := editable.model()
	if err := models.DB.Create(&member).Error; err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	createdLocation(c, member.ID)
	c.JSON(http.StatusCreated, newMember(member))
}

// @Summary		Update member
// @Description	Updates a member. The payload ID must match the path ID.
// @Tags			Members
// @Accept			json
// @Success		204
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		uint64			true	"ID of the member"
// @Param			member	body		MemberEditable	true	"Member"
// @Router			/api/Members/{id} [put]
func UpdateMember(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var editable MemberEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if editable.MemberID != id {
		httputil.NewError(c, http.StatusBadRequest, errors.New("Member ID mismatch"))
		return
	}

	// Update only the matching row, an update matching no row is reported
	// as not found. This also covers a concurrent delete of the member.
	result := models.DB.Model(&models.Member{}).Where("id = ?", id).Select("Name", "Email", "DietaryRestrictions", "HealthConsiderations", "EmergencyContact").Updates(models.Member{
		Name:                 editable.Name,
		Email:                editable.Email,
		DietaryRestrictions:  editable.DietaryRestrictions,
		HealthConsiderations: editable.HealthConsiderations,
		EmergencyContact:     editable.EmergencyContact,
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

// @Summary		Delete member
// @Description	Deletes a member. Their pairings, expense splits, and ratings are deleted with them.
// @Tags			Members
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		uint64	true	"ID of the member"
// @Router			/api/Members/{id} [delete]
func DeleteMember(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var member models.Member
	err = models.DB.First(&member, id).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	err = models.DB.Delete(&member).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
