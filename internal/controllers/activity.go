package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"github.com/tripfolio/backend/internal/httputil"
	"github.com/tripfolio/backend/internal/models"
	"gorm.io/gorm"
)

// ActivityEditable represents all user configurable parameters of an activity
type ActivityEditable struct {
	ActivityID    uint64          `json:"activityId" example:"7"` // Only evaluated on update, where it must match the path ID
	Name          string          `json:"name" example:"Tower Visit"`
	DateTime      time.Time       `json:"dateTime" example:"2024-07-02T10:00:00Z"`
	Location      string          `json:"location" example:"Tokyo Tower"`
	Description   string          `json:"description"`
	Cost          decimal.Decimal `json:"cost" example:"1200"`
	DestinationID uint64          `json:"destinationId" example:"2"`
}

func (editable ActivityEditable) model() models.Activity {
	return models.Activity{
		DestinationID: editable.DestinationID,
		Name:          editable.Name,
		DateTime:      editable.DateTime,
		Location:      editable.Location,
		Description:   editable.Description,
		Cost:          editable.Cost,
	}
}

// Activity is the API representation of an activity with its destination
// summary and the members participating in it.
type Activity struct {
	ActivityID    uint64             `json:"activityId" example:"7"`
	Name          string             `json:"name" example:"Tower Visit"`
	DateTime      time.Time          `json:"dateTime" example:"2024-07-02T10:00:00Z"`
	Location      string             `json:"location" example:"Tokyo Tower"`
	Description   string             `json:"description"`
	Cost          decimal.Decimal    `json:"cost" example:"1200"`
	DestinationID uint64             `json:"destinationId" example:"2"`
	Destination   DestinationSummary `json:"destination"`
	Members       []MemberSummary    `json:"members"`
}

func newActivity(model models.Activity) Activity {
	activity := Activity{
		ActivityID:    model.ID,
		Name:          model.Name,
		DateTime:      model.DateTime,
		Location:      model.Location,
		Description:   model.Description,
		Cost:          model.Cost,
		DestinationID: model.DestinationID,
		Destination:   newDestinationSummary(model.Destination),
		Members:       make([]MemberSummary, 0, len(model.ActivityMembers)),
	}

	for _, pairing := range model.ActivityMembers {
		activity.Members = append(activity.Members, MemberSummary{
			MemberID:    pairing.Member.ID,
			Name:        pairing.Member.Name,
			Email:       pairing.Member.Email,
			IsOrganizer: pairing.IsOrganizer,
			Notes:       pairing.Notes,
		})
	}

	return activity
}

// RegisterActivityRoutes registers the routes for activities with
// the RouterGroup that is passed.
func RegisterActivityRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsActivityList)
		r.GET("", GetActivities)
		r.POST("", CreateActivity)
	}

	// Activity with ID
	{
		r.OPTIONS("/:id", OptionsActivityDetail)
		r.GET("/:id", GetActivity)
		r.PUT("/:id", UpdateActivity)
		r.DELETE("/:id", DeleteActivity)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Activities
// @Success		204
// @Router			/api/Activities [options]
func OptionsActivityList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Activities
// @Success		204
// @Param			id	path	uint64	true	"ID of the activity"
// @Router			/api/Activities/{id} [options]
func OptionsActivityDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		List activities
// @Description	Returns all activities with their destination summary and members
// @Tags			Activities
// @Produce		json
// @Success		200		{array}		Activity
// @Failure		500		{object}	httputil.HTTPError
// @Param			name	query		string	false	"Glob pattern to filter activities by name"
// @Router			/api/Activities [get]
func GetActivities(c *gin.Context) {
	var activities []models.Activity
	err := models.DB.Preload("Destination").Preload("ActivityMembers.Member").Find(&activities).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	filter := c.Query("name")

	data := make([]Activity, 0, len(activities))
	for _, activity := range activities {
		if filter != "" && !glob.Glob(filter, activity.Name) {
			continue
		}

		data = append(data, newActivity(activity))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get activity
// @Description	Returns an activity by its ID with its destination summary and members
// @Tags			Activities
// @Produce		json
// @Success		200	{object}	Activity
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		uint64	true	"ID of the activity"
// @Router			/api/Activities/{id} [get]
func GetActivity(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var activity models.Activity
	err = models.DB.Preload("Destination").Preload("ActivityMembers.Member").First(&activity, id).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, newActivity(activity))
}

// @Summary		Create activity
// @Description	Creates a new activity for an existing destination
// @Tags			Activities
// @Accept			json
// @Produce		json
// @Success		201			{object}	Activity
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			activity	body		ActivityEditable	true	"Activity"
// @Router			/api/Activities [post]
func CreateActivity(c *gin.Context) {
	var editable ActivityEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	var destination models.Destination
	err := models.DB.First(&destination, editable.DestinationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httputil.NewError(c, http.StatusBadRequest, errors.New("Invalid DestinationId"))
			return
		}

		httputil.FetchErrorHandler(c, err)
		return
	}

	activity := editable.model()
	if err := models.DB.Create(&activity).Error; err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	activity.Destination = destination

	createdLocation(c, activity.ID)
	c.JSON(http.StatusCreated, newActivity(activity))
}

// @Summary		Update activity
// @Description	Updates an activity. The payload ID must match the path ID.
// @Tags			Activities
// @Accept			json
// @Success		204
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404
// @Failure		500			{object}	httputil.HTTPError
// @Param			id			path		uint64				true	"ID of the activity"
// @Param			activity	body		ActivityEditable	true	"Activity"
// @Router			/api/Activities/{id} [put]
func UpdateActivity(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var editable ActivityEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if editable.ActivityID != id {
		httputil.NewError(c, http.StatusBadRequest, errors.New("Activity ID mismatch"))
		return
	}

	var destination models.Destination
	err = models.DB.First(&destination, editable.DestinationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httputil.NewError(c, http.StatusBadRequest, errors.New("Invalid DestinationId"))
			return
		}

		httputil.FetchErrorHandler(c, err)
		return
	}

	// Update only the matching row, an update matching no row is reported
	// as not found. This also covers a concurrent delete of the activity.
	result := models.DB.Model(&models.Activity{}).Where("id = ?", id).Select("Name", "DateTime", "Location", "Description", "Cost", "DestinationID").Updates(models.Activity{
		Name:          editable.Name,
		DateTime:      editable.DateTime,
		Location:      editable.Location,
		Description:   editable.Description,
		Cost:          editable.Cost,
		DestinationID: editable.DestinationID,
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

// @Summary		Delete activity
// @Description	Deletes an activity. Its pairings, expenses, and ratings are deleted with it.
// @Tags			Activities
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		uint64	true	"ID of the activity"
// @Router			/api/Activities/{id} [delete]
func DeleteActivity(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var activity models.Activity
	err = models.DB.First(&activity, id).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	err = models.DB.Delete(&activity).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
