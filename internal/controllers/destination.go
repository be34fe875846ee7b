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
)

// DestinationEditable represents all user configurable parameters of a destination
type DestinationEditable struct {
	DestinationID uint64          `json:"destinationId" example:"2"` // Only evaluated on update, where it must match the path ID
	Name          string          `json:"name" example:"Tokyo Trip"`
	Location      string          `json:"location" example:"Tokyo"`
	StartDate     time.Time       `json:"startDate" example:"2024-07-01T00:00:00Z"`
	EndDate       time.Time       `json:"endDate" example:"2024-07-10T00:00:00Z"`
	Description   string          `json:"description" example:"Summer break trip to Japan"`
	Budget        decimal.Decimal `json:"budget" example:"6000"`
}

func (editable DestinationEditable) model() models.Destination {
	return models.Destination{
		Name:        editable.Name,
		Location:    editable.Location,
		StartDate:   editable.StartDate,
		EndDate:     editable.EndDate,
		Description: editable.Description,
		Budget:      editable.Budget,
	}
}

// Destination is the API representation of a destination with its
// nested activity summaries.
type Destination struct {
	DestinationID uint64            `json:"destinationId" example:"2"`
	Name          string            `json:"name" example:"Tokyo Trip"`
	Location      string            `json:"location" example:"Tokyo"`
	StartDate     time.Time         `json:"startDate" example:"2024-07-01T00:00:00Z"`
	EndDate       time.Time         `json:"endDate" example:"2024-07-10T00:00:00Z"`
	Description   string            `json:"description"`
	Budget        decimal.Decimal   `json:"budget" example:"6000"`
	Activities    []ActivitySummary `json:"activities"`
}

func newDestination(model models.Destination) Destination {
	destination := Destination{
		DestinationID: model.ID,
		Name:          model.Name,
		Location:      model.Location,
		StartDate:     model.StartDate,
		EndDate:       model.EndDate,
		Description:   model.Description,
		Budget:        model.Budget,
		Activities:    make([]ActivitySummary, 0, len(model.Activities)),
	}

	for _, activity := range model.Activities {
		destination.Activities = append(destination.Activities, newActivitySummary(activity))
	}

	return destination
}

// RegisterDestinationRoutes registers the routes for destinations with
// the RouterGroup that is passed.
func RegisterDestinationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDestinationList)
		r.GET("", GetDestinations)
		r.POST("", CreateDestination)
	}

	// Destination with ID
	{
		r.OPTIONS("/:id", OptionsDestinationDetail)
		r.GET("/:id", GetDestination)
		r.PUT("/:id", UpdateDestination)
		r.DELETE("/:id", DeleteDestination)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Destinations
// @Success		204
// @Router			/api/Destinations [options]
func OptionsDestinationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Destinations
// @Success		204
// @Param			id	path	uint64	true	"ID of the destination"
// @Router			/api/Destinations/{id} [options]
func OptionsDestinationDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		List destinations
// @Description	Returns all destinations with their activity summaries
// @Tags			Destinations
// @Produce		json
// @Success		200		{array}		Destination
// @Failure		500		{object}	httputil.HTTPError
// @Param			name	query		string	false	"Glob pattern to filter destinations by name"
// @Router			/api/Destinations [get]
func GetDestinations(c *gin.Context) {
	var destinations []models.Destination
	err := models.DB.Preload("Activities").Find(&destinations).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	filter := c.Query("name")

	data := make([]Destination, 0, len(destinations))
	for _, destination := range destinations {
		if filter != "" && !glob.Glob(filter, destination.Name) {
			continue
		}

		data = append(data, newDestination(destination))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get destination
// @Description	Returns a destination by its ID with its activity summaries
// @Tags			Destinations
// @Produce		json
// @Success		200	{object}	Destination
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		uint64	true	"ID of the destination"
// @Router			/api/Destinations/{id} [get]
func GetDestination(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var destination models.Destination
	err = models.DB.Preload("Activities").First(&destination, id).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, newDestination(destination))
}

// @Summary		Create destination
// @Description	Creates a new destination
// @Tags			Destinations
// @Accept			json
// @Produce		json
// @Success		201			{object}	Destination
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			destination	body		DestinationEditable	true	"Destination"
// @Router			/api/Destinations [post]
func CreateDestination(c *gin.Context) {
	var editable DestinationEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	destination := editable.model()
	if err := models.DB.Create(&destination).Error; err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	createdLocation(c, destination.ID)
	c.JSON(http.StatusCreated, newDestination(destination))
}

// @Summary		Update destination
// @Description	Updates a destination. The payload ID must match the path ID.
// @Tags			Destinations
// @Accept			json
// @Success		204
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404
// @Failure		500			{object}	httputil.HTTPError
// @Param			id			path		uint64				true	"ID of the destination"
// @Param			destination	body		DestinationEditable	true	"Destination"
// @Router			/api/Destinations/{id} [put]
func UpdateDestination(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var editable DestinationEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if editable.DestinationID != id {
		httputil.NewError(c, http.StatusBadRequest, errors.New("Destination ID mismatch"))
		return
	}

	// Update only the matching row, an update matching no row is reported
	// as not found. This also covers a concurrent delete of the destination.
	result := models.DB.Model(&models.Destination{}).Where("id = ?", id).Select("Name", "Location", "StartDate", "EndDate", "Description", "Budget").Updates(models.Destination{
		Name:        editable.Name,
		Location:    editable.Location,
		StartDate:   editable.StartDate,
		EndDate:     editable.EndDate,
		Description: editable.Description,
		Budget:      editable.Budget,
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

// @Summary		Delete destination
// @Description	Deletes a destination. Its activities and their pairings, expenses, and ratings are deleted with it.
// @Tags			Destinations
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		uint64	true	"ID of the destination"
// @Router			/api/Destinations/{id} [delete]
func DeleteDestination(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var destination models.Destination
	err = models.DB.First(&destination, id).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	err = models.DB.Delete(&destination).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
