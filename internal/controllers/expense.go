package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tripfolio/backend/internal/httputil"
	"github.com/tripfolio/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// ExpenseSplitEditable is one member's share supplied at expense creation.
type ExpenseSplitEditable struct {
	MemberID uint64          `json:"memberId" example:"3"`
	Share    decimal.Decimal `json:"share" example:"33.50"`
}

// ExpenseEditable represents all user configurable parameters of an expense
type ExpenseEditable struct {
	ActivityID  uint64                 `json:"activityId" example:"7"`
	Description string                 `json:"description" example:"Group Dinner"`
	Amount      decimal.Decimal        `json:"amount" example:"100.00"`
	Date        time.Time              `json:"date" example:"2024-07-02T19:00:00Z"`
	Splits      []ExpenseSplitEditable `json:"splits"`
}

func (editable ExpenseEditable) model() models.Expense {
	expense := models.Expense{
		ActivityID:  editable.ActivityID,
		Description: editable.Description,
		Amount:      editable.Amount,
		Date:        editable.Date,
	}

	// Splits always start unpaid
	for _, split := range editable.Splits {
		expense.ExpenseSplits = append(expense.ExpenseSplits, models.ExpenseSplit{
			MemberID: split.MemberID,
			Share:    split.Share,
		})
	}

	return expense
}

// ExpenseSplit is the API representation of one member's share.
type ExpenseSplit struct {
	MemberID   uint64          `json:"memberId" example:"3"`
	MemberName string          `json:"memberName" example:"Alice"`
	Share      decimal.Decimal `json:"share" example:"33.50"`
	IsPaid     bool            `json:"isPaid" example:"false"`
}

// Expense is the API representation of an expense with its splits.
type Expense struct {
	ID           uint64          `json:"id" example:"12"`
	ActivityID   uint64          `json:"activityId" example:"7"`
	ActivityName string          `json:"activityName" example:"Tower Visit"`
	Description  string          `json:"description" example:"Group Dinner"`
	Amount       decimal.Decimal `json:"amount" example:"100.00"`
	Date         time.Time       `json:"date" example:"2024-07-02T19:00:00Z"`
	Splits       []ExpenseSplit  `json:"splits"`
}

func newExpense(model models.Expense) Expense {
	expense := Expense{
		ID:           model.ID,
		ActivityID:   model.ActivityID,
		ActivityName: model.Activity.Name,
		Description:  model.Description,
		Amount:       model.Amount,
		Date:         model.Date,
		Splits:       make([]ExpenseSplit, 0, len(model.ExpenseSplits)),
	}

	for _, split := range model.ExpenseSplits {
		expense.Splits = append(expense.Splits, ExpenseSplit{
			MemberID:   split.MemberID,
			MemberName: split.Member.Name,
			Share:      split.Share,
			IsPaid:     split.IsPaid,
		})
	}

	return expense
}

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Filtered by activity
	r.GET("/activity/:activityId", GetExpensesByActivity)

	// Expense with ID
	{
		r.OPTIONS("/:expenseId", OptionsExpenseDetail)
		r.GET("/:expenseId", GetExpense)
		r.DELETE("/:expenseId", DeleteExpense)
	}

	// Split mutations keyed by the (expense, member) pair
	{
		r.PUT("/:expenseId/markpaid/:memberId", MarkExpensePaid)
		r.DELETE("/:expenseId/splits/:memberId", DeleteExpenseSplit)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/api/Expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Param			expenseId	path	uint64	true	"ID of the expense"
// @Router			/api/Expenses/{expenseId} [options]
func OptionsExpenseDetail(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		List expenses
// @Description	Returns all expenses with their activity name and splits
// @Tags			Expenses
// @Produce		json
// @Success		200	{array}		Expense
// @Failure		500	{object}	httputil.HTTPError
// @Router			/api/Expenses [get]
func GetExpenses(c *gin.Context) {
	var expenses []models.Expense
	err := models.DB.Preload("Activity").Preload("ExpenseSplits.Member").Find(&expenses).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(expense))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		List expenses by activity
// @Description	Returns the expenses for one activity with their splits
// @Tags			Expenses
// @Produce		json
// @Success		200			{array}		Expense
// @Failure		400			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			activityId	path		uint64	true	"ID of the activity"
// @Router			/api/Expenses/activity/{activityId} [get]
func GetExpensesByActivity(c *gin.Context) {
	activityID, err := httputil.ParseID(c, "activityId")
	if err != nil {
		return
	}

	var expenses []models.Expense
	err = models.DB.Preload("Activity").Preload("ExpenseSplits.Member").Where("activity_id = ?", activityID).Find(&expenses).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(expense))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get expense
// @Description	Returns an expense by its ID with its splits
// @Tags			Expenses
// @Produce		json
// @Success		200			{object}	Expense
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404
// @Failure		500			{object}	httputil.HTTPError
// @Param			expenseId	path		uint64	true	"ID of the expense"
// @Router			/api/Expenses/{expenseId} [get]
func GetExpense(c *gin.Context) {
	id, err := httputil.ParseID(c, "expenseId")
	if err != nil {
		return
	}

	var expense models.Expense
	err = models.DB.Preload("Activity").Preload("ExpenseSplits.Member").First(&expense, id).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, newExpense(expense))
}

// @Summary		Create expense
// @Description	Creates a new expense with optional splits between members. The shares of the splits must sum to the expense amount exactly.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	Expense
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/api/Expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	var activity models.Activity
	err := models.DB.First(&activity, editable.ActivityID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httputil.NewError(c, http.StatusBadRequest, errors.New("Invalid ActivityId"))
			return
		}

		httputil.FetchErrorHandler(c, err)
		return
	}

	// The whole payload is validated before anything is written, so a
	// rejected split set never leaves an orphaned expense header behind.
	if len(editable.Splits) > 0 {
		total := decimal.Zero
		seen := make([]uint64, 0, len(editable.Splits))

		for _, split := range editable.Splits {
			if slices.Contains(seen, split.MemberID) {
				httputil.NewError(c, http.StatusBadRequest, errors.New("Duplicate MemberId in splits"))
				return
			}
			seen = append(seen, split.MemberID)

			var member models.Member
			if err := models.DB.First(&member, split.MemberID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					httputil.NewError(c, http.StatusBadRequest, errors.New("Invalid MemberId"))
					return
				}

				httputil.FetchErrorHandler(c, err)
				return
			}

			total = total.Add(split.Share)
		}

		if !total.Equal(editable.Amount) {
			httputil.NewError(c, http.StatusBadRequest, errors.New("Total shares must equal expense amount"))
			return
		}
	}

	// Creating the expense with its splits runs in a single transaction
	expense := editable.model()
	if err := models.DB.Create(&expense).Error; err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	expense.Activity = activity
	for i := range expense.ExpenseSplits {
		var member models.Member
		if err := models.DB.First(&member, expense.ExpenseSplits[i].MemberID).Error; err == nil {
			expense.ExpenseSplits[i].Member = member
		}
	}

	createdLocation(c, expense.ID)
	c.JSON(http.StatusCreated, newExpense(expense))
}

// @Summary		Mark split as paid
// @Description	Marks a member's share of an expense as paid
// @Tags			Expenses
// @Success		204
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404
// @Failure		500			{object}	httputil.HTTPError
// @Param			expenseId	path		uint64	true	"ID of the expense"
// @Param			memberId	path		uint64	true	"ID of the member"
// @Router			/api/Expenses/{expenseId}/markpaid/{memberId} [put]
func MarkExpensePaid(c *gin.Context) {
	expenseID, err := httputil.ParseID(c, "expenseId")
	if err != nil {
		return
	}

	memberID, err := httputil.ParseID(c, "memberId")
	if err != nil {
		return
	}

	// Update only the matching row, an update matching no row is reported
	// as not found. This also covers a concurrent delete of the split.
	result := models.DB.Model(&models.ExpenseSplit{}).Where("expense_id = ? AND member_id = ?", expenseID, memberID).Select("IsPaid").Updates(models.ExpenseSplit{IsPaid: true})
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

// @Summary		Delete expense
// @Description	Deletes an expense and all of its splits
// @Tags			Expenses
// @Success		204
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404
// @Failure		500			{object}	httputil.HTTPError
// @Param			expenseId	path		uint64	true	"ID of the expense"
// @Router			/api/Expenses/{expenseId} [delete]
func DeleteExpense(c *gin.Context) {
	id, err := httputil.ParseID(c, "expenseId")
	if err != nil {
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, id).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("expense_id = ?", expense.ID).Delete(&models.ExpenseSplit{}).Error; err != nil {
			return err
		}

		return tx.Delete(&expense).Error
	})
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Delete split
// @Description	Removes one member's split from an expense
// @Tags			Expenses
// @Success		204
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404
// @Failure		500			{object}	httputil.HTTPError
// @Param			expenseId	path		uint64	true	"ID of the expense"
// @Param			memberId	path		uint64	true	"ID of the member"
// @Router			/api/Expenses/{expenseId}/splits/{memberId} [delete]
func DeleteExpenseSplit(c *gin.Context) {
	expenseID, err := httputil.ParseID(c, "expenseId")
	if err != nil {
		return
	}

	memberID, err := httputil.ParseID(c, "memberId")
	if err != nil {
		return
	}

	var split models.ExpenseSplit
	err = models.DB.Where("expense_id = ? AND member_id = ?", expenseID, memberID).First(&split).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	err = models.DB.Delete(&split).Error
	if err != nil {
		httputil.FetchErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
