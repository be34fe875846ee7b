package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tripfolio/backend/internal/controllers"
	"github.com/tripfolio/backend/internal/httputil"
	"github.com/tripfolio/backend/test"
)

// defaultExpenseAmount is used for test expenses where the amount does
// not matter.
var defaultExpenseAmount = decimal.NewFromFloat(100)

func createTestExpense(t *testing.T, c controllers.ExpenseEditable, expectedStatus ...int) controllers.Expense {
	if c.ActivityID == 0 {
		c.ActivityID = createTestActivity(t, controllers.ActivityEditable{}).ActivityID
	}

	if c.Description == "" {
		c.Description = "Testing expense"
	}

	if c.Amount.IsZero() {
		c.Amount = defaultExpenseAmount
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/api/Expenses", c)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var expense controllers.Expense
	if r.Code == http.StatusCreated {
		test.DecodeResponse(t, &r, &expense)
	}

	return expense
}

func (suite *TestSuiteStandard) TestExpensesOptions() {
	e := createTestExpense(suite.T(), controllers.ExpenseEditable{})

	tests := []struct {
		name  string
		path  string
		allow string
	}{
		{"List endpoint", "", "OPTIONS, GET, POST"},
		{"Existing expense", fmt.Sprintf("/%d", e.ID), "OPTIONS, GET, DELETE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com/api/Expenses"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

// TestExpensesCreateWithSplits verifies that an expense whose splits add up
// to the amount is created with all splits unpaid.
func (suite *TestSuiteStandard) TestExpensesCreateWithSplits() {
	a := createTestActivity(suite.T(), controllers.ActivityEditable{Name: "Tower Visit"})
	alice := createTestMember(suite.T(), controllers.MemberEditable{Name: "Alice"})
	bob := createTestMember(suite.T(), controllers.MemberEditable{Name: "Bob"})

	editable := controllers.ExpenseEditable{
		ActivityID:  a.ActivityID,
		Description: "Group dinner",
		Amount:      decimal.NewFromFloat(100.00),
		Splits: []controllers.ExpenseSplitEditable{
			{MemberID: alice.MemberID, Share: decimal.NewFromFloat(33.50)},
			{MemberID: bob.MemberID, Share: decimal.NewFromFloat(66.50)},
		},
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/Expenses", editable)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var expense controllers.Expense
	test.DecodeResponse(suite.T(), &r, &expense)

	assert.Equal(suite.T(), "Tower Visit", expense.ActivityName)
	assert.True(suite.T(), expense.Amount.Equal(decimal.NewFromFloat(100.00)))

	if assert.Len(suite.T(), expense.Splits, 2) {
		for _, split := range expense.Splits {
			assert.False(suite.T(), split.IsPaid)
		}
	}

	location := r.Header().Get("Location")
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/api/Expenses/%d", expense.ID), location)
}

// TestExpensesCreateSplitSumMismatch verifies that an expense whose splits
// do not add up to the amount is rejected without writing anything.
func (suite *TestSuiteStandard) TestExpensesCreateSplitSumMismatch() {
	a := createTestActivity(suite.T(), controllers.ActivityEditable{})
	alice := createTestMember(suite.T(), controllers.MemberEditable{Name: "Alice"})
	bob := createTestMember(suite.T(), controllers.MemberEditable{Name: "Bob"})

	editable := controllers.ExpenseEditable{
		ActivityID: a.ActivityID,
		Amount:     decimal.NewFromFloat(100.00),
		Splits: []controllers.ExpenseSplitEditable{
			{MemberID: alice.MemberID, Share: decimal.NewFromFloat(33.50)},
			{MemberID: bob.MemberID, Share: decimal.NewFromFloat(66.49)},
		},
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/Expenses", editable)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response httputil.HTTPError
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Total shares must equal expense amount", response.Error)
	assert.Empty(suite.T(), r.Header().Get("Location"))

	// Nothing was written
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/api/Expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses []controllers.Expense
	test.DecodeResponse(suite.T(), &r, &expenses)
	assert.Empty(suite.T(), expenses)
}

func (suite *TestSuiteStandard) TestExpensesCreateFails() {
	a := createTestActivity(suite.T(), controllers.ActivityEditable{})
	m := createTestMember(suite.T(), controllers.MemberEditable{})

	tests := []struct {
		name  string
		body  controllers.ExpenseEditable
		error string
	}{
		{
			"Invalid activity",
			controllers.ExpenseEditable{ActivityID: 831891, Amount: defaultExpenseAmount},
			"Invalid ActivityId",
		},
		{
			"Invalid member in split",
			controllers.ExpenseEditable{ActivityID: a.ActivityID, Amount: defaultExpenseAmount, Splits: []controllers.ExpenseSplitEditable{
				{MemberID: 831891, Share: defaultExpenseAmount},
			}},
			"Invalid MemberId",
		},
		{
			"Duplicate member in splits",
			controllers.ExpenseEditable{ActivityID: a.ActivityID, Amount: defaultExpenseAmount, Splits: []controllers.ExpenseSplitEditable{
				{MemberID: m.MemberID, Share: decimal.NewFromFloat(50)},
				{MemberID: m.MemberID, Share: decimal.NewFromFloat(50)},
			}},
			"Duplicate MemberId in splits",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/api/Expenses", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response httputil.HTTPError
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.error, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetByActivity() {
	a := createTestActivity(suite.T(), controllers.ActivityEditable{})

	_ = createTestExpense(suite.T(), controllers.ExpenseEditable{ActivityID: a.ActivityID})
	_ = createTestExpense(suite.T(), controllers.ExpenseEditable{ActivityID: a.ActivityID})

	// An expense for another activity is not returned
	_ = createTestExpense(suite.T(), controllers.ExpenseEditable{})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/api/Expenses/activity/%d", a.ActivityID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses []controllers.Expense
	test.DecodeResponse(suite.T(), &r, &expenses)
	assert.Len(suite.T(), expenses, 2)
}

func (suite *TestSuiteStandard) TestExpensesGetSingle() {
	e := createTestExpense(suite.T(), controllers.ExpenseEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing expense", fmt.Sprintf("%d", e.ID), http.StatusOK},
		{"No expense with this ID", "912388", http.StatusNotFound},
		{"Invalid ID", "notanumber", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/api/Expenses/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestExpensesMarkPaid verifies that a split can be marked as paid and the
// flag shows up in subsequent reads.
func (suite *TestSuiteStandard) TestExpensesMarkPaid() {
	m := createTestMember(suite.T(), controllers.MemberEditable{})
	e := createTestExpense(suite.T(), controllers.ExpenseEditable{Splits: []controllers.ExpenseSplitEditable{
		{MemberID: m.MemberID, Share: defaultExpenseAmount},
	}})

	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/api/Expenses/%d/markpaid/%d", e.ID, m.MemberID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/api/Expenses/%d", e.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expense controllers.Expense
	test.DecodeResponse(suite.T(), &r, &expense)

	if assert.Len(suite.T(), expense.Splits, 1) {
		assert.True(suite.T(), expense.Splits[0].IsPaid)
	}
}

func (suite *TestSuiteStandard) TestExpensesMarkPaidFails() {
	m := createTestMember(suite.T(), controllers.MemberEditable{})
	e := createTestExpense(suite.T(), controllers.ExpenseEditable{Splits: []controllers.ExpenseSplitEditable{
		{MemberID: m.MemberID, Share: defaultExpenseAmount},
	}})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"No split for this member", fmt.Sprintf("%d/markpaid/%d", e.ID, m.MemberID+13), http.StatusNotFound},
		{"No expense with this ID", fmt.Sprintf("%d/markpaid/%d", e.ID+13, m.MemberID), http.StatusNotFound},
		{"Invalid member ID", fmt.Sprintf("%d/markpaid/broken", e.ID), http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, fmt.Sprintf("http://example.com/api/Expenses/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestExpensesDeleteSplit verifies that a single split can be removed from
// an expense without deleting the expense.
func (suite *TestSuiteStandard) TestExpensesDeleteSplit() {
	alice := createTestMember(suite.T(), controllers.MemberEditable{Name: "Alice"})
	bob := createTestMember(suite.T(), controllers.MemberEditable{Name: "Bob"})

	e := createTestExpense(suite.T(), controllers.ExpenseEditable{Splits: []controllers.ExpenseSplitEditable{
		{MemberID: alice.MemberID, Share: decimal.NewFromFloat(50)},
		{MemberID: bob.MemberID, Share: decimal.NewFromFloat(50)},
	}})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/api/Expenses/%d/splits/%d", e.ID, alice.MemberID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/api/Expenses/%d", e.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expense controllers.Expense
	test.DecodeResponse(suite.T(), &r, &expense)

	if assert.Len(suite.T(), expense.Splits, 1) {
		assert.Equal(suite.T(), bob.MemberID, expense.Splits[0].MemberID)
	}
}

// TestExpensesDelete verifies that deleting an expense also deletes its
// splits.
func (suite *TestSuiteStandard) TestExpensesDelete() {
	m := createTestMember(suite.T(), controllers.MemberEditable{})
	e := createTestExpense(suite.T(), controllers.ExpenseEditable{Splits: []controllers.ExpenseSplitEditable{
		{MemberID: m.MemberID, Share: defaultExpenseAmount},
	}})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/api/Expenses/%d", e.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/api/Expenses/%d", e.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/api/Expenses/%d/markpaid/%d", e.ID, m.MemberID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestExpensesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/Expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	// The activity check must not report the storage fault as an invalid
	// activity
	createTestExpense(suite.T(), controllers.ExpenseEditable{ActivityID: 1}, http.StatusInternalServerError)
}
