package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/AngelVm20/consultorio-sonrisas/internal/controllers/v1"
	"github.com/AngelVm20/consultorio-sonrisas/internal/models"
	"github.com/AngelVm20/consultorio-sonrisas/internal/test"
	"github.com/AngelVm20/consultorio-sonrisas/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMovementsCreate() {
	response := createTestMovement(suite.T(), v1.MovementEditable{
		Date:   types.NewDate(2024, time.January, 3),
		Kind:   models.Expense,
		Amount: decimal.NewFromInt(40),
		Note:   "Gloves restock",
	})

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), models.Expense, response.Data.Kind)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromInt(40)))
	assert.Equal(suite.T(), "Gloves restock", response.Data.Note)

	// Manual entries never carry a source or references
	assert.Equal(suite.T(), models.MovementSource(""), response.Data.Source)
	assert.Nil(suite.T(), response.Data.PatientID)
	assert.Nil(suite.T(), response.Data.ConsultationID)
}

func (suite *TestSuiteStandard) TestMovementsCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Broken JSON", `{ "amount": 10 `},
		{"Zero amount", v1.MovementEditable{Kind: models.Income, Amount: decimal.Zero}},
		{"Negative amount", v1.MovementEditable{Kind: models.Income, Amount: decimal.NewFromInt(-5)}},
		{"Invalid kind", v1.MovementEditable{Kind: "LOTTERY", Amount: decimal.NewFromInt(5)}},
		{"Missing kind", v1.MovementEditable{Amount: decimal.NewFromInt(5)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/movements", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.MovementResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
			assert.Nil(t, response.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestMovementsList() {
	_ = createTestMovement(suite.T(), v1.MovementEditable{
		Date:   types.NewDate(2024, time.January, 1),
		Kind:   models.Income,
		Amount: decimal.NewFromInt(100),
	})
	_ = createTestMovement(suite.T(), v1.MovementEditable{
		Date:   types.NewDate(2024, time.January, 3),
		Kind:   models.Expense,
		Amount: decimal.NewFromInt(40),
	})
	_ = createTestMovement(suite.T(), v1.MovementEditable{
		Date:   types.NewDate(2024, time.January, 8),
		Kind:   models.Income,
		Amount: decimal.NewFromInt(60),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/movements?fromDate=2024-01-01&untilDate=2024-01-07", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MovementListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 2)

	require.NotNil(suite.T(), response.Totals)
	assert.True(suite.T(), response.Totals.Income.Equal(decimal.NewFromInt(100)))
	assert.True(suite.T(), response.Totals.Expense.Equal(decimal.NewFromInt(40)))
	assert.True(suite.T(), response.Totals.Balance.Equal(decimal.NewFromInt(60)))
	assert.Equal(suite.T(), "USD", response.Totals.Currency)
	assert.Equal(suite.T(), "$", response.Totals.Symbol)
}

func (suite *TestSuiteStandard) TestMovementsCurrency() {
	tests := []struct {
		currency string // Value of the CURRENCY environment variable
		code     string
		symbol   string
	}{
		{"", "USD", "$"}, // The default must be the narrow symbol, not "US$"
		{"USD", "USD", "$"},
		{"EUR", "EUR", "€"},
		{"doubloons", "USD", "$"}, // Unparseable values fall back to USD
	}

	for _, tt := range tests {
		suite.T().Run(tt.code+" "+tt.symbol, func(t *testing.T) {
			t.Setenv("CURRENCY", tt.currency)

			r := test.Request(t, http.MethodGet, "http://example.com/v1/movements", "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.MovementListResponse
			test.DecodeResponse(t, &r, &response)

			require.NotNil(t, response.Totals)
			assert.Equal(t, tt.code, response.Totals.Currency)
			assert.Equal(t, tt.symbol, response.Totals.Symbol)
		})
	}
}

func (suite *TestSuiteStandard) TestMovementsListDefaultsToCurrentWeek() {
	_ = createTestMovement(suite.T(), v1.MovementEditable{
		Kind:   models.Income,
		Amount: decimal.NewFromInt(10),
	})
	_ = createTestMovement(suite.T(), v1.MovementEditable{
		Date:   types.Today().AddDays(-14),
		Kind:   models.Income,
		Amount: decimal.NewFromInt(99),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/movements", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MovementListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Only the movement of the current week is in the default range
	require.Len(suite.T(), response.Data, 1)
	assert.True(suite.T(), response.Data[0].Amount.Equal(decimal.NewFromInt(10)))
}

func (suite *TestSuiteStandard) TestMovementsListInvertedRange() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/movements?fromDate=2024-01-07&untilDate=2024-01-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.MovementListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "fromDate must not be after untilDate", *response.Error)
}

func (suite *TestSuiteStandard) TestMovementsDelete() {
	movement := createTestMovement(suite.T(), v1.MovementEditable{
		Kind:   models.Expense,
		Amount: decimal.NewFromInt(5),
	})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/movements/%d", movement.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Deleting a movement that is already gone is not an error
	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/movements/%d", movement.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestMovementsDeleteDerivedNeedsForce() {
	date := types.NewDate(2024, time.April, 2)
	_ = createTestConsultation(suite.T(), v1.ConsultationEditable{
		Date:   date,
		Income: decimal.NewFromInt(50),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/movements?fromDate=2024-04-02&untilDate=2024-04-02", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.MovementListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	require.Len(suite.T(), list.Data, 1)
	derived := list.Data[0]
	assert.Equal(suite.T(), models.SourceConsultation, derived.Source)

	// Without confirmation the delete is refused
	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/movements/%d", derived.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var response v1.MovementResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, "force=true")

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/movements/%d?force=true", derived.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestWeeklySummariesEndpoint() {
	_ = createTestMovement(suite.T(), v1.MovementEditable{
		Date:   types.NewDate(2024, time.January, 1),
		Kind:   models.Income,
		Amount: decimal.NewFromInt(100),
	})
	_ = createTestMovement(suite.T(), v1.MovementEditable{
		Date:   types.NewDate(2024, time.January, 3),
		Kind:   models.Expense,
		Amount: decimal.NewFromInt(40),
	})
	_ = createTestMovement(suite.T(), v1.MovementEditable{
		Date:   types.NewDate(2024, time.January, 8),
		Kind:   models.Income,
		Amount: decimal.NewFromInt(60),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/movements/weeks?fromDate=2024-01-01&untilDate=2024-01-14", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WeeklySummaryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)

	assert.Equal(suite.T(), "2024-W01", response.Data[0].Week)
	assert.True(suite.T(), response.Data[0].Income.Equal(decimal.NewFromInt(100)))
	assert.True(suite.T(), response.Data[0].Expense.Equal(decimal.NewFromInt(40)))
	assert.True(suite.T(), response.Data[0].Balance.Equal(decimal.NewFromInt(60)))

	assert.Equal(suite.T(), "2024-W02", response.Data[1].Week)
	assert.True(suite.T(), response.Data[1].Balance.Equal(decimal.NewFromInt(60)))
}

func (suite *TestSuiteStandard) TestMovementsDBClosed() {
	tests := []struct {
		name string
		test func(t *testing.T)
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestMovement(t, v1.MovementEditable{Amount: decimal.NewFromInt(10)}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				r := test.Request(t, http.MethodGet, "http://example.com/v1/movements", "")
				test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)

				var response v1.MovementListResponse
				test.DecodeResponse(t, &r, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}
