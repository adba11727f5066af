package v1

import (
	"fmt"
	"os"

	"github.com/AngelVm20/consultorio-sonrisas/internal/models"
	"github.com/AngelVm20/consultorio-sonrisas/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type MovementEditable struct {
	Date types.Date `json:"date" example:"2024-01-03"` // Day of the movement. Defaults to today.

	Kind models.MovementKind `json:"kind" example:"EXPENSE" enums:"INCOME,EXPENSE"` // Direction of the movement

	// Must be strictly positive for manual entries.
	Amount decimal.Decimal `json:"amount" example:"40" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`

	Note string `json:"note" example:"Gloves restock" default:""` // A free-text note
}

// model returns the database resource for the API representation of the
// editable fields. Manual entries never carry a source tag or references,
// those are owned by the consultation reconciliation.
func (editable MovementEditable) model() models.CashMovement {
	return models.CashMovement{
		Date:   editable.Date,
		Kind:   editable.Kind,
		Amount: editable.Amount,
		Note:   editable.Note,
	}
}

// Movement is the representation of a cash movement in API v1.
type Movement struct {
	models.DefaultModel
	Date           types.Date             `json:"date" example:"2024-01-03"`
	Kind           models.MovementKind    `json:"kind" example:"INCOME" enums:"INCOME,EXPENSE"`
	Amount         decimal.Decimal        `json:"amount" example:"100"`
	Source         models.MovementSource  `json:"source" example:"CONSULTATION" enums:",CONSULTATION"` // Empty for manual entries
	PatientID      *uint64                `json:"patientId" example:"3"`                               // Only set for consultation-derived movements
	ConsultationID *uint64                `json:"consultationId" example:"12"`                         // Only set for consultation-derived movements
	Note           string                 `json:"note" example:"Lunch" default:""`
}

// newMovement returns the API v1 representation of the resource
func newMovement(model models.CashMovement) Movement {
	return Movement{
		DefaultModel:   model.DefaultModel,
		Date:           model.Date,
		Kind:           model.Kind,
		Amount:         model.Amount,
		Source:         model.Source,
		PatientID:      model.PatientID,
		ConsultationID: model.ConsultationID,
		Note:           model.Note,
	}
}

// Totals sums the movements of the requested range, in the deployment
// currency.
type Totals struct {
	Income   decimal.Decimal `json:"income" example:"160"`
	Expense  decimal.Decimal `json:"expense" example:"40"`
	Balance  decimal.Decimal `json:"balance" example:"120"` // income - expense
	Currency string          `json:"currency" example:"USD"`
	Symbol   string          `json:"symbol" example:"$"`
}

func newTotals(movements []models.CashMovement) Totals {
	income := decimal.Zero
	expense := decimal.Zero

	for _, movement := range movements {
		switch movement.Kind {
		case models.Income:
			income = income.Add(movement.Amount)
		case models.Expense:
			expense = expense.Add(movement.Amount)
		}
	}

	code, symbol := deploymentCurrency()
	return Totals{
		Income:   income,
		Expense:  expense,
		Balance:  income.Sub(expense),
		Currency: code,
		Symbol:   symbol,
	}
}

// deploymentCurrency resolves the CURRENCY environment variable to an ISO
// 4217 code and its symbol. The amounts themselves are currency-agnostic,
// this is display information only.
func deploymentCurrency() (code string, symbol string) {
	value, ok := os.LookupEnv("CURRENCY")
	if !ok {
		value = "USD"
	}

	unit, err := currency.ParseISO(value)
	if err != nil {
		unit = currency.USD
	}

	return unit.String(), fmt.Sprintf("%v", currency.NarrowSymbol(unit))
}

type MovementResponse struct {
	Error *string   `json:"error" example:"the amount of a cash movement must be positive"` // The error, if any occurred
	Data  *Movement `json:"data"`                                                           // The movement data, if the request was successful
}

type MovementListResponse struct {
	Data   []Movement `json:"data"`                                                           // List of movements
	Totals *Totals    `json:"totals"`                                                         // Sums over the listed movements
	Error  *string    `json:"error" example:"the amount of a cash movement must be positive"` // The error, if any occurred
}

// WeeklySummary is the representation of one week bucket in API v1.
type WeeklySummary struct {
	Week    string          `json:"week" example:"2024-W01"` // The week bucket label
	From    types.Date      `json:"from" example:"2024-01-01"`
	To      types.Date      `json:"to" example:"2024-01-03"`
	Income  decimal.Decimal `json:"income" example:"100"`
	Expense decimal.Decimal `json:"expense" example:"40"`
	Balance decimal.Decimal `json:"balance" example:"60"`
}

func newWeeklySummary(model models.WeeklySummary) WeeklySummary {
	return WeeklySummary{
		Week:    model.Week.String(),
		From:    model.From,
		To:      model.To,
		Income:  model.Income,
		Expense: model.Expense,
		Balance: model.Balance,
	}
}

type WeeklySummaryListResponse struct {
	Data  []WeeklySummary `json:"data"`                                      // List of week buckets
	Error *string         `json:"error" example:"fromDate must not be after untilDate"` // The error, if any occurred
}
