package models

import (
	"strings"

	"github.com/AngelVm20/consultorio-sonrisas/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MovementKind is the direction of a cash movement.
type MovementKind string

const (
	Income  MovementKind = "INCOME"
	Expense MovementKind = "EXPENSE"
)

// MovementSource tags where a cash movement came from. Manually entered
// movements carry an empty source.
type MovementSource string

// SourceConsultation marks movements that are derived from a consultation's
// income. They are owned by the consultation's lifecycle and recreated on
// every consultation save.
const SourceConsultation MovementSource = "CONSULTATION"

// CashMovement is one entry in the clinic's cash ledger.
//
// PatientID and ConsultationID are plain references without foreign key
// constraints: the ledger stores them for display but never validates they
// still exist.
type CashMovement struct {
	DefaultModel
	Date           types.Date
	Kind           MovementKind
	Amount         decimal.Decimal `gorm:"type:DECIMAL(20,8);check:cash_movement_amount_not_negative,amount >= 0"`
	Source         MovementSource
	PatientID      *uint64 `gorm:"index"`
	ConsultationID *uint64 `gorm:"index"`
	Note           string
}

func (m CashMovement) Self() string {
	return "CashMovement"
}

// BeforeSave validates the movement. Negative amounts are an input error,
// not something to clamp silently. Zero is acceptable here, the API boundary
// is stricter for manual entries.
func (m *CashMovement) BeforeSave(_ *gorm.DB) (err error) {
	m.Note = strings.TrimSpace(m.Note)

	if m.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if m.Kind != Income && m.Kind != Expense {
		return ErrMovementKindInvalid
	}

	if m.Source != "" && m.Source != SourceConsultation {
		return ErrMovementSourceInvalid
	}

	if m.Source == SourceConsultation && m.ConsultationID == nil {
		return ErrConsultationRefMissing
	}

	if m.Date.IsZero() {
		m.Date = types.Today()
	}

	return nil
}

// DeleteCashMovement deletes the movement with the given ID. Deleting a
// movement that does not exist is not an error, so the operation is
// idempotent for callers.
func DeleteCashMovement(db *gorm.DB, id uint64) error {
	return db.Delete(&CashMovement{}, id).Error
}

// CashMovementsInRange returns all movements dated within [from, to], both
// inclusive, ordered by date and then by ID so that same-day movements keep
// their entry order.
func CashMovementsInRange(db *gorm.DB, from, to types.Date) ([]CashMovement, error) {
	var movements []CashMovement
	err := db.
		Where("date(cash_movements.date) >= date(?)", from).
		Where("date(cash_movements.date) <= date(?)", to).
		Order("date(cash_movements.date) ASC, cash_movements.id ASC").
		Find(&movements).Error
	if err != nil {
		return nil, err
	}

	return movements, nil
}

// WeeklySummary is the aggregation of one week bucket of cash movements.
// It is derived on every read and never stored.
type WeeklySummary struct {
	Week    types.Week
	From    types.Date // Earliest movement date in the bucket, not the calendar Monday
	To      types.Date // Latest movement date in the bucket, not the calendar Sunday
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// WeeklySummaries groups the movements within [from, to] into week buckets
// and aggregates income, expense and balance per bucket, ascending by week.
//
// Every movement of the range lands in exactly one bucket, so the bucket
// sums always add up to the totals of CashMovementsInRange for the same
// range.
func WeeklySummaries(db *gorm.DB, from, to types.Date) ([]WeeklySummary, error) {
	movements, err := CashMovementsInRange(db, from, to)
	if err != nil {
		return nil, err
	}

	// Movements arrive in date order and the week bucket grows
	// monotonically with the date, so buckets appear in ascending order.
	summaries := make([]WeeklySummary, 0)
	index := make(map[types.Week]int)

	for _, movement := range movements {
		week := types.WeekOf(movement.Date)

		i, ok := index[week]
		if !ok {
			summaries = append(summaries, WeeklySummary{
				Week:    week,
				From:    movement.Date,
				To:      movement.Date,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
				Balance: decimal.Zero,
			})
			i = len(summaries) - 1
			index[week] = i
		}

		if movement.Date.Before(summaries[i].From) {
			summaries[i].From = movement.Date
		}
		if movement.Date.After(summaries[i].To) {
			summaries[i].To = movement.Date
		}

		switch movement.Kind {
		case Income:
			summaries[i].Income = summaries[i].Income.Add(movement.Amount)
			summaries[i].Balance = summaries[i].Balance.Add(movement.Amount)
		case Expense:
			summaries[i].Expense = summaries[i].Expense.Add(movement.Amount)
			summaries[i].Balance = summaries[i].Balance.Sub(movement.Amount)
		}
	}

	return summaries, nil
}
