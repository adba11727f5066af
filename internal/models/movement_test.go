package models_test

import (
	"time"

	"github.com/AngelVm20/consultorio-sonrisas/internal/models"
	"github.com/AngelVm20/consultorio-sonrisas/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMovementNegativeAmount() {
	movement := models.CashMovement{
		Kind:   models.Expense,
		Amount: decimal.NewFromInt(-1),
	}

	err := models.DB.Create(&movement).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestMovementKindRequired() {
	movement := models.CashMovement{
		Amount: decimal.NewFromInt(10),
	}

	err := models.DB.Create(&movement).Error
	assert.ErrorIs(suite.T(), err, models.ErrMovementKindInvalid)
}

func (suite *TestSuiteStandard) TestMovementSourceInvalid() {
	movement := models.CashMovement{
		Kind:   models.Income,
		Amount: decimal.NewFromInt(10),
		Source: "LOTTERY",
	}

	err := models.DB.Create(&movement).Error
	assert.ErrorIs(suite.T(), err, models.ErrMovementSourceInvalid)
}

func (suite *TestSuiteStandard) TestMovementSourceConsultationNeedsRef() {
	movement := models.CashMovement{
		Kind:   models.Income,
		Amount: decimal.NewFromInt(10),
		Source: models.SourceConsultation,
	}

	err := models.DB.Create(&movement).Error
	assert.ErrorIs(suite.T(), err, models.ErrConsultationRefMissing)
}

func (suite *TestSuiteStandard) TestMovementDateDefaults() {
	movement := suite.createTestMovement(models.CashMovement{
		Amount: decimal.NewFromInt(10),
	})

	assert.True(suite.T(), movement.Date.Equal(types.Today()), "movement date was not defaulted: %s", movement.Date)
}

func (suite *TestSuiteStandard) TestMovementNoteTrimmed() {
	movement := suite.createTestMovement(models.CashMovement{
		Amount: decimal.NewFromInt(10),
		Note:   "  paid in cash  ",
	})

	assert.Equal(suite.T(), "paid in cash", movement.Note)
}

func (suite *TestSuiteStandard) TestDeleteCashMovementIdempotent() {
	movement := suite.createTestMovement(models.CashMovement{Amount: decimal.NewFromInt(10)})

	assert.Nil(suite.T(), models.DeleteCashMovement(models.DB, movement.ID))

	// Deleting again must not error
	assert.Nil(suite.T(), models.DeleteCashMovement(models.DB, movement.ID))
	assert.Nil(suite.T(), models.DeleteCashMovement(models.DB, 4923))
}

func (suite *TestSuiteStandard) TestCashMovementsInRange() {
	before := suite.createTestMovement(models.CashMovement{
		Date:   types.NewDate(2024, time.March, 31),
		Amount: decimal.NewFromInt(1),
	})
	first := suite.createTestMovement(models.CashMovement{
		Date:   types.NewDate(2024, time.April, 1),
		Amount: decimal.NewFromInt(2),
	})
	second := suite.createTestMovement(models.CashMovement{
		Date:   types.NewDate(2024, time.April, 1),
		Amount: decimal.NewFromInt(3),
	})
	last := suite.createTestMovement(models.CashMovement{
		Date:   types.NewDate(2024, time.April, 7),
		Amount: decimal.NewFromInt(4),
	})
	after := suite.createTestMovement(models.CashMovement{
		Date:   types.NewDate(2024, time.April, 8),
		Amount: decimal.NewFromInt(5),
	})

	movements, err := models.CashMovementsInRange(models.DB, types.NewDate(2024, time.April, 1), types.NewDate(2024, time.April, 7))
	assert.Nil(suite.T(), err)

	// Both range bounds are inclusive
	assert.Len(suite.T(), movements, 3)
	assert.Equal(suite.T(), first.ID, movements[0].ID, "same-day movements must keep their entry order")
	assert.Equal(suite.T(), second.ID, movements[1].ID)
	assert.Equal(suite.T(), last.ID, movements[2].ID)

	for _, movement := range movements {
		assert.NotEqual(suite.T(), before.ID, movement.ID)
		assert.NotEqual(suite.T(), after.ID, movement.ID)
	}
}

func (suite *TestSuiteStandard) TestWeeklySummaries() {
	_ = suite.createTestMovement(models.CashMovement{
		Date:   types.NewDate(2024, time.January, 1),
		Kind:   models.Income,
		Amount: decimal.NewFromInt(100),
	})
	_ = suite.createTestMovement(models.CashMovement{
		Date:   types.NewDate(2024, time.January, 3),
		Kind:   models.Expense,
		Amount: decimal.NewFromInt(40),
	})
	_ = suite.createTestMovement(models.CashMovement{
		Date:   types.NewDate(2024, time.January, 8),
		Kind:   models.Income,
		Amount: decimal.NewFromInt(60),
	})

	summaries, err := models.WeeklySummaries(models.DB, types.NewDate(2024, time.January, 1), types.NewDate(2024, time.January, 14))
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), summaries, 2)

	assert.Equal(suite.T(), types.Week{Year: 2024, Week: 1}, summaries[0].Week)
	assert.True(suite.T(), summaries[0].From.Equal(types.NewDate(2024, time.January, 1)))
	assert.True(suite.T(), summaries[0].To.Equal(types.NewDate(2024, time.January, 3)))
	assert.True(suite.T(), summaries[0].Income.Equal(decimal.NewFromInt(100)), "income is %s", summaries[0].Income)
	assert.True(suite.T(), summaries[0].Expense.Equal(decimal.NewFromInt(40)), "expense is %s", summaries[0].Expense)
	assert.True(suite.T(), summaries[0].Balance.Equal(decimal.NewFromInt(60)), "balance is %s", summaries[0].Balance)

	assert.Equal(suite.T(), types.Week{Year: 2024, Week: 2}, summaries[1].Week)
	assert.True(suite.T(), summaries[1].From.Equal(types.NewDate(2024, time.January, 8)))
	assert.True(suite.T(), summaries[1].To.Equal(types.NewDate(2024, time.January, 8)))
	assert.True(suite.T(), summaries[1].Income.Equal(decimal.NewFromInt(60)))
	assert.True(suite.T(), summaries[1].Expense.IsZero())
	assert.True(suite.T(), summaries[1].Balance.Equal(decimal.NewFromInt(60)))
}

func (suite *TestSuiteStandard) TestWeeklySummariesEmptyRange() {
	summaries, err := models.WeeklySummaries(models.DB, types.NewDate(2024, time.January, 1), types.NewDate(2024, time.January, 14))
	assert.Nil(suite.T(), err)
	assert.NotNil(suite.T(), summaries)
	assert.Len(suite.T(), summaries, 0)
}

func (suite *TestSuiteStandard) TestWeeklySummariesMatchRangeTotals() {
	dates := []types.Date{
		types.NewDate(2023, time.December, 25),
		types.NewDate(2023, time.December, 31),
		types.NewDate(2024, time.January, 1),
		types.NewDate(2024, time.January, 6),
		types.NewDate(2024, time.January, 7),
	}

	for i, date := range dates {
		kind := models.Income
		if i%2 == 1 {
			kind = models.Expense
		}

		_ = suite.createTestMovement(models.CashMovement{
			Date:   date,
			Kind:   kind,
			Amount: decimal.NewFromInt(int64(10 * (i + 1))),
		})
	}

	from := types.NewDate(2023, time.December, 25)
	to := types.NewDate(2024, time.January, 7)

	movements, err := models.CashMovementsInRange(models.DB, from, to)
	assert.Nil(suite.T(), err)

	total := decimal.Zero
	for _, movement := range movements {
		if movement.Kind == models.Income {
			total = total.Add(movement.Amount)
		} else {
			total = total.Sub(movement.Amount)
		}
	}

	summaries, err := models.WeeklySummaries(models.DB, from, to)
	assert.Nil(suite.T(), err)

	bucketed := decimal.Zero
	for _, summary := range summaries {
		bucketed = bucketed.Add(summary.Balance)
	}

	// Every movement lands in exactly one bucket
	assert.True(suite.T(), total.Equal(bucketed), "range total %s, bucket total %s", total, bucketed)
}

func (suite *TestSuiteStandard) TestCashMovementsInRangeDBError() {
	suite.CloseDB()

	_, err := models.CashMovementsInRange(models.DB, types.Today(), types.Today())
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
