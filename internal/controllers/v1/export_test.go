package v1_test

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strings"
	"testing"
	"time"

	v1 "github.com/AngelVm20/consultorio-sonrisas/internal/controllers/v1"
	"github.com/AngelVm20/consultorio-sonrisas/internal/httperror"
	"github.com/AngelVm20/consultorio-sonrisas/internal/models"
	"github.com/AngelVm20/consultorio-sonrisas/internal/test"
	"github.com/AngelVm20/consultorio-sonrisas/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) TestExportMovementsCSV() {
	_ = createTestMovement(suite.T(), v1.MovementEditable{
		Date:   types.NewDate(2024, time.January, 1),
		Kind:   models.Income,
		Amount: decimal.NewFromInt(100),
		Note:   `He said "ok"`,
	})
	_ = createTestMovement(suite.T(), v1.MovementEditable{
		Date:   types.NewDate(2024, time.January, 3),
		Kind:   models.Expense,
		Amount: decimal.NewFromInt(40),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/movements/export?fromDate=2024-01-01&untilDate=2024-01-07", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), `"movements_2024-01-01_to_2024-01-07.csv"`)
	assert.Contains(suite.T(), r.Header().Get("Content-Type"), "text/csv")

	body := r.Body.String()

	// Every field is quoted, also the ones that would not need it
	assert.True(suite.T(), strings.HasPrefix(body, `"Date","Kind","Amount","Source","Patient ID","Consultation ID","Note"`), "unexpected header line in %q", body)
	assert.Contains(suite.T(), body, `"He said ""ok"""`)
	assert.False(suite.T(), strings.HasSuffix(body, "\n"), "the file must not end with a trailing newline")

	// The escaping must survive a standard CSV reader
	records, err := csv.NewReader(strings.NewReader(body)).ReadAll()
	require.Nil(suite.T(), err)
	require.Len(suite.T(), records, 3)
	assert.Equal(suite.T(), `He said "ok"`, records[1][6])
	assert.Equal(suite.T(), []string{"2024-01-03", "EXPENSE", "40", "", "", "", ""}, records[2])
}

func (suite *TestSuiteStandard) TestExportWeeksCSV() {
	_ = createTestMovement(suite.T(), v1.MovementEditable{
		Date:   types.NewDate(2024, time.January, 1),
		Kind:   models.Income,
		Amount: decimal.NewFromInt(100),
	})
	_ = createTestMovement(suite.T(), v1.MovementEditable{
		Date:   types.NewDate(2024, time.January, 8),
		Kind:   models.Expense,
		Amount: decimal.NewFromInt(25),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/movements/export?report=weeks&fromDate=2024-01-01&untilDate=2024-01-14", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), `"weekly_summary_2024-01-01_to_2024-01-14.csv"`)

	records, err := csv.NewReader(strings.NewReader(r.Body.String())).ReadAll()
	require.Nil(suite.T(), err)
	require.Len(suite.T(), records, 3)
	assert.Equal(suite.T(), []string{"Week", "From", "To", "Income", "Expense", "Balance"}, records[0])
	assert.Equal(suite.T(), []string{"2024-W01", "2024-01-01", "2024-01-01", "100", "0", "100"}, records[1])
	assert.Equal(suite.T(), []string{"2024-W02", "2024-01-08", "2024-01-08", "0", "25", "-25"}, records[2])
}

func (suite *TestSuiteStandard) TestExportXLSX() {
	_ = createTestMovement(suite.T(), v1.MovementEditable{
		Date:   types.NewDate(2024, time.January, 1),
		Kind:   models.Income,
		Amount: decimal.NewFromInt(100),
		Note:   "card payment",
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/movements/export?format=xlsx&fromDate=2024-01-01&untilDate=2024-01-07", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), `"movements_2024-01-01_to_2024-01-07.xlsx"`)
	assert.Equal(suite.T(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", r.Header().Get("Content-Type"))

	workbook, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	require.Nil(suite.T(), err)
	defer workbook.Close()

	rows, err := workbook.GetRows(workbook.GetSheetName(0))
	require.Nil(suite.T(), err)
	require.Len(suite.T(), rows, 2)
	assert.Equal(suite.T(), "Date", rows[0][0])
	assert.Equal(suite.T(), "2024-01-01", rows[1][0])
	assert.Equal(suite.T(), "card payment", rows[1][6])
}

func (suite *TestSuiteStandard) TestExportInvalidParameters() {
	tests := []struct {
		name string
		url  string
	}{
		{"Unknown report", "http://example.com/v1/movements/export?report=months"},
		{"Unknown format", "http://example.com/v1/movements/export?format=pdf"},
		{"Inverted range", "http://example.com/v1/movements/export?fromDate=2024-01-07&untilDate=2024-01-01"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response httperror.Error
			test.DecodeResponse(t, &r, &response)
			assert.NotEmpty(t, response.Message)
		})
	}
}
