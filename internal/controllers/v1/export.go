package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/AngelVm20/consultorio-sonrisas/internal/httperror"
	"github.com/AngelVm20/consultorio-sonrisas/internal/httputil"
	"github.com/AngelVm20/consultorio-sonrisas/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type ExportQuery struct {
	DateRangeQuery
	Report string `form:"report" example:"movements"` // Which report to download: movements or weeks. Defaults to movements.
	Format string `form:"format" example:"csv"`       // File format: csv or xlsx. Defaults to csv.
}

var movementExportHeader = []string{"Date", "Kind", "Amount", "Source", "Patient ID", "Consultation ID", "Note"}

var weekExportHeader = []string{"Week", "From", "To", "Income", "Expense", "Balance"}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Movements
// @Success		204
// @Router			/v1/movements/export [options]
func OptionsMovementExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Download report
// @Description	Downloads the movement list or the weekly rollup of a date range as a CSV or XLSX file
// @Tags			Movements
// @Produce		text/csv
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		400	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			fromDate	query	string	false	"First day of the range, inclusive. Format: YYYY-MM-DD"
// @Param			untilDate	query	string	false	"Last day of the range, inclusive. Format: YYYY-MM-DD"
// @Param			report		query	string	false	"movements or weeks. Defaults to movements."
// @Param			format		query	string	false	"csv or xlsx. Defaults to csv."
// @Router			/v1/movements/export [get]
func GetMovementExport(c *gin.Context) {
	var query ExportQuery
	if err := c.Bind(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	from, until, err := query.dates()
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	var name string
	var header []string
	var rows [][]string

	switch query.Report {
	case "", "movements":
		movements, err := models.CashMovementsInRange(models.DB, from, until)
		if err != nil {
			c.JSON(status(err), httperror.New(err))
			return
		}

		name = "movements"
		header = movementExportHeader
		rows = movementRows(movements)

	case "weeks":
		summaries, err := models.WeeklySummaries(models.DB, from, until)
		if err != nil {
			c.JSON(status(err), httperror.New(err))
			return
		}

		name = "weekly_summary"
		header = weekExportHeader
		rows = weekRows(summaries)

	default:
		c.JSON(http.StatusBadRequest, httperror.New(errReportInvalid))
		return
	}

	// The filename carries the active range so that downloads for
	// different ranges do not overwrite each other
	filename := fmt.Sprintf("%s_%s_to_%s", name, from, until)

	switch query.Format {
	case "", "csv":
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".csv"))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(writeCSV(header, rows)))

	case "xlsx":
		content, err := writeXLSX(header, rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, httperror.New(err))
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".xlsx"))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)

	default:
		c.JSON(http.StatusBadRequest, httperror.New(errExportFormatInvalid))
	}
}

func movementRows(movements []models.CashMovement) [][]string {
	rows := make([][]string, 0, len(movements))
	for _, m := range movements {
		rows = append(rows, []string{
			m.Date.String(),
			string(m.Kind),
			m.Amount.String(),
			string(m.Source),
			formatRef(m.PatientID),
			formatRef(m.ConsultationID),
			m.Note,
		})
	}

	return rows
}

func weekRows(summaries []models.WeeklySummary) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Week.String(),
			s.From.String(),
			s.To.String(),
			s.Income.String(),
			s.Expense.String(),
			s.Balance.String(),
		})
	}

	return rows
}

func formatRef(ref *uint64) string {
	if ref == nil {
		return ""
	}

	return strconv.FormatUint(*ref, 10)
}

// writeCSV serializes header and rows with every field quoted and internal
// quotes doubled, matching the files the desktop app has always produced.
// encoding/csv only quotes fields that need it, which would change the
// output byte-for-byte.
func writeCSV(header []string, rows [][]string) string {
	var b strings.Builder

	writeRow := func(fields []string) {
		for i, field := range fields {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(`"` + strings.ReplaceAll(field, `"`, `""`) + `"`)
		}
	}

	writeRow(header)
	for _, row := range rows {
		b.WriteString("\n")
		writeRow(row)
	}

	return b.String()
}

// writeXLSX serializes header and rows into a single-sheet XLSX workbook.
func writeXLSX(header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &cells); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, field := range row {
			cells[j] = field
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, err
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}
