package v1

import (
	"errors"
	"net/http"

	"github.com/AngelVm20/consultorio-sonrisas/internal/models"
)

// status returns the appropriate HTTP status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Movement errors
var (
	errAmountNotPositive    = errors.New("the amount of a cash movement must be positive")
	errMovementKindInvalid  = errors.New("the kind of a cash movement must be INCOME or EXPENSE")
	errDeleteNeedsForce     = errors.New("this movement is derived from a consultation and will be recreated on its next save. Repeat the request with force=true to delete it anyway")
	errReportInvalid        = errors.New("the report parameter must be movements or weeks")
	errExportFormatInvalid  = errors.New("the format parameter must be csv or xlsx")
	errDateRangeInverted    = errors.New("fromDate must not be after untilDate")
	errPatientParamRequired = errors.New("the patient parameter must be set")
)

// Photo errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)
