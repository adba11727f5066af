package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrAmountNegative is returned when a cash movement with a negative
	// amount reaches the store. The API boundary is stricter and also
	// rejects zero, see the controllers package.
	ErrAmountNegative = errors.New("the amount of a cash movement must not be negative")

	// ErrMovementKindInvalid is returned for kinds other than INCOME and EXPENSE.
	ErrMovementKindInvalid = errors.New("the kind of a cash movement must be INCOME or EXPENSE")

	// ErrMovementSourceInvalid is returned when the source tag is neither
	// empty nor CONSULTATION.
	ErrMovementSourceInvalid = errors.New("the source of a cash movement must be empty or CONSULTATION")

	// ErrConsultationRefMissing is returned for consultation-derived
	// movements without an owning consultation.
	ErrConsultationRefMissing = errors.New("a cash movement with source CONSULTATION must reference a consultation")

	ErrPatientNameMissing = errors.New("patients must have a first and a last name")

	ErrTooManyPhotos = errors.New("a consultation can have at most 10 photos")
)
