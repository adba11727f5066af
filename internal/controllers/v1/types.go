package v1

import (
	"time"

	"github.com/AngelVm20/consultorio-sonrisas/internal/types"
)

type URIID struct {
	ID uint64 `uri:"id" binding:"required"` // ID of the resource
}

// DateRangeQuery is the date filter shared by the ledger list, summary and
// export endpoints.
type DateRangeQuery struct {
	FromDate  time.Time `form:"fromDate" time_format:"2006-01-02" time_utc:"1" example:"2024-01-01"`  // First day of the range, inclusive
	UntilDate time.Time `form:"untilDate" time_format:"2006-01-02" time_utc:"1" example:"2024-01-07"` // Last day of the range, inclusive
}

// dates returns the requested range. When one of the bounds is missing, it
// defaults to the current week, Monday through Sunday, which is what the UI
// shows when the ledger screen opens.
func (q DateRangeQuery) dates() (from, until types.Date, err error) {
	today := types.Today()

	from = today.MondayOf()
	if !q.FromDate.IsZero() {
		from = types.DateOf(q.FromDate)
	}

	until = today.SundayOf()
	if !q.UntilDate.IsZero() {
		until = types.DateOf(q.UntilDate)
	}

	if from.After(until) {
		return types.Date{}, types.Date{}, errDateRangeInverted
	}

	return from, until, nil
}
