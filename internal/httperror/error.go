// Package httperror defines the error body returned by all API endpoints.
package httperror

type Error struct {
	Message string `json:"error" example:"the amount of a cash movement must be positive"`
}

func New(err error) Error {
	return Error{
		Message: err.Error(),
	}
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}
