package v1

import (
	"github.com/AngelVm20/consultorio-sonrisas/internal/models"
	"github.com/AngelVm20/consultorio-sonrisas/internal/types"
)

type PatientEditable struct {
	FirstName string      `json:"firstName" example:"María José"`
	LastName  string      `json:"lastName" example:"Vele Macas"`
	Document  string      `json:"document" example:"0104567890" default:""` // National ID card number
	Phone     string      `json:"phone" example:"+593 99 123 4567" default:""`
	BirthDate *types.Date `json:"birthDate" example:"1991-05-12"`
	Address   string      `json:"address" example:"Av. Loja y Remigio Crespo" default:""`
}

// model returns the database resource for the API representation of the
// editable fields
func (editable PatientEditable) model() models.Patient {
	return models.Patient{
		FirstName: editable.FirstName,
		LastName:  editable.LastName,
		Document:  editable.Document,
		Phone:     editable.Phone,
		BirthDate: editable.BirthDate,
		Address:   editable.Address,
	}
}

// Patient is the representation of a Patient in API v1.
type Patient struct {
	models.DefaultModel
	PatientEditable
}

// newPatient returns the API v1 representation of the resource
func newPatient(model models.Patient) Patient {
	return Patient{
		DefaultModel: model.DefaultModel,
		PatientEditable: PatientEditable{
			FirstName: model.FirstName,
			LastName:  model.LastName,
			Document:  model.Document,
			Phone:     model.Phone,
			BirthDate: model.BirthDate,
			Address:   model.Address,
		},
	}
}

type PatientResponse struct {
	Error *string  `json:"error" example:"patients must have a first and a last name"` // The error, if any occurred
	Data  *Patient `json:"data"`                                                       // The Patient data, if the request was successful
}

type PatientListResponse struct {
	Data  []Patient `json:"data"`                                                       // List of patients
	Error *string   `json:"error" example:"patients must have a first and a last name"` // The error, if any occurred
}

type PatientQueryFilter struct {
	Search string `form:"q"` // Glob-style search over names and document number
}
