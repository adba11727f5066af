package v1

import (
	"github.com/AngelVm20/consultorio-sonrisas/internal/models"
	"github.com/AngelVm20/consultorio-sonrisas/internal/types"
	"github.com/shopspring/decimal"
)

type ConsultationEditable struct {
	PatientID uint64     `json:"patientId" example:"3"`    // ID of the patient this visit belongs to
	Date      types.Date `json:"date" example:"2024-01-03"` // Day of the visit. Defaults to today.
	Reason    string     `json:"reason" example:"Toothache" default:""`
	Procedure string     `json:"procedure" example:"Root canal" default:""`

	// Income the visit generated. When positive, a ledger entry is kept in
	// sync with it automatically.
	Income decimal.Decimal `json:"income" example:"80" minimum:"0" default:"0"`

	Detail string `json:"detail" example:"Follow-up in two weeks" default:""`
}

// model returns the database resource for the API representation of the
// editable fields
func (editable ConsultationEditable) model() models.Consultation {
	return models.Consultation{
		PatientID: editable.PatientID,
		Date:      editable.Date,
		Reason:    editable.Reason,
		Procedure: editable.Procedure,
		Income:    editable.Income,
		Detail:    editable.Detail,
	}
}

// Consultation is the representation of a Consultation in API v1.
type Consultation struct {
	models.DefaultModel
	ConsultationEditable
}

// newConsultation returns the API v1 representation of the resource
func newConsultation(model models.Consultation) Consultation {
	return Consultation{
		DefaultModel: model.DefaultModel,
		ConsultationEditable: ConsultationEditable{
			PatientID: model.PatientID,
			Date:      model.Date,
			Reason:    model.Reason,
			Procedure: model.Procedure,
			Income:    model.Income,
			Detail:    model.Detail,
		},
	}
}

type ConsultationResponse struct {
	Error *string       `json:"error" example:"there is no patient matching your query"` // The error, if any occurred
	Data  *Consultation `json:"data"`                                                    // The Consultation data, if the request was successful
}

type ConsultationListResponse struct {
	Data  []Consultation `json:"data"`                                        // List of consultations
	Error *string        `json:"error" example:"the patient parameter must be set"` // The error, if any occurred
}

type ConsultationQueryFilter struct {
	PatientID uint64 `form:"patient"` // ID of the patient to list the history for
}
