package models

import (
	"strings"

	"github.com/AngelVm20/consultorio-sonrisas/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Consultation represents one visit of a patient, including the income it
// generated for the clinic.
type Consultation struct {
	DefaultModel
	PatientID uint64 `gorm:"index"`
	Patient   Patient
	Date      types.Date
	Reason    string
	Procedure string
	Income    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Detail    string
}

func (c Consultation) Self() string {
	return "Consultation"
}

// BeforeSave trims whitespace and defaults the date to today.
func (c *Consultation) BeforeSave(_ *gorm.DB) (err error) {
	c.Reason = strings.TrimSpace(c.Reason)
	c.Procedure = strings.TrimSpace(c.Procedure)
	c.Detail = strings.TrimSpace(c.Detail)

	if c.Date.IsZero() {
		c.Date = types.Today()
	}

	return nil
}

// AfterSave keeps the ledger in sync with the consultation's income. Running
// as a gorm hook puts the reconciliation into the same transaction as the
// consultation write itself, so a failure rolls both back and the ledger can
// never drift from a saved consultation.
func (c *Consultation) AfterSave(tx *gorm.DB) (err error) {
	err = c.syncLedger(tx)
	if err != nil {
		// Reconciliation failures are not user input errors, make them
		// stand out in the log
		log.Error().Err(err).Uint64("consultation", c.ID).Msg("ledger reconciliation failed, rolling back consultation write")
	}

	return err
}

// BeforeDelete removes the consultation's derived ledger entries and its
// photo records. Photo files on disk are the caller's concern, the paths are
// still readable here until the transaction commits.
func (c *Consultation) BeforeDelete(tx *gorm.DB) (err error) {
	err = DeleteDerivedMovements(tx, c.ID)
	if err != nil {
		return err
	}

	return tx.Where("consultation_id = ?", c.ID).Delete(&ConsultationPhoto{}).Error
}

// syncLedger recreates the consultation's derived cash movement.
//
// Existing movements referencing the consultation are always deleted first,
// also when more than one exists. Recreating instead of patching means the
// derived entry's amount and date cannot drift from the consultation, at the
// cost of a new movement ID on every edit. Nothing references that ID across
// edits.
func (c *Consultation) syncLedger(tx *gorm.DB) error {
	err := DeleteDerivedMovements(tx, c.ID)
	if err != nil {
		return err
	}

	// Re-fetch the consultation. The caller may have saved a partial
	// struct, the row is the authoritative state.
	var current Consultation
	err = tx.First(&current, c.ID).Error
	if err != nil {
		return err
	}

	if !current.Income.IsPositive() {
		return nil
	}

	movement := CashMovement{
		Date:           current.Date,
		Kind:           Income,
		Amount:         current.Income,
		Source:         SourceConsultation,
		PatientID:      &current.PatientID,
		ConsultationID: &current.ID,
	}

	return tx.Create(&movement).Error
}

// DeleteDerivedMovements deletes all cash movements derived from a
// consultation. It is a no-op when there are none, so repeated calls are safe.
func DeleteDerivedMovements(db *gorm.DB, consultationID uint64) error {
	return db.Where("consultation_id = ?", consultationID).Delete(&CashMovement{}).Error
}
