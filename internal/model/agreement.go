// internal/model/agreement.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Agreement is a named recurring commitment ("combinado"). ShortName is the
// stable key into DailyRecord.AgreementFulfillment; deleting an agreement
// never rewrites historical fulfillment entries.
type Agreement struct {
	AgreementID  uuid.UUID `json:"acordo_id"`
	Title        string    `json:"titulo"`
	ShortName    string    `json:"nome_curto"`
	MonitorDaily bool      `json:"monitorar_diario"`
	CreatedDate  string    `json:"criado_em"`
}

// CreateAgreementRequest is the creation DTO.
type CreateAgreementRequest struct {
	Title        string `json:"titulo" validate:"required,min=1"`
	ShortName    string `json:"nome_curto" validate:"required,min=1,max=40"`
	MonitorDaily bool   `json:"monitorar_diario"`
}

// FulfillmentRateResponse reports how often an agreement was kept. The
// denominator is every recorded day, not just days after the agreement was
// created, matching the historical behavior of the diary.
type FulfillmentRateResponse struct {
	ShortName         string  `json:"nome_curto"`
	FulfilledCount    int     `json:"dias_cumpridos"`
	TotalRecordedDays int     `json:"dias_registrados"`
	Rate              float64 `json:"taxa"`
}

// NewAgreement builds an agreement stamped with the given creation time.
func NewAgreement(req *CreateAgreementRequest, now time.Time) Agreement {
	return Agreement{
		AgreementID:  uuid.New(),
		Title:        req.Title,
		ShortName:    req.ShortName,
		MonitorDaily: req.MonitorDaily,
		CreatedDate:  now.Format(DateLayout),
	}
}
