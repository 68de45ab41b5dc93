package response

import (
	"time"

	"repair_orders/internal/domain/entities"
)

type PaymentResponse struct {
	PaymentID     string    `json:"payment_id"`
	ID            string    `json:"id"`
	InstructionID string    `json:"instruction_id"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"payment_date"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.ID,
		ID:            p.ID,
		InstructionID: p.InstructionID,
		Amount:        p.Amount,
		PaymentDate:   p.Date,
		Date:          p.Date,
		Status:        string(p.Status),
		MPPayloadRaw:  string(p.MPPayloadRaw),
		MPPayload:     p.MPPayload,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}
