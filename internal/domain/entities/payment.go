package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// Payment settles a confirmed Instruction for its aggregate TotalAmount.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (instruction_id-index): instruction_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the provider response (JSON) for reconciliation audits.
//   - MPPayload is the parsed representation of the same body.

type Payment struct {
	ID            string        `json:"id"`
	InstructionID string        `json:"instruction_id"`
	Amount        float64       `json:"amount"`
	Date          time.Time     `json:"date"`
	Status        PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
