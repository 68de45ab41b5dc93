package request

import "encoding/json"

// PaymentCreateRequest is the payload for the "create and process payment" route.
//
// `mp_payload` is forwarded to Mercado Pago as-is, except for the amount,
// which always comes from the instruction. A bare payload without the
// envelope is accepted too.

type PaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
