package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/payment"
)

type fakeCreator struct {
	got  payment.Request
	resp *payment.Response
	err  error
}

func (f *fakeCreator) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway("")
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	fake := &fakeCreator{resp: &payment.Response{ID: 42, Status: "approved"}}
	g := &MercadoPagoGateway{client: fake}

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":125.5,"external_reference":"ins-1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "42" || status != "approved" {
		t.Fatalf("unexpected result id=%s status=%s", id, status)
	}
	if fake.got.TransactionAmount != 125.5 || fake.got.ExternalReference != "ins-1" {
		t.Fatalf("request not forwarded: %+v", fake.got)
	}
	if !json.Valid(raw) {
		t.Fatalf("expected provider response json, got %s", string(raw))
	}
}

func TestMercadoPagoGateway_CreatePaymentErrors(t *testing.T) {
	tests := []struct {
		name    string
		g       *MercadoPagoGateway
		payload string
		wantErr error
	}{
		{name: "nil gateway", g: nil, payload: `{}`, wantErr: ErrMercadoPagoGatewayNotConfigured},
		{name: "bad payload", g: &MercadoPagoGateway{client: &fakeCreator{}}, payload: `{"transaction_amount":"x"}`},
		{name: "provider error", g: &MercadoPagoGateway{client: &fakeCreator{err: errors.New("401 unauthorized")}}, payload: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := tt.g.CreatePayment(context.Background(), json.RawMessage(tt.payload))
			if err == nil {
				t.Fatalf("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
