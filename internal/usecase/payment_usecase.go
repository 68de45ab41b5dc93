package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"repair_orders/internal/domain/entities"
	"repair_orders/internal/usecase/interfaces"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPaymentInstructionID    = errors.New("invalid instruction_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrInstructionNotConfirmed        = errors.New("instruction not completed and confirmed")
	ErrNothingToPay                   = errors.New("instruction total amount is zero")
	ErrAlreadyPaid                    = errors.New("instruction already has an approved payment")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions configures how payments reach the provider.
//
// With Mock set the gateway is never called and every payment is approved
// locally. The sandbox fields only apply when AccessToken is a TEST- token.
type PaymentOptions struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (o PaymentOptions) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(o.AccessToken), "TEST-")
}

// IPaymentUseCase settles confirmed instructions.
//
//   - Only a completed and confirmed instruction can be paid, and only until
//     one of its payments is approved.
//   - The amount is always the instruction's aggregate totalAmount; the caller's
//     payload cannot override it.
type IPaymentUseCase interface {
	CreateForInstruction(ctx context.Context, instructionID string, mpPayload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByInstructionID(ctx context.Context, instructionID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo         interfaces.IPaymentRepository
	instructions IInstructionUseCase
	gateway      interfaces.IPaymentGateway
	opts         PaymentOptions
	now          func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, instructions IInstructionUseCase, gateway interfaces.IPaymentGateway, opts PaymentOptions) *PaymentUseCase {
	return &PaymentUseCase{
		repo:         repo,
		instructions: instructions,
		gateway:      gateway,
		opts:         opts,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentUseCase) CreateForInstruction(ctx context.Context, instructionID string, mpPayload json.RawMessage) (entities.Payment, error) {
	log.Info().Str("instruction_id", instructionID).Int("payload_len", len(mpPayload)).Msg("[payment][usecase] create start")
	instructionID = strings.TrimSpace(instructionID)
	if instructionID == "" {
		return entities.Payment{}, ErrInvalidPaymentInstructionID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.Mock {
			log.Warn().Str("instruction_id", instructionID).Msg("[payment][usecase] invalid payload")
			return entities.Payment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if !u.opts.Mock && u.gateway == nil {
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	view, err := u.instructions.GetInstructionWithAggregate(ctx, instructionID)
	if err != nil {
		log.Warn().Err(err).Str("instruction_id", instructionID).Msg("[payment][usecase] failed loading instruction")
		return entities.Payment{}, err
	}
	i := view.Instruction
	if i.Status != entities.InstructionStatusCompleted || !i.Confirmed {
		log.Warn().
			Str("instruction_id", instructionID).
			Str("status", string(i.Status)).
			Bool("confirmed", i.Confirmed).
			Msg("[payment][usecase] instruction not payable")
		return entities.Payment{}, ErrInstructionNotConfirmed
	}
	amount := view.Aggregate.TotalAmount
	if amount <= 0 {
		return entities.Payment{}, ErrNothingToPay
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !u.opts.Mock && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Warn().Str("instruction_id", instructionID).Msg("[payment][usecase] missing payment_method_id")
			return entities.Payment{}, ErrInvalidMPPayload
		}
		if !u.opts.Mock {
			u.normalizeSandboxPayer(reqMap)
			u.ensurePayerDefaults(reqMap)
			if !hasPayer(reqMap) {
				log.Warn().Str("instruction_id", instructionID).Msg("[payment][usecase] missing payer")
				return entities.Payment{}, ErrInvalidMPPayload
			}
		}
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = instructionID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Instruction %s %s", i.OrderNumber, i.Name)
		}
		// The aggregate is the only source of the amount.
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else {
		log.Warn().Err(err).Str("instruction_id", instructionID).Msg("[payment][usecase] payload is not an object; sent as-is")
	}

	history, err := u.repo.ListByInstructionID(ctx, instructionID)
	if err != nil {
		log.Error().Err(err).Str("instruction_id", instructionID).Msg("[payment][usecase] payment history lookup failed")
		return entities.Payment{}, err
	}
	for _, prev := range history {
		if prev.Status == entities.PaymentStatusApproved {
			log.Warn().Str("instruction_id", instructionID).Str("payment_id", prev.ID).Msg("[payment][usecase] instruction already paid")
			return entities.Payment{}, ErrAlreadyPaid
		}
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if u.opts.Mock {
		providerPaymentID, providerStatus, providerResp, err = u.mockPayment(instructionID, amount, mpPayload)
		if err != nil {
			return entities.Payment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Error().Err(err).Str("instruction_id", instructionID).Msg("[payment][usecase] payment gateway failed")
			return entities.Payment{}, classifyGatewayError(err)
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn().Err(err).Str("instruction_id", instructionID).Msg("[payment][usecase] provider response unmarshal failed")
	}

	p := entities.Payment{
		ID:            providerPaymentID,
		InstructionID: instructionID,
		Amount:        amount,
		Date:          u.now(),
		Status:        mapProviderStatus(providerStatus),
		MPPayloadRaw:  providerResp,
		MPPayload:     parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error().Err(err).Str("instruction_id", instructionID).Str("payment_id", p.ID).Msg("[payment][usecase] payment repository create failed")
		return entities.Payment{}, err
	}
	log.Info().
		Str("instruction_id", instructionID).
		Str("payment_id", created.ID).
		Str("status", string(created.Status)).
		Float64("amount", created.Amount).
		Msg("[payment][usecase] create success")
	return created, nil
}

func (u *PaymentUseCase) mockPayment(instructionID string, amount float64, payload json.RawMessage) (string, string, json.RawMessage, error) {
	log.Info().Str("instruction_id", instructionID).Msg("[payment][usecase] mock mode enabled; skipping external payment gateway")
	now := u.now()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp := map[string]any{}
	_ = json.Unmarshal(payload, &resp)
	if resp == nil {
		resp = map[string]any{}
	}
	stamp := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = stamp
	resp["date_approved"] = stamp
	resp["external_reference"] = instructionID
	resp["transaction_amount"] = amount
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func mapProviderStatus(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found"), strings.Contains(msg, `"code":2002`):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved"), strings.Contains(msg, `"code":2034`):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, `"error":"unauthorized"`), strings.Contains(msg, `"status":401`):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, `"error":"bad_request"`), strings.Contains(msg, `"status":400`):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *PaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	// Sandbox accepts either payer.id or payer.email; fill email only when both are missing.
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.opts.sandbox() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email.
func (u *PaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.opts.sandbox() {
		return
	}
	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	log.Debug().Msg("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, errors.New("invalid payment id")
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByInstructionID(ctx context.Context, instructionID string) ([]entities.Payment, error) {
	instructionID = strings.TrimSpace(instructionID)
	if instructionID == "" {
		return nil, ErrInvalidPaymentInstructionID
	}
	return u.repo.ListByInstructionID(ctx, instructionID)
}
