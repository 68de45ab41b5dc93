package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "repair_orders/internal/adapter/http/dto/response"
	"repair_orders/internal/usecase"
	"repair_orders/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PaymentHandler handles HTTP requests for instruction payments.

type PaymentHandler struct {
	usecase  usecase.IPaymentUseCase
	mockMode bool
}

// NewPaymentHandler: in mock mode an unreadable body is replaced by an empty
// payload instead of being rejected.
func NewPaymentHandler(uc usecase.IPaymentUseCase, mockMode bool) *PaymentHandler {
	return &PaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreatePaymentByInstructionID godoc
// @Summary      Pay a confirmed instruction
// @Description  The amount is the instruction's aggregate total; any transaction_amount in the payload is replaced.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        instruction_id  path      string                        true  "Instruction ID"
// @Param        body            body      request.PaymentCreateRequest  false "Mercado Pago payload"
// @Success      200             {object}  response.PaymentResponse
// @Failure      409             {object}  pkg.HTTPError
// @Router       /payments/{instruction_id} [post]
func (h *PaymentHandler) CreatePaymentByInstructionID(c *gin.Context) {
	instructionID := c.Param("instruction_id")
	log.Info().Str("instruction_id", instructionID).Msg("[payment][handler] create start")
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			log.Warn().Err(err).Str("instruction_id", instructionID).Msg("[payment][handler] payload invalid in mock mode; fallback to empty payload")
			mpPayload = json.RawMessage("{}")
		} else {
			log.Warn().Err(err).Str("instruction_id", instructionID).Msg("[payment][handler] invalid payload")
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateForInstruction(c.Request.Context(), instructionID, mpPayload)
	if err != nil {
		log.Warn().Err(err).Str("instruction_id", instructionID).Msg("[payment][handler] create failed")
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(created))
}

// GetPaymentByInstructionID godoc
// @Summary  Latest payment of an instruction
// @Tags     payments
// @Produce  json
// @Param    instruction_id  path      string  true  "Instruction ID"
// @Success  200             {object}  response.PaymentResponse
// @Failure  404             {object}  pkg.HTTPError
// @Router   /payments/{instruction_id} [get]
func (h *PaymentHandler) GetPaymentByInstructionID(c *gin.Context) {
	instructionID := c.Param("instruction_id")

	payments, err := h.usecase.ListByInstructionID(c.Request.Context(), instructionID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromPayment(latest))
}

// ListPaymentsByInstructionID godoc
// @Summary  Every payment attempt of an instruction
// @Tags     payments
// @Produce  json
// @Param    instruction_id  path   string  true  "Instruction ID"
// @Success  200             {array}  response.PaymentResponse
// @Router   /payments/{instruction_id}/history [get]
func (h *PaymentHandler) ListPaymentsByInstructionID(c *gin.Context) {
	payments, err := h.usecase.ListByInstructionID(c.Request.Context(), c.Param("instruction_id"))
	if err != nil {
		abortWith(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// GetPayment returns one payment; it must belong to the instruction in the path.
//
// @Summary  Get a payment
// @Tags     payments
// @Produce  json
// @Param    instruction_id  path  string  true  "Instruction ID"
// @Param    payment_id      path  string  true  "Payment ID"
// @Success  200  {object}  response.PaymentResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /payments/{instruction_id}/{payment_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err == nil && p.InstructionID != c.Param("instruction_id") {
		err = usecase.ErrPaymentNotFound
	}
	if err != nil {
		abortWith(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
