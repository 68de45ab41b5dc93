package handlers

import (
	"errors"
	"net/http"

	"repair_orders/internal/domain/entities"
	"repair_orders/internal/usecase"
	"repair_orders/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// mapEngineError translates the engine error kinds. The engine message, which
// names the offending entity and field, is returned as details.
func mapEngineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	case errors.Is(err, entities.ErrNotEditable):
		return pkg.NewDomainError("NOT_EDITABLE", "Instruction is locked", err, http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Status change not allowed", err, http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidQuantity):
		return pkg.NewDomainError("INVALID_QUANTITY", "Invalid quantity", err, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", "Invalid input", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentInstructionID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainErrorSimple("INSTRUCTION_NOT_FOUND", "Instruction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInstructionNotConfirmed):
		return pkg.NewDomainErrorSimple("INSTRUCTION_NOT_CONFIRMED", "Instruction not completed and confirmed", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyPaid):
		return pkg.NewDomainErrorSimple("ALREADY_PAID", "Instruction already has an approved payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToPay):
		return pkg.NewDomainErrorSimple("NOTHING_TO_PAY", "Instruction total amount is zero", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func badRequest(c *gin.Context, err error) {
	abortWith(c, pkg.NewDomainError(errInvalidRequest.Code, errInvalidRequest.Message, err, errInvalidRequest.HTTPStatus))
}
