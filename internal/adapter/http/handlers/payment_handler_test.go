package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"repair_orders/internal/adapter/http/handlers/mocks"
	"repair_orders/internal/domain/entities"
	"repair_orders/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestPaymentHandler_CreatePaymentByInstructionID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, false)

		r := gin.New()
		r.POST("/v1/payments/:instruction_id", h.CreatePaymentByInstructionID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/ins-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, true)

		r := gin.New()
		r.POST("/v1/payments/:instruction_id", h.CreatePaymentByInstructionID)

		uc.EXPECT().CreateForInstruction(gomock.Any(), "ins-1", json.RawMessage("{}")).
			Return(entities.Payment{ID: "pay-1", InstructionID: "ins-1", Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/ins-1", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, false)

		r := gin.New()
		r.POST("/v1/payments/:instruction_id", h.CreatePaymentByInstructionID)

		uc.EXPECT().CreateForInstruction(gomock.Any(), "ins-1", gomock.Any()).Return(entities.Payment{}, usecase.ErrInstructionNotConfirmed)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/ins-1", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, false)

		r := gin.New()
		r.POST("/v1/payments/:instruction_id", h.CreatePaymentByInstructionID)

		now := time.Now().UTC()
		uc.EXPECT().CreateForInstruction(gomock.Any(), "ins-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)).
			Return(entities.Payment{ID: "pay-1", InstructionID: "ins-1", Amount: 1250, Date: now, Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/ins-1", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["amount"] != 1250.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_GetPaymentByInstructionID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, false)

		r := gin.New()
		r.GET("/v1/payments/:instruction_id", h.GetPaymentByInstructionID)

		uc.EXPECT().ListByInstructionID(gomock.Any(), "ins-1").Return(nil, usecase.ErrInvalidPaymentInstructionID)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/ins-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, false)

		r := gin.New()
		r.GET("/v1/payments/:instruction_id", h.GetPaymentByInstructionID)

		uc.EXPECT().ListByInstructionID(gomock.Any(), "ins-1").Return([]entities.Payment{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/ins-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns latest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, false)

		r := gin.New()
		r.GET("/v1/payments/:instruction_id", h.GetPaymentByInstructionID)

		old := entities.Payment{ID: "old", InstructionID: "ins-1", Date: time.Now().Add(-time.Hour), Status: entities.PaymentStatusDenied}
		latest := entities.Payment{ID: "latest", InstructionID: "ins-1", Date: time.Now(), Status: entities.PaymentStatusApproved}
		uc.EXPECT().ListByInstructionID(gomock.Any(), "ins-1").Return([]entities.Payment{latest, old}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/ins-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "latest" {
			t.Fatalf("expected latest payment, got body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_ListAndGetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc, false)

	r := gin.New()
	r.GET("/v1/payments/:instruction_id/history", h.ListPaymentsByInstructionID)
	r.GET("/v1/payments/:instruction_id/:payment_id", h.GetPayment)

	uc.EXPECT().ListByInstructionID(gomock.Any(), "ins-1").Return([]entities.Payment{{ID: "a", InstructionID: "ins-1"}, {ID: "b", InstructionID: "ins-1"}}, nil)
	uc.EXPECT().GetByID(gomock.Any(), "a").Return(entities.Payment{ID: "a", InstructionID: "ins-1"}, nil).Times(2)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/ins-1/history", nil))
	var list []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if w.Code != http.StatusOK || len(list) != 2 {
		t.Fatalf("expected two payments, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/ins-1/a", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/ins-2/a", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("payment of another instruction must be 404, got %d", w.Code)
	}
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readMPPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readMPPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readMPPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readMPPayload(makeCtx(`{"mp_payload":null}`)); err == nil {
		t.Fatalf("expected mp_payload empty error")
	}

	payload, err = readMPPayload(makeCtx(`{"mp_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", payload, err)
	}

	payload, err = readMPPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPaymentInstructionID, http.StatusBadRequest},
		{usecase.ErrInvalidMPPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{entities.ErrNotFound, http.StatusNotFound},
		{usecase.ErrInstructionNotConfirmed, http.StatusConflict},
		{usecase.ErrNothingToPay, http.StatusUnprocessableEntity},
		{usecase.ErrAlreadyPaid, http.StatusConflict},
		{usecase.ErrPaymentNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
