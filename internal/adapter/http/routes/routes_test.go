package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"repair_orders/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	t      *testing.T
	router *gin.Engine
}

func (c client) do(method, path, body string) (int, map[string]any) {
	c.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func TestRouter_WorkOrderLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := NewRouter(context.Background(), &config.Config{StoreDriver: config.StoreMemory, PaymentGatewayMock: true})
	require.NoError(t, err)
	c := client{t: t, router: router}

	code, _ := c.do(http.MethodGet, "/v1/ping", "")
	assert.Equal(t, http.StatusOK, code)

	code, ins := c.do(http.MethodPost, "/v1/instructions", `{"name":"Basement leak","orderNumber":"2024-017","orderDate":"2024-05-02"}`)
	require.Equal(t, http.StatusCreated, code)
	id := ins["id"].(string)
	assert.Equal(t, "received", ins["status"])

	code, proc := c.do(http.MethodPost, "/v1/instructions/"+id+"/processes", `{"name":"Waterproofing"}`)
	require.Equal(t, http.StatusCreated, code)
	pid := proc["id"].(string)

	code, task := c.do(http.MethodPost, "/v1/processes/"+pid+"/tasks", `{"name":"Primer","count":2,"materialCost":3,"laborCost":2}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, 5.0, task["totalCost"])
	assert.Equal(t, 10.0, task["totalPrice"])
	taskID := task["id"].(string)

	code, view := c.do(http.MethodGet, "/v1/instructions/"+id, "")
	require.Equal(t, http.StatusOK, code)
	agg := view["aggregate"].(map[string]any)
	assert.Equal(t, 10.0, agg["totalAmount"])
	assert.Equal(t, 6.0, agg["materialAmount"])

	code, body := c.do(http.MethodPost, "/v1/payments/"+id, `{}`)
	assert.Equal(t, http.StatusConflict, code, "an unconfirmed instruction cannot be paid")
	assert.Equal(t, "INSTRUCTION_NOT_CONFIRMED", body["code"])

	code, _ = c.do(http.MethodPost, "/v1/instructions/"+id+"/close", "")
	assert.Equal(t, http.StatusConflict, code, "close is only legal from in_approval")

	code, _ = c.do(http.MethodPost, "/v1/instructions/"+id+"/status", `{"status":"in_approval"}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = c.do(http.MethodPost, "/v1/instructions/"+id+"/close", "")
	require.Equal(t, http.StatusOK, code)

	code, body = c.do(http.MethodPatch, "/v1/tasks/"+taskID, `{"count":3}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "NOT_EDITABLE", body["code"])

	code, confirmed := c.do(http.MethodPost, "/v1/instructions/"+id+"/confirm", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, confirmed["confirmed"])

	code, paid := c.do(http.MethodPost, "/v1/payments/"+id, `{"mp_payload":{"payment_method_id":"pix"}}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 10.0, paid["amount"])
	assert.Equal(t, "approved", paid["status"])

	code, latest := c.do(http.MethodGet, "/v1/payments/"+id, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, paid["payment_id"], latest["payment_id"])

	code, body = c.do(http.MethodPost, "/v1/payments/"+id, `{}`)
	assert.Equal(t, http.StatusConflict, code, "an instruction is charged once")
	assert.Equal(t, "ALREADY_PAID", body["code"])

	code, ended := c.do(http.MethodPost, "/v1/instructions/"+id+"/end", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ended", ended["status"])

	code, _ = c.do(http.MethodDelete, "/v1/instructions/"+id, "")
	assert.Equal(t, http.StatusConflict, code, "an ended instruction is locked")
}

func TestRouter_IngestAndCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := NewRouter(context.Background(), &config.Config{StoreDriver: config.StoreMemory})
	require.NoError(t, err)
	c := client{t: t, router: router}

	code, res := c.do(http.MethodPost, "/v1/instructions/ingest", `{"rows":[{"name":"A"},{"name":"  "},{"name":"C","orderDate":"bad"}]}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1.0, res["succeeded"])
	assert.Equal(t, 2.0, res["failed"])

	code, _ = c.do(http.MethodGet, "/v1/catalog/unknown", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, body := c.do(http.MethodPost, "/v1/payments/whatever", `{"payment_method_id":"pix"}`)
	assert.Equal(t, http.StatusServiceUnavailable, code, "no gateway and no mock mode")
	assert.Equal(t, "PAYMENT_PROVIDER_UNAVAILABLE", body["code"])
}
