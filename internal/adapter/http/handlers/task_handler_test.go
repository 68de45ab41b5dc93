package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"repair_orders/internal/adapter/http/handlers/mocks"
	"repair_orders/internal/domain/entities"
	"repair_orders/internal/usecase"
	mock_interfaces "repair_orders/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTaskRouter(t *testing.T) (*gin.Engine, *mocks.MockITaskUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	uc := mocks.NewMockITaskUseCase(gomock.NewController(t))
	h := NewTaskHandler(uc)

	r := gin.New()
	r.POST("/v1/processes/:id/tasks", h.CreateTask)
	r.GET("/v1/processes/:id/tasks", h.ListTasksByProcess)
	r.GET("/v1/instructions/:id/tasks", h.ListTasksByInstruction)
	r.PATCH("/v1/tasks/:id", h.UpdateTask)
	r.DELETE("/v1/tasks/:id", h.DeleteTask)
	return r, uc
}

func TestTaskHandler_CreateTask(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newTaskRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/processes/p1/tasks", `{"count":"x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid quantity", func(t *testing.T) {
		r, uc := newTaskRouter(t)
		uc.EXPECT().CreateTask(gomock.Any(), "p1", gomock.Any()).
			Return(entities.Task{}, fmt.Errorf("create task: count: %w", entities.ErrInvalidQuantity))

		w := doJSON(r, http.MethodPost, "/v1/processes/p1/tasks", `{"name":"Primer","count":-1}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("catalog fields pass through", func(t *testing.T) {
		r, uc := newTaskRouter(t)
		uc.EXPECT().CreateTask(gomock.Any(), "p1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, in usecase.TaskInput) (entities.Task, error) {
				if in.CatalogItemID != "membrane" || in.Count != 12.5 || in.LaborCost == nil || *in.LaborCost != 4 || in.MaterialCost != nil {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Task{ID: "t1", ProcessID: "p1", CatalogItemID: "membrane", Count: 12.5, TotalCost: 10, TotalPrice: 125}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/processes/p1/tasks", `{"catalogItemId":"membrane","count":12.5,"laborCost":4}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["totalPrice"] != 125.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestTaskHandler_ListUpdateDelete(t *testing.T) {
	t.Run("by process", func(t *testing.T) {
		r, uc := newTaskRouter(t)
		uc.EXPECT().ListTasksByProcess(gomock.Any(), "ghost").Return(nil, nil)

		w := doJSON(r, http.MethodGet, "/v1/processes/ghost/tasks", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty list, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("by instruction", func(t *testing.T) {
		r, uc := newTaskRouter(t)
		uc.EXPECT().ListTasksByInstruction(gomock.Any(), "ins-1").Return([]entities.Task{{ID: "t1"}, {ID: "t2"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/instructions/ins-1/tasks", "")
		var list []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &list)
		if w.Code != http.StatusOK || len(list) != 2 {
			t.Fatalf("expected two tasks, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("update", func(t *testing.T) {
		r, uc := newTaskRouter(t)
		uc.EXPECT().UpdateTask(gomock.Any(), "t1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, p usecase.TaskPatch) (entities.Task, error) {
				if p.Count == nil || *p.Count != 2 {
					t.Fatalf("unexpected patch: %+v", p)
				}
				return entities.Task{ID: "t1", Count: 2}, nil
			})

		w := doJSON(r, http.MethodPatch, "/v1/tasks/t1", `{"count":2}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete locked", func(t *testing.T) {
		r, uc := newTaskRouter(t)
		uc.EXPECT().DeleteTask(gomock.Any(), "t1").Return(fmt.Errorf("delete task t1: %w", entities.ErrNotEditable))

		w := doJSON(r, http.MethodDelete, "/v1/tasks/t1", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_GetItem(t *testing.T) {
	gin.SetMode(gin.TestMode)
	catalog := mock_interfaces.NewMockICatalog(gomock.NewController(t))
	h := NewCatalogHandler(catalog)

	r := gin.New()
	r.GET("/v1/catalog/:id", h.GetItem)

	catalog.EXPECT().GetItem(gomock.Any(), "membrane").
		Return(entities.CatalogItem{ID: "membrane", Name: "Membrane", Unit: "m2", MaterialCost: 6, LaborCost: 4, TotalCost: 10}, nil)
	catalog.EXPECT().GetItem(gomock.Any(), "nope").Return(entities.CatalogItem{}, nil)
	catalog.EXPECT().GetItem(gomock.Any(), "broken").Return(entities.CatalogItem{}, context.DeadlineExceeded)

	w := doJSON(r, http.MethodGet, "/v1/catalog/membrane", "")
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || body["materialCost"] != 6.0 {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}

	if w := doJSON(r, http.MethodGet, "/v1/catalog/nope", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/v1/catalog/broken", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	nilCatalog := gin.New()
	nilCatalog.GET("/v1/catalog/:id", NewCatalogHandler(nil).GetItem)
	if w := doJSON(nilCatalog, http.MethodGet, "/v1/catalog/membrane", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without a catalog, got %d", w.Code)
	}
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", Ping)
	w := doJSON(r, http.MethodGet, "/ping", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
