package handlers

import (
	"net/http"

	request "repair_orders/internal/adapter/http/dto/request"
	response "repair_orders/internal/adapter/http/dto/response"
	"repair_orders/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	usecase usecase.ITaskUseCase
}

func NewTaskHandler(uc usecase.ITaskUseCase) *TaskHandler {
	return &TaskHandler{usecase: uc}
}

// CreateTask godoc
// @Summary      Add a priced task to a process
// @Description  With catalogItemId the catalog prices are copied; fields in the body override them.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Process ID"
// @Param        body  body      request.TaskRequest  true  "Task"
// @Success      201   {object}  response.TaskResponse
// @Failure      422   {object}  pkg.HTTPError
// @Router       /processes/{id}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var payload request.TaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.usecase.CreateTask(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWith(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTask(created))
}

// @Summary  List the tasks of a process
// @Tags     tasks
// @Produce  json
// @Param    id  path  string  true  "Process ID"
// @Success  200  {array}  response.TaskResponse
// @Router   /processes/{id}/tasks [get]
func (h *TaskHandler) ListTasksByProcess(c *gin.Context) {
	list, err := h.usecase.ListTasksByProcess(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTasks(list))
}

// @Summary  List every task of an instruction, grouped by process order
// @Tags     tasks
// @Produce  json
// @Param    id  path  string  true  "Instruction ID"
// @Success  200  {array}  response.TaskResponse
// @Router   /instructions/{id}/tasks [get]
func (h *TaskHandler) ListTasksByInstruction(c *gin.Context) {
	list, err := h.usecase.ListTasksByInstruction(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTasks(list))
}

// @Summary  Update a task
// @Tags     tasks
// @Accept   json
// @Produce  json
// @Param    id    path  string                    true  "Task ID"
// @Param    body  body  request.TaskPatchRequest  true  "Fields to change"
// @Success  200   {object}  response.TaskResponse
// @Router   /tasks/{id} [patch]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var payload request.TaskPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.usecase.UpdateTask(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		abortWith(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTask(updated))
}

// @Summary  Delete a task
// @Tags     tasks
// @Param    id  path  string  true  "Task ID"
// @Success  204
// @Router   /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.usecase.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		abortWith(c, mapEngineError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
