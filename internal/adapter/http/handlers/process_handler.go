package handlers

import (
	"net/http"

	request "repair_orders/internal/adapter/http/dto/request"
	response "repair_orders/internal/adapter/http/dto/response"
	"repair_orders/internal/domain/entities"
	"repair_orders/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProcessHandler struct {
	usecase usecase.IProcessUseCase
}

func NewProcessHandler(uc usecase.IProcessUseCase) *ProcessHandler {
	return &ProcessHandler{usecase: uc}
}

// CreateProcess godoc
// @Summary      Add a process to an instruction
// @Tags         processes
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Instruction ID"
// @Param        body  body      request.ProcessRequest  true  "Process"
// @Success      201   {object}  response.ProcessResponse
// @Router       /instructions/{id}/processes [post]
func (h *ProcessHandler) CreateProcess(c *gin.Context) {
	var payload request.ProcessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.usecase.CreateProcess(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		abortWith(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProcess(created))
}

// ListProcesses returns an empty list for an unknown instruction.
//
// @Summary  List the processes of an instruction
// @Tags     processes
// @Produce  json
// @Param    id      path   string  true   "Instruction ID"
// @Param    name    query  string  false  "Name contains"
// @Param    worker  query  string  false  "Worker contains"
// @Param    status  query  string  false  "Exact status"
// @Success  200     {array}  response.ProcessResponse
// @Router   /instructions/{id}/processes [get]
func (h *ProcessHandler) ListProcesses(c *gin.Context) {
	filter := usecase.ProcessFilter{
		Name:   c.Query("name"),
		Worker: c.Query("worker"),
		Status: entities.ProcessStatus(c.Query("status")),
	}
	list, err := h.usecase.ListProcessesByInstruction(c.Request.Context(), c.Param("id"), filter)
	if err != nil {
		abortWith(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProcesses(list))
}

// @Summary  Update a process
// @Tags     processes
// @Accept   json
// @Produce  json
// @Param    id    path  string                       true  "Process ID"
// @Param    body  body  request.ProcessPatchRequest  true  "Fields to change"
// @Success  200   {object}  response.ProcessResponse
// @Router   /processes/{id} [patch]
func (h *ProcessHandler) UpdateProcess(c *gin.Context) {
	var payload request.ProcessPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, err)
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.usecase.UpdateProcess(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		abortWith(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProcess(updated))
}

// @Summary  Delete a process and its tasks
// @Tags     processes
// @Param    id  path  string  true  "Process ID"
// @Success  204
// @Router   /processes/{id} [delete]
func (h *ProcessHandler) DeleteProcess(c *gin.Context) {
	if err := h.usecase.DeleteProcess(c.Request.Context(), c.Param("id")); err != nil {
		abortWith(c, mapEngineError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
