package handlers

import (
	"context"
	"net/http"
	"slices"

	request "repair_orders/internal/adapter/http/dto/request"
	response "repair_orders/internal/adapter/http/dto/response"
	"repair_orders/internal/domain/entities"
	"repair_orders/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// InstructionHandler serves the instruction store, its workflow transitions
// and the batch ingest.
type InstructionHandler struct {
	instructions usecase.IInstructionUseCase
	ingest       usecase.IIngestUseCase
}

func NewInstructionHandler(instructions usecase.IInstructionUseCase, ingest usecase.IIngestUseCase) *InstructionHandler {
	return &InstructionHandler{instructions: instructions, ingest: ingest}
}

// CreateInstruction godoc
// @Summary      Create an instruction
// @Tags         instructions
// @Accept       json
// @Produce      json
// @Param        body  body      request.InstructionRequest  true  "Instruction"
// @Success      201   {object}  response.InstructionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /instructions [post]
func (h *InstructionHandler) CreateInstruction(c *gin.Context) {
	var payload request.InstructionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		badRequest(c, err)
		return
	}

	created, err := h.instructions.CreateInstruction(c.Request.Context(), in)
	if err != nil {
		abortWith(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInstruction(created))
}

// ListInstructions godoc
// @Summary      List instructions with their cost rollups
// @Tags         instructions
// @Produce      json
// @Param        name     query     string  false  "Name contains"
// @Param        manager  query     string  false  "Manager contains"
// @Param        status   query     string  false  "Exact status"
// @Success      200      {array}   response.InstructionResponse
// @Router       /instructions [get]
func (h *InstructionHandler) ListInstructions(c *gin.Context) {
	filter := usecase.InstructionFilter{
		Name:    c.Query("name"),
		Manager: c.Query("manager"),
		Status:  entities.InstructionStatus(c.Query("status")),
	}
	list, err := h.instructions.ListInstructions(c.Request.Context(), filter)
	if err != nil {
		abortWith(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInstructionsWithAggregate(list))
}

// GetInstruction godoc
// @Summary      Get an instruction with its cost rollup
// @Tags         instructions
// @Produce      json
// @Param        id   path      string  true  "Instruction ID"
// @Success      200  {object}  response.InstructionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /instructions/{id} [get]
func (h *InstructionHandler) GetInstruction(c *gin.Context) {
	view, err := h.instructions.GetInstructionWithAggregate(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInstructionWithAggregate(view))
}

// UpdateInstruction godoc
// @Summary      Update instruction fields
// @Tags         instructions
// @Accept       json
// @Produce      json
// @Param        id    path      string                           true  "Instruction ID"
// @Param        body  body      request.InstructionPatchRequest  true  "Fields to change"
// @Success      200   {object}  response.InstructionResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /instructions/{id} [patch]
func (h *InstructionHandler) UpdateInstruction(c *gin.Context) {
	var payload request.InstructionPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, err)
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		badRequest(c, err)
		return
	}

	updated, err := h.instructions.UpdateInstruction(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		abortWith(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInstruction(updated))
}

// DeleteInstruction godoc
// @Summary      Delete an instruction and everything under it
// @Tags         instructions
// @Param        id   path  string  true  "Instruction ID"
// @Success      204
// @Failure      409  {object}  pkg.HTTPError
// @Router       /instructions/{id} [delete]
func (h *InstructionHandler) DeleteInstruction(c *gin.Context) {
	if err := h.instructions.DeleteInstruction(c.Request.Context(), c.Param("id")); err != nil {
		abortWith(c, mapEngineError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SetStatus godoc
// @Summary      Move an editable instruction between working states
// @Tags         instructions
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Instruction ID"
// @Param        body  body      request.StatusRequest  true  "Target status"
// @Success      200   {object}  response.InstructionResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /instructions/{id}/status [post]
func (h *InstructionHandler) SetStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.instructions.SetStatus(c.Request.Context(), c.Param("id"), payload.ToStatus())
	if err != nil {
		abortWith(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInstruction(updated))
}

// @Summary  Close an instruction (in_approval -> completed)
// @Tags     instructions
// @Param    id  path  string  true  "Instruction ID"
// @Success  200  {object}  response.InstructionResponse
// @Router   /instructions/{id}/close [post]
func (h *InstructionHandler) Close(c *gin.Context) {
	h.transition(c, "close", h.instructions.Close)
}

// @Summary  Confirm a completed instruction for billing
// @Tags     instructions
// @Param    id  path  string  true  "Instruction ID"
// @Success  200  {object}  response.InstructionResponse
// @Router   /instructions/{id}/confirm [post]
func (h *InstructionHandler) Confirm(c *gin.Context) {
	h.transition(c, "confirm", h.instructions.Confirm)
}

// @Summary  Cancel an instruction
// @Tags     instructions
// @Param    id  path  string  true  "Instruction ID"
// @Success  200  {object}  response.InstructionResponse
// @Router   /instructions/{id}/cancel [post]
func (h *InstructionHandler) Cancel(c *gin.Context) {
	h.transition(c, "cancel", h.instructions.Cancel)
}

// @Summary  End a confirmed instruction
// @Tags     instructions
// @Param    id  path  string  true  "Instruction ID"
// @Success  200  {object}  response.InstructionResponse
// @Router   /instructions/{id}/end [post]
func (h *InstructionHandler) End(c *gin.Context) {
	h.transition(c, "end", h.instructions.End)
}

func (h *InstructionHandler) transition(
	c *gin.Context,
	action string,
	apply func(ctx context.Context, id string) (entities.Instruction, error),
) {
	id := c.Param("id")
	updated, err := apply(c.Request.Context(), id)
	if err != nil {
		log.Debug().Err(err).Str("instruction_id", id).Str("action", action).Msg("[instruction][handler] transition rejected")
		abortWith(c, mapEngineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInstruction(updated))
}

// Ingest godoc
// @Summary      Create instructions from parsed spreadsheet rows
// @Description  Each row is created on its own. Failed rows are reported by index and never undo the others.
// @Tags         instructions
// @Accept       json
// @Produce      json
// @Param        body  body      request.IngestRequest  true  "Rows"
// @Success      200   {object}  response.IngestResponse
// @Router       /instructions/ingest [post]
func (h *InstructionHandler) Ingest(c *gin.Context) {
	var payload request.IngestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, err)
		return
	}

	// Rows whose dates do not parse never reach the engine; the engine sees the
	// rest renumbered, so its row indexes are mapped back.
	var (
		inputs  []usecase.InstructionInput
		indexOf []int
		rowErrs []usecase.RowError
	)
	for n, row := range payload.Rows {
		in, err := row.ToInput()
		if err != nil {
			rowErrs = append(rowErrs, usecase.RowError{RowIndex: n, Message: err.Error()})
			continue
		}
		inputs = append(inputs, in)
		indexOf = append(indexOf, n)
	}

	res := h.ingest.Ingest(c.Request.Context(), inputs)
	for _, e := range res.Errors {
		e.RowIndex = indexOf[e.RowIndex]
		rowErrs = append(rowErrs, e)
	}
	slices.SortFunc(rowErrs, func(a, b usecase.RowError) int { return a.RowIndex - b.RowIndex })
	res.Errors = rowErrs

	c.JSON(http.StatusOK, response.FromIngestResult(res))
}
