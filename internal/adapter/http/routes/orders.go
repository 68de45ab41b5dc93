package routes

import (
	"repair_orders/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInstructions = "/instructions"
	PathProcesses    = "/processes"
	PathTasks        = "/tasks"
	PathPayments     = "/payments"
	PathCatalog      = "/catalog"
)

func addOrderRoutes(rg *gin.RouterGroup, instructionHandler *handlers.InstructionHandler, processHandler *handlers.ProcessHandler, taskHandler *handlers.TaskHandler) {
	instructions := rg.Group(PathInstructions)
	{
		instructions.POST("", instructionHandler.CreateInstruction)
		instructions.GET("", instructionHandler.ListInstructions)
		instructions.POST("/ingest", instructionHandler.Ingest)
		instructions.GET("/:id", instructionHandler.GetInstruction)
		instructions.PATCH("/:id", instructionHandler.UpdateInstruction)
		instructions.DELETE("/:id", instructionHandler.DeleteInstruction)
		instructions.POST("/:id/status", instructionHandler.SetStatus)
		instructions.POST("/:id/close", instructionHandler.Close)
		instructions.POST("/:id/confirm", instructionHandler.Confirm)
		instructions.POST("/:id/cancel", instructionHandler.Cancel)
		instructions.POST("/:id/end", instructionHandler.End)

		instructions.POST("/:id/processes", processHandler.CreateProcess)
		instructions.GET("/:id/processes", processHandler.ListProcesses)
		instructions.GET("/:id/tasks", taskHandler.ListTasksByInstruction)
	}

	processes := rg.Group(PathProcesses)
	{
		processes.PATCH("/:id", processHandler.UpdateProcess)
		processes.DELETE("/:id", processHandler.DeleteProcess)
		processes.POST("/:id/tasks", taskHandler.CreateTask)
		processes.GET("/:id/tasks", taskHandler.ListTasksByProcess)
	}

	tasks := rg.Group(PathTasks)
	{
		tasks.PATCH("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:instruction_id", paymentHandler.CreatePaymentByInstructionID)
		payments.GET("/:instruction_id", paymentHandler.GetPaymentByInstructionID)
		payments.GET("/:instruction_id/history", paymentHandler.ListPaymentsByInstructionID)
		payments.GET("/:instruction_id/:payment_id", paymentHandler.GetPayment)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	rg.GET(PathCatalog+"/:id", catalogHandler.GetItem)
}
