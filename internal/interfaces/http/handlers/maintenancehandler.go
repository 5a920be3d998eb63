package handlers

import (
	"github.com/gin-gonic/gin"

	subscriptionUsecases "milkrun/internal/application/subscription/usecases"
	"milkrun/internal/shared/logger"
	"milkrun/internal/shared/utils"
)

// MaintenanceHandler exposes operational tasks on demand, in addition to
// their scheduled runs.
type MaintenanceHandler struct {
	generateOrdersUC *subscriptionUsecases.GenerateRecurringOrdersUseCase
	logger           logger.Interface
}

func NewMaintenanceHandler(
	generateOrdersUC *subscriptionUsecases.GenerateRecurringOrdersUseCase,
	logger logger.Interface,
) *MaintenanceHandler {
	return &MaintenanceHandler{
		generateOrdersUC: generateOrdersUC,
		logger:           logger,
	}
}

// RunRecurringOrderSweep handles POST /api/admin/maintenance/recurring-orders
func (h *MaintenanceHandler) RunRecurringOrderSweep(c *gin.Context) {
	summary, err := h.generateOrdersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, summary)
}
