package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	orderUsecases "milkrun/internal/application/order/usecases"
	"milkrun/internal/interfaces/http/middleware"
	"milkrun/internal/shared/logger"
	"milkrun/internal/shared/utils"
)

type OrderHandler struct {
	createOrderUC       *orderUsecases.CreateOrderUseCase
	getMyOrdersUC       *orderUsecases.GetMyOrdersUseCase
	getOrderDetailsUC   *orderUsecases.GetOrderDetailsUseCase
	cancelOrderUC       *orderUsecases.CancelOrderUseCase
	listAllOrdersUC     *orderUsecases.ListAllOrdersUseCase
	updateOrderStatusUC *orderUsecases.UpdateOrderStatusUseCase
	logger              logger.Interface
}

func NewOrderHandler(
	createOrderUC *orderUsecases.CreateOrderUseCase,
	getMyOrdersUC *orderUsecases.GetMyOrdersUseCase,
	getOrderDetailsUC *orderUsecases.GetOrderDetailsUseCase,
	cancelOrderUC *orderUsecases.CancelOrderUseCase,
	listAllOrdersUC *orderUsecases.ListAllOrdersUseCase,
	updateOrderStatusUC *orderUsecases.UpdateOrderStatusUseCase,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		createOrderUC:       createOrderUC,
		getMyOrdersUC:       getMyOrdersUC,
		getOrderDetailsUC:   getOrderDetailsUC,
		cancelOrderUC:       cancelOrderUC,
		listAllOrdersUC:     listAllOrdersUC,
		updateOrderStatusUC: updateOrderStatusUC,
		logger:              logger,
	}
}

type orderItemRequest struct {
	ProductID uint64  `json:"product_id"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
}

type createOrderRequest struct {
	PhoneNumber     string             `json:"phone_number" binding:"required,phone"`
	Items           []orderItemRequest `json:"items" binding:"required,min=1,dive"`
	DeliveryAddress string             `json:"delivery_address" binding:"required"`
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	items := make([]orderUsecases.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, orderUsecases.ItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	id, err := h.createOrderUC.Execute(c.Request.Context(), orderUsecases.CreateOrderCommand{
		PhoneNumber:     req.PhoneNumber,
		Items:           items,
		DeliveryAddress: req.DeliveryAddress,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"id": id}, "order created")
}

// GetMyOrders handles GET /api/orders?phone=
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	phone := c.Query("phone")

	orders, err := h.getMyOrdersUC.Execute(c.Request.Context(), phone)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, NewOrderResponses(orders))
}

// GetOrderDetails handles GET /api/orders/:id?phone= and
// GET /api/admin/orders/:id
func (h *OrderHandler) GetOrderDetails(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid order id")
		return
	}

	orderEntity, err := h.getOrderDetailsUC.Execute(c.Request.Context(), orderUsecases.GetOrderDetailsQuery{
		OrderID:        id,
		RequestorPhone: c.Query("phone"),
		Privileged:     middleware.IsPrivileged(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, NewOrderResponse(orderEntity))
}

type cancelOrderRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required,phone"`
}

// CancelOrder handles POST /api/orders/:id/cancel
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid order id")
		return
	}

	var req cancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	orderEntity, err := h.cancelOrderUC.Execute(c.Request.Context(), orderUsecases.CancelOrderCommand{
		OrderID:        id,
		RequestorPhone: req.PhoneNumber,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, NewOrderResponse(orderEntity))
}

// ListAllOrders handles GET /api/admin/orders
func (h *OrderHandler) ListAllOrders(c *gin.Context) {
	orders, err := h.listAllOrdersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, NewOrderResponses(orders))
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus handles PUT /api/admin/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid order id")
		return
	}

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	orderEntity, err := h.updateOrderStatusUC.Execute(c.Request.Context(), orderUsecases.UpdateOrderStatusCommand{
		OrderID: id,
		Status:  req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, NewOrderResponse(orderEntity))
}
