package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	subscriptionUsecases "milkrun/internal/application/subscription/usecases"
	"milkrun/internal/interfaces/http/middleware"
	"milkrun/internal/shared/logger"
	"milkrun/internal/shared/utils"
)

type SubscriptionHandler struct {
	createSubscriptionUC        *subscriptionUsecases.CreateSubscriptionUseCase
	getMySubscriptionsUC        *subscriptionUsecases.GetMySubscriptionsUseCase
	getSubscriptionDetailsUC    *subscriptionUsecases.GetSubscriptionDetailsUseCase
	pauseSubscriptionUC         *subscriptionUsecases.PauseSubscriptionUseCase
	resumeSubscriptionUC        *subscriptionUsecases.ResumeSubscriptionUseCase
	cancelSubscriptionUC        *subscriptionUsecases.CancelSubscriptionUseCase
	updateSubscriptionDetailsUC *subscriptionUsecases.UpdateSubscriptionDetailsUseCase
	listAllSubscriptionsUC      *subscriptionUsecases.ListAllSubscriptionsUseCase
	updateSubscriptionStatusUC  *subscriptionUsecases.UpdateSubscriptionStatusUseCase
	logger                      logger.Interface
}

func NewSubscriptionHandler(
	createSubscriptionUC *subscriptionUsecases.CreateSubscriptionUseCase,
	getMySubscriptionsUC *subscriptionUsecases.GetMySubscriptionsUseCase,
	getSubscriptionDetailsUC *subscriptionUsecases.GetSubscriptionDetailsUseCase,
	pauseSubscriptionUC *subscriptionUsecases.PauseSubscriptionUseCase,
	resumeSubscriptionUC *subscriptionUsecases.ResumeSubscriptionUseCase,
	cancelSubscriptionUC *subscriptionUsecases.CancelSubscriptionUseCase,
	updateSubscriptionDetailsUC *subscriptionUsecases.UpdateSubscriptionDetailsUseCase,
	listAllSubscriptionsUC *subscriptionUsecases.ListAllSubscriptionsUseCase,
	updateSubscriptionStatusUC *subscriptionUsecases.UpdateSubscriptionStatusUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createSubscriptionUC:        createSubscriptionUC,
		getMySubscriptionsUC:        getMySubscriptionsUC,
		getSubscriptionDetailsUC:    getSubscriptionDetailsUC,
		pauseSubscriptionUC:         pauseSubscriptionUC,
		resumeSubscriptionUC:        resumeSubscriptionUC,
		cancelSubscriptionUC:        cancelSubscriptionUC,
		updateSubscriptionDetailsUC: updateSubscriptionDetailsUC,
		listAllSubscriptionsUC:      listAllSubscriptionsUC,
		updateSubscriptionStatusUC:  updateSubscriptionStatusUC,
		logger:                      logger,
	}
}

type subscriptionItemRequest struct {
	ProductID uint64  `json:"product_id"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
}

type createSubscriptionRequest struct {
	PhoneNumber      string                    `json:"phone_number" binding:"required,phone"`
	Items            []subscriptionItemRequest `json:"items" binding:"required,min=1,dive"`
	DeliveryDays     []string                  `json:"delivery_days" binding:"required,min=1"`
	DeliveryTimeSlot string                    `json:"delivery_time_slot" binding:"required"`
	DeliveryAddress  string                    `json:"delivery_address" binding:"required"`
	StartDate        time.Time                 `json:"start_date" binding:"required"`
}

// CreateSubscription handles POST /api/subscriptions
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req createSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	items := make([]subscriptionUsecases.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, subscriptionUsecases.ItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	id, err := h.createSubscriptionUC.Execute(c.Request.Context(), subscriptionUsecases.CreateSubscriptionCommand{
		PhoneNumber:      req.PhoneNumber,
		Items:            items,
		DeliveryDays:     req.DeliveryDays,
		DeliveryTimeSlot: req.DeliveryTimeSlot,
		DeliveryAddress:  req.DeliveryAddress,
		StartDate:        req.StartDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"id": id}, "subscription created")
}

// GetMySubscriptions handles GET /api/subscriptions?phone=
func (h *SubscriptionHandler) GetMySubscriptions(c *gin.Context) {
	subs, err := h.getMySubscriptionsUC.Execute(c.Request.Context(), c.Query("phone"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, NewSubscriptionResponses(subs))
}

// GetSubscriptionDetails handles GET /api/subscriptions/:id?phone=
func (h *SubscriptionHandler) GetSubscriptionDetails(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid subscription id")
		return
	}

	sub, err := h.getSubscriptionDetailsUC.Execute(c.Request.Context(), subscriptionUsecases.GetSubscriptionDetailsQuery{
		SubscriptionID: id,
		RequestorPhone: c.Query("phone"),
		Privileged:     middleware.IsPrivileged(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, NewSubscriptionResponse(sub))
}

type subscriptionLifecycleRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required,phone"`
}

// PauseSubscription handles POST /api/subscriptions/:id/pause
func (h *SubscriptionHandler) PauseSubscription(c *gin.Context) {
	id, phone, ok := h.bindLifecycleRequest(c)
	if !ok {
		return
	}

	sub, err := h.pauseSubscriptionUC.Execute(c.Request.Context(), subscriptionUsecases.PauseSubscriptionCommand{
		SubscriptionID: id,
		RequestorPhone: phone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, NewSubscriptionResponse(sub))
}

// ResumeSubscription handles POST /api/subscriptions/:id/resume
func (h *SubscriptionHandler) ResumeSubscription(c *gin.Context) {
	id, phone, ok := h.bindLifecycleRequest(c)
	if !ok {
		return
	}

	sub, err := h.resumeSubscriptionUC.Execute(c.Request.Context(), subscriptionUsecases.ResumeSubscriptionCommand{
		SubscriptionID: id,
		RequestorPhone: phone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, NewSubscriptionResponse(sub))
}

// CancelSubscription handles POST /api/subscriptions/:id/cancel
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	id, phone, ok := h.bindLifecycleRequest(c)
	if !ok {
		return
	}

	sub, err := h.cancelSubscriptionUC.Execute(c.Request.Context(), subscriptionUsecases.CancelSubscriptionCommand{
		SubscriptionID: id,
		RequestorPhone: phone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, NewSubscriptionResponse(sub))
}

func (h *SubscriptionHandler) bindLifecycleRequest(c *gin.Context) (uint64, string, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid subscription id")
		return 0, "", false
	}

	var req subscriptionLifecycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return 0, "", false
	}

	return id, req.PhoneNumber, true
}

type updateSubscriptionRequest struct {
	PhoneNumber      string                    `json:"phone_number" binding:"required,phone"`
	Items            []subscriptionItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	DeliveryDays     []string                  `json:"delivery_days" binding:"omitempty,min=1"`
	DeliveryTimeSlot *string                   `json:"delivery_time_slot"`
	DeliveryAddress  *string                   `json:"delivery_address"`
}

// UpdateSubscription handles PATCH /api/subscriptions/:id
func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid subscription id")
		return
	}

	var req updateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cmd := subscriptionUsecases.UpdateSubscriptionDetailsCommand{
		SubscriptionID:   id,
		RequestorPhone:   req.PhoneNumber,
		Privileged:       middleware.IsPrivileged(c),
		DeliveryDays:     req.DeliveryDays,
		DeliveryTimeSlot: req.DeliveryTimeSlot,
		DeliveryAddress:  req.DeliveryAddress,
	}
	if req.Items != nil {
		items := make([]subscriptionUsecases.ItemInput, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, subscriptionUsecases.ItemInput{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}
		cmd.Items = items
	}

	sub, err := h.updateSubscriptionDetailsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, NewSubscriptionResponse(sub))
}

// ListAllSubscriptions handles GET /api/admin/subscriptions
func (h *SubscriptionHandler) ListAllSubscriptions(c *gin.Context) {
	subs, err := h.listAllSubscriptionsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, NewSubscriptionResponses(subs))
}

type updateSubscriptionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateSubscriptionStatus handles PUT /api/admin/subscriptions/:id/status
func (h *SubscriptionHandler) UpdateSubscriptionStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid subscription id")
		return
	}

	var req updateSubscriptionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	sub, err := h.updateSubscriptionStatusUC.Execute(c.Request.Context(), subscriptionUsecases.UpdateSubscriptionStatusCommand{
		SubscriptionID: id,
		Status:         req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, NewSubscriptionResponse(sub))
}
