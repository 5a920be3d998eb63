package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	customerUsecases "milkrun/internal/application/customer/usecases"
	"milkrun/internal/shared/logger"
	"milkrun/internal/shared/utils"
)

type ProfileHandler struct {
	createProfileUC *customerUsecases.CreateProfileUseCase
	updateProfileUC *customerUsecases.UpdateProfileUseCase
	getProfileUC    *customerUsecases.GetProfileUseCase
	listCustomersUC *customerUsecases.ListCustomersUseCase
	deleteProfileUC *customerUsecases.DeleteProfileUseCase
	logger          logger.Interface
}

func NewProfileHandler(
	createProfileUC *customerUsecases.CreateProfileUseCase,
	updateProfileUC *customerUsecases.UpdateProfileUseCase,
	getProfileUC *customerUsecases.GetProfileUseCase,
	listCustomersUC *customerUsecases.ListCustomersUseCase,
	deleteProfileUC *customerUsecases.DeleteProfileUseCase,
	logger logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		createProfileUC: createProfileUC,
		updateProfileUC: updateProfileUC,
		getProfileUC:    getProfileUC,
		listCustomersUC: listCustomersUC,
		deleteProfileUC: deleteProfileUC,
		logger:          logger,
	}
}

type profileRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required,phone"`
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
}

// CreateProfile handles POST /api/profiles
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	profile, err := h.createProfileUC.Execute(c.Request.Context(), customerUsecases.CreateProfileCommand{
		PhoneNumber: req.PhoneNumber,
		Name:        req.Name,
		Address:     req.Address,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewProfileResponse(profile), "profile created")
}

// UpdateProfile handles PUT /api/profiles
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	profile, err := h.updateProfileUC.Execute(c.Request.Context(), customerUsecases.UpdateProfileCommand{
		PhoneNumber: req.PhoneNumber,
		Name:        req.Name,
		Address:     req.Address,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, NewProfileResponse(profile))
}

// GetProfile handles GET /api/profiles/:phone
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.getProfileUC.Execute(c.Request.Context(), c.Param("phone"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, NewProfileResponse(profile))
}

// ListCustomers handles GET /api/admin/customers
func (h *ProfileHandler) ListCustomers(c *gin.Context) {
	profiles, err := h.listCustomersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, NewProfileResponses(profiles))
}

// DeleteProfile handles DELETE /api/admin/profiles/:phone
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	deleted, err := h.deleteProfileUC.Execute(c.Request.Context(), c.Param("phone"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, NewProfileResponse(deleted))
}
