package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogUsecases "milkrun/internal/application/catalog/usecases"
	"milkrun/internal/shared/logger"
	"milkrun/internal/shared/utils"
)

type ProductHandler struct {
	listProductsUC  *catalogUsecases.ListProductsUseCase
	addProductUC    *catalogUsecases.AddProductUseCase
	updateProductUC *catalogUsecases.UpdateProductUseCase
	seedCatalogUC   *catalogUsecases.SeedCatalogUseCase
	logger          logger.Interface
}

func NewProductHandler(
	listProductsUC *catalogUsecases.ListProductsUseCase,
	addProductUC *catalogUsecases.AddProductUseCase,
	updateProductUC *catalogUsecases.UpdateProductUseCase,
	seedCatalogUC *catalogUsecases.SeedCatalogUseCase,
	logger logger.Interface,
) *ProductHandler {
	return &ProductHandler{
		listProductsUC:  listProductsUC,
		addProductUC:    addProductUC,
		updateProductUC: updateProductUC,
		seedCatalogUC:   seedCatalogUC,
		logger:          logger,
	}
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.listProductsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, NewProductResponses(products))
}

type addProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Unit        string  `json:"unit" binding:"required"`
}

// AddProduct handles POST /api/admin/products
func (h *ProductHandler) AddProduct(c *gin.Context) {
	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id, err := h.addProductUC.Execute(c.Request.Context(), catalogUsecases.AddProductCommand{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Unit:        req.Unit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"id": id}, "product added")
}

// UpdateProduct handles PUT /api/admin/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid product id")
		return
	}

	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	product, err := h.updateProductUC.Execute(c.Request.Context(), catalogUsecases.UpdateProductCommand{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Unit:        req.Unit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, NewProductResponse(product))
}

// InitializeProducts handles POST /api/admin/products/initialize
func (h *ProductHandler) InitializeProducts(c *gin.Context) {
	count, err := h.seedCatalogUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"seeded": count})
}
