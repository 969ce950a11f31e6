package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"school-store/config"
	"school-store/models"
	"school-store/services"
	"school-store/utils"
)

const productListCacheKey = "products_list"

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

func invalidateProductCache() {
	if config.RedisClient == nil {
		return
	}
	config.RedisClient.Del(context.Background(), productListCacheKey)
}

// List godoc
// @Summary Get all products
// @Description Get the full catalog; search and category filtering happen client-side
// @Tags Products
// @Produce json
// @Success 200 {array} models.Product
// @Router /api/products [get]
func (ctrl *ProductController) List(c *gin.Context) {
	ctx := c.Request.Context()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, productListCacheKey).Result()
		if err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	products, err := ctrl.products.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	if config.RedisClient != nil {
		if payload, err := json.Marshal(products); err == nil {
			config.RedisClient.Set(ctx, productListCacheKey, payload, 5*time.Minute)
		}
	}

	c.JSON(http.StatusOK, products)
}

// Get godoc
// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [get]
func (ctrl *ProductController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	product, err := ctrl.products.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// Create godoc
// @Summary Create product
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product"
// @Success 201 {object} models.Product
// @Failure 400 {object} models.ErrorResponse
// @Router /api/products [post]
func (ctrl *ProductController) Create(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid product data"})
		return
	}

	product, err := ctrl.products.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusCreated, product)
}

// Update godoc
// @Summary Update product
// @Description Partial update; omitted fields keep their value
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.UpdateProductRequest true "Product"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [put]
func (ctrl *ProductController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid product data"})
		return
	}

	product, err := ctrl.products.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusOK, product)
}

// Delete godoc
// @Summary Delete product
// @Description Hard delete; order snapshots keep the item data
// @Tags Admin - Products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [delete]
func (ctrl *ProductController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctrl.products.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	invalidateProductCache()
	c.Status(http.StatusNoContent)
}

// UploadImage godoc
// @Summary Upload product image
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Param image formData file true "Image file"
// @Success 200 {object} models.Product
// @Failure 400 {object} models.ErrorResponse
// @Router /api/products/{id}/image [post]
func (ctrl *ProductController) UploadImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Image file required"})
		return
	}

	imagePath, err := utils.UploadFile(c, file, "products")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	product, err := ctrl.products.SetImage(c.Request.Context(), id, imagePath)
	if err != nil {
		utils.DeleteFile(imagePath)
		respondError(c, err)
		return
	}

	invalidateProductCache()
	c.JSON(http.StatusOK, product)
}
