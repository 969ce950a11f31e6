package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"school-store/models"
	"school-store/services"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// Get godoc
// @Summary Get cart
// @Description Get the caller's cart with recomputed subtotal and count
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.CartResponse
// @Router /api/cart [get]
func (ctrl *CartController) Get(c *gin.Context) {
	cart, err := ctrl.cart.Get(c.Request.Context(), c.GetInt("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CartResponse{Success: true, Data: cart})
}

// AddItem godoc
// @Summary Add cart item
// @Description Add one unit of a product; same (product, size) merges into the existing line
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item"
// @Success 200 {object} models.CartResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid cart item"})
		return
	}

	cart, err := ctrl.cart.Add(c.Request.Context(), c.GetInt("user_id"), req.ProductID, req.Size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CartResponse{Success: true, Data: cart})
}

// UpdateItem godoc
// @Summary Set cart item quantity
// @Description Overwrite a line's quantity; zero or less removes the line
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateCartItemRequest true "Item"
// @Success 200 {object} models.CartResponse
// @Router /api/cart/items [put]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid cart item"})
		return
	}

	cart, err := ctrl.cart.SetQuantity(c.Request.Context(), c.GetInt("user_id"), req.ProductID, req.Size, req.Qty)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CartResponse{Success: true, Data: cart})
}

// Clear godoc
// @Summary Clear cart
// @Tags Cart
// @Security BearerAuth
// @Success 204
// @Router /api/cart [delete]
func (ctrl *CartController) Clear(c *gin.Context) {
	if err := ctrl.cart.Clear(c.Request.Context(), c.GetInt("user_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
