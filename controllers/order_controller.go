package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"school-store/models"
	"school-store/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Create godoc
// @Summary Create order
// @Description Record a checkout. Prices and the total are recomputed server-side; the order_id acts as an idempotency key.
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Order"
// @Success 201 {object} models.Order
// @Success 200 {object} models.Order "idempotent replay of an already recorded order"
// @Failure 400 {object} models.ErrorResponse
// @Router /api/orders [post]
func (ctrl *OrderController) Create(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid order data"})
		return
	}

	order, created, err := ctrl.orders.Create(c.Request.Context(), c.GetInt("user_id"), c.GetString("user_email"), req)
	if err != nil {
		// A missing product inside a checkout payload is bad input,
		// not a missing resource.
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, order)
		return
	}
	c.JSON(http.StatusOK, order)
}

// List godoc
// @Summary List orders
// @Description Admins see every order, customers only their own; newest first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Order
// @Router /api/orders [get]
func (ctrl *OrderController) List(c *gin.Context) {
	orders, err := ctrl.orders.List(c.Request.Context(), c.GetInt("user_id"), c.GetBool("is_admin"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateStatus godoc
// @Summary Update order status
// @Description Move an order along Pending → Processing → Shipped → Delivered, or cancel a non-terminal one
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "Status"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/orders/{id}/status [put]
func (ctrl *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Status is required"})
		return
	}

	order, err := ctrl.orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
