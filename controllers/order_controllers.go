package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuscanteen/canteen-app/models"
	"github.com/campuscanteen/canteen-app/services"
	"github.com/campuscanteen/canteen-app/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

func callerIdentity(c *gin.Context) (uint, string, string) {
	userID, _ := c.Get("user_id")
	userName, _ := c.Get("user_name")
	role, _ := c.Get("role")
	id, _ := userID.(uint)
	name, _ := userName.(string)
	r, _ := role.(string)
	return id, name, r
}

// CreateOrder -> place an order from the caller's cart (status=pending).
func (oc *OrderController) CreateOrder(c *gin.Context) {
	userID, userName, role := callerIdentity(c)
	if role != models.RoleCustomer {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	type reqBody struct {
		Items         []services.CartLine `json:"items" binding:"required"`
		PaymentMethod string              `json:"payment_method" binding:"required,oneof=cash card upi"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.PlaceOrder(userID, userName, body.Items, body.PaymentMethod)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order placed", order)
}

// GetOrders -> own orders for customers, every order for staff. Both
// newest first.
func (oc *OrderController) GetOrders(c *gin.Context) {
	userID, _, role := callerIdentity(c)

	var (
		orders []models.Order
		err    error
	)
	if role == models.RoleStaff {
		orders, err = oc.Orders.GetAllOrders()
	} else {
		orders, err = oc.Orders.GetOrdersForCustomer(userID)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail for the owner or any staff member.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	idStr := c.Param("order_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.GetOrder(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	userID, _, role := callerIdentity(c)
	if role != models.RoleStaff && order.CustomerID != userID {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus -> apply one lifecycle transition. The actor role comes
// from the token; the lifecycle decides whether the edge is legal.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	idStr := c.Param("order_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	type reqBody struct {
		Status           string  `json:"status" binding:"required,oneof=approved rejected preparing ready completed"`
		EstimatedMinutes *int    `json:"estimated_minutes"`
		RejectionReason  *string `json:"rejection_reason"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	_, _, role := callerIdentity(c)
	order, err := oc.Orders.Transition(uint(id), role, body.Status, services.TransitionParams{
		EstimatedMinutes: body.EstimatedMinutes,
		RejectionReason:  body.RejectionReason,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}
