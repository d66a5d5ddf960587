package api

import (
	"net/http"

	"pharmalink/internal/domain/order"
	reqdto "pharmalink/internal/handler/dto/request"
	resdto "pharmalink/internal/handler/dto/response"
	"pharmalink/internal/handler/middleware"
	"pharmalink/internal/pkg/errs"
	"pharmalink/internal/usecase/commands"
	"pharmalink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Create order
// @Description Order a subset of matched lines from one pharmacy, snapshotting prices
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Order payload"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.orderCommands.CreateOrder(c.Request.Context(), commands.CreateOrderParams{
		RequesterID:   userID,
		PharmacyID:    req.PharmacyID,
		RequestID:     req.RequestID,
		MedicationIDs: req.MedicationIDs,
	})
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Request not found",
			})
		case errs.Is(err, errs.ErrEmptySelection):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "At least one medication must be selected",
			})
		case errs.Is(err, errs.ErrInvalidSelection):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Selection includes a line the pharmacy did not confirm",
			})
		case errs.Is(err, errs.ErrDuplicateOrder):
			c.JSON(http.StatusConflict, gin.H{
				"error": "An order for this request and pharmacy already exists",
			})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateOrderResponse{
		OrderID:     result.OrderID,
		TotalAmount: result.TotalAmount,
	})
}

// @Summary Get order
// @Description Get an order; visible only to its requester or pharmacy
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errs.Is(err, queries.ErrOrderAccess):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Order belongs to another user",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromOrderView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List orders
// @Description List the authenticated user's orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderListResponse
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	role, _ := middleware.GetUserRole(c)

	var (
		items []*queries.OrderListItem
		err   error
	)
	if role.IsPharmacy() {
		items, err = h.orderQueries.ListByPharmacy(c.Request.Context(), userID)
	} else {
		items, err = h.orderQueries.ListByRequester(c.Request.Context(), userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.OrderListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromOrderListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Pay order
// @Description Capture the (mocked) payment; safe to retry
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.PayOrderRequest true "Payment method"
// @Success 200 {object} resdto.PayOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders/{id}/pay [post]
func (h *OrderHandler) PayOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	var req reqdto.PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.orderCommands.MarkPaid(c.Request.Context(), commands.MarkPaidParams{
		OrderID:     id,
		RequesterID: userID,
		Method:      order.PaymentMethod(req.Method),
	})
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid payment method",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.PayOrderResponse{
		OrderID:  id,
		Status:   order.StatusPaid.String(),
		Replayed: result.Replayed,
	})
}

// @Summary Advance order status
// @Description Pharmacy moves the order one step forward (preparing, ready, completed)
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.AdvanceOrderRequest true "Target status"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/status [post]
func (h *OrderHandler) AdvanceOrder(c *gin.Context) {
	pharmacyID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	var req reqdto.AdvanceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.orderCommands.Advance(c.Request.Context(), commands.AdvanceOrderParams{
		OrderID:    id,
		PharmacyID: pharmacyID,
		Target:     order.Status(req.Status),
	})
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errs.Is(err, errs.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order is not in the preceding status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
