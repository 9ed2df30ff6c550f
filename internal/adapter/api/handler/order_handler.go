package handler

import (
	"github.com/labstack/echo/v4"

	"tradepost/internal/usecase"
	"tradepost/pkg/response"
	"tradepost/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type createOrderRequest struct {
	ListingID       string `json:"listing_id" validate:"required"`
	Quantity        int    `json:"quantity" validate:"omitempty,gt=0"`
	ShippingAddress string `json:"shipping_address"`
	Notes           string `json:"notes"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	buyerID := c.Get("uid").(string)

	order, err := h.orderUseCase.CreateOrder(c.Request().Context(), buyerID, usecase.CreateOrderInput{
		ListingID:       req.ListingID,
		Quantity:        req.Quantity,
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) InitiatePayment(c echo.Context) error {
	var req struct {
		OrderID string `json:"order_id" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	buyerID := c.Get("uid").(string)

	result, err := h.orderUseCase.InitiatePayment(c.Request().Context(), buyerID, req.OrderID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	userID := c.Get("uid").(string)
	scope := c.QueryParam("type")

	orders, total, err := h.orderUseCase.ListOrders(c.Request().Context(), userID, scope, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.PageSize)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	id := c.Param("id")
	userID := c.Get("uid").(string)

	order, err := h.orderUseCase.GetOrderByID(c.Request().Context(), userID, id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

type updateOrderStatusRequest struct {
	Status         string `json:"status" validate:"required"`
	TrackingNumber string `json:"tracking_number"`
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id := c.Param("id")

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	callerID := c.Get("uid").(string)

	order, err := h.orderUseCase.UpdateOrderStatus(c.Request().Context(), callerID, id, usecase.UpdateOrderStatusInput{
		Status:         req.Status,
		TrackingNumber: req.TrackingNumber,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
