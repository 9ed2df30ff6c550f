package handler

import (
	"github.com/labstack/echo/v4"

	"tradepost/internal/domain/repository"
	"tradepost/internal/usecase"
	"tradepost/pkg/money"
	"tradepost/pkg/response"
	"tradepost/pkg/utils"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type createListingRequest struct {
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description" validate:"required"`
	Price       money.Amount `json:"price" validate:"required,gt=0"`
	Category    string       `json:"category" validate:"required,oneof=product service rental digital"`
	Location    string       `json:"location"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	Country     string       `json:"country"`
	Images      []string     `json:"images" validate:"omitempty,dive,url"`
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID := c.Get("uid").(string)

	listing, err := h.listingUseCase.CreateListing(c.Request().Context(), sellerID, usecase.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Location:    req.Location,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		Images:      req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	id := c.Param("id")

	listing, err := h.listingUseCase.GetListingByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) ListListings(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	filter := repository.ListingFilter{
		Category: c.QueryParam("category"),
		Status:   c.QueryParam("status"),
		City:     c.QueryParam("city"),
		Search:   c.QueryParam("search"),
	}

	if raw := c.QueryParam("min_price"); raw != "" {
		minPrice, err := money.Parse(raw)
		if err != nil {
			return response.Error(c, err)
		}
		filter.MinPrice = minPrice
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		maxPrice, err := money.Parse(raw)
		if err != nil {
			return response.Error(c, err)
		}
		filter.MaxPrice = maxPrice
	}

	listings, total, err := h.listingUseCase.ListListings(c.Request().Context(), filter, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, pagination.Page, pagination.PageSize)
}

func (h *ListingHandler) ListMyListings(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	sellerID := c.Get("uid").(string)

	listings, total, err := h.listingUseCase.ListBySeller(c.Request().Context(), sellerID, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, pagination.Page, pagination.PageSize)
}

type updateListingRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Price       money.Amount `json:"price" validate:"omitempty,gte=0"`
	Category    string       `json:"category" validate:"omitempty,oneof=product service rental digital"`
	Status      string       `json:"status" validate:"omitempty,oneof=active inactive sold"`
	Location    string       `json:"location"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	Country     string       `json:"country"`
	Images      []string     `json:"images" validate:"omitempty,dive,url"`
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	id := c.Param("id")

	var req updateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID := c.Get("uid").(string)

	listing, err := h.listingUseCase.UpdateListing(c.Request().Context(), sellerID, id, usecase.UpdateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Status:      req.Status,
		Location:    req.Location,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		Images:      req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	id := c.Param("id")
	sellerID := c.Get("uid").(string)

	if err := h.listingUseCase.DeleteListing(c.Request().Context(), sellerID, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Listing deleted",
	})
}
