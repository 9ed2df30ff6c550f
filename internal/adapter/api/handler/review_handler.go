package handler

import (
	"github.com/labstack/echo/v4"

	"tradepost/internal/usecase"
	"tradepost/pkg/response"
	"tradepost/pkg/utils"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	ListingID  string   `json:"listing_id" validate:"required"`
	RevieweeID string   `json:"reviewee_id" validate:"required"`
	OrderID    string   `json:"order_id" validate:"required"`
	Rating     int      `json:"rating" validate:"required,min=1,max=5"`
	Comment    string   `json:"comment"`
	Aspects    []string `json:"aspects"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reviewerID := c.Get("uid").(string)

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), reviewerID, usecase.CreateReviewInput{
		ListingID:  req.ListingID,
		RevieweeID: req.RevieweeID,
		OrderID:    req.OrderID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Aspects:    req.Aspects,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) ListListingReviews(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	listingID := c.Param("listingId")

	reviews, total, err := h.reviewUseCase.ListListingReviews(c.Request().Context(), listingID, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reviews, total, pagination.Page, pagination.PageSize)
}

func (h *ReviewHandler) ListUserReviews(c echo.Context) error {
	userID := c.Param("userId")

	reviews, err := h.reviewUseCase.ListUserReviews(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}
