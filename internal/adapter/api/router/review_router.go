package router

import (
	"github.com/labstack/echo/v4"

	"tradepost/internal/adapter/api/handler"
	"tradepost/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	reviews := e.Group("/v1/reviews")
	reviews.GET("/listing/:listingId", reviewHandler.ListListingReviews)
	reviews.GET("/user/:userId", reviewHandler.ListUserReviews)

	authed := e.Group("/v1/reviews")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("", reviewHandler.CreateReview)
}
