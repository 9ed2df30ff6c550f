package router

import (
	"github.com/labstack/echo/v4"

	"tradepost/internal/adapter/api/handler"
	"tradepost/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	listingHandler := handler.GetListingHandler()

	listings := e.Group("/v1/listings")
	listings.GET("", listingHandler.ListListings)
	listings.GET("/:id", listingHandler.GetListing)

	authed := e.Group("/v1/listings")
	authed.Use(authMiddleware.Authenticate)
	authed.GET("/mine", listingHandler.ListMyListings)
	authed.POST("", listingHandler.CreateListing)
	authed.PUT("/:id", listingHandler.UpdateListing)
	authed.DELETE("/:id", listingHandler.DeleteListing)
}
