package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/handlers"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/middleware"
)

// SetupRoutes builds the full router: public storefront/intake routes plus
// the admin group behind the session middleware.
func SetupRoutes(h *handlers.HandlerManager, jwtSecret string) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", h.Auth.Login)

		// public intake + storefront reads
		api.POST("/enquiries", h.Enquiry.Create)
		api.POST("/applications", h.Application.Create)
		api.GET("/offers", h.Offer.ListLive)
		api.GET("/products", h.Product.List)
		api.GET("/products/:id", h.Product.Get)

		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(jwtSecret))
		{
			admin.GET("/enquiries", h.Enquiry.List)
			admin.GET("/enquiries/:id", h.Enquiry.Get)
			admin.PATCH("/enquiries/:id", h.Enquiry.Update)
			admin.DELETE("/enquiries/:id", h.Enquiry.Delete)

			admin.GET("/applications", h.Application.List)
			admin.GET("/applications/:id", h.Application.Get)
			admin.PATCH("/applications/:id", h.Application.Update)
			admin.DELETE("/applications/:id", h.Application.Delete)

			admin.GET("/offers/all", h.Offer.ListAll)
			admin.POST("/offers", h.Offer.Create)
			admin.GET("/offers/:id", h.Offer.Get)
			admin.PATCH("/offers/:id", h.Offer.Update)
			admin.DELETE("/offers/:id", h.Offer.Delete)

			admin.POST("/products", h.Product.Create)
			admin.PATCH("/products/:id", h.Product.Update)
			admin.DELETE("/products/:id", h.Product.Delete)
		}
	}

	return r
}
