package routes

import (
	"rotuprint_back_end/internal/handlers/admin"
	"rotuprint_back_end/internal/handlers/checkout"
	"rotuprint_back_end/internal/handlers/product"
	"rotuprint_back_end/internal/handlers/user"
	"rotuprint_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// Auth
	api.POST("/auth/register", user.Register)
	api.POST("/auth/login", user.Login)
	api.POST("/auth/logout", middleware.AuthRequired(), user.Logout)

	// Catalogue (lecture publique)
	api.GET("/products", product.GetProducts)
	api.GET("/products/search", product.SearchProducts)

	// Panier
	cart := api.Group("/cart", middleware.AuthRequired())
	{
		cart.GET("", user.GetCart)
		cart.POST("/add", user.AddToCart)
		cart.PATCH("/quantity", user.UpdateQuantity)
		cart.DELETE("/clear", user.ClearCart)
	}

	// Checkout
	co := api.Group("/checkout", middleware.AuthRequired())
	{
		co.POST("/coupon", checkout.ApplyCoupon)
		co.DELETE("/coupon", checkout.RemoveCoupon)
		co.POST("/rappel", checkout.ToggleRappel)
		co.GET("/shipping", checkout.GetShippingOptions)
		co.POST("/shipping", checkout.SetShippingMethod)
		co.GET("/cross-sell", checkout.GetBundleOffers)
		co.POST("/cross-sell/accept", checkout.AcceptBundleOffer)
		co.GET("/totals", checkout.GetTotals)
		co.POST("/finalize", checkout.Finalize)
	}

	// Commandes
	orders := api.Group("/orders", middleware.AuthRequired())
	{
		orders.GET("", user.GetMyOrders)
		orders.GET("/:id", user.GetOrderByID)
	}

	// Administration
	adm := api.Group("/admin", middleware.AuthRequired(), middleware.RequireAdmin())
	{
		adm.POST("/coupons", checkout.CreateCoupon)
		adm.GET("/coupons", checkout.GetAllCoupons)
		adm.PUT("/coupons/:id", checkout.UpdateCoupon)
		adm.DELETE("/coupons/:id", checkout.DeleteCoupon)

		adm.POST("/products/import", product.BulkImport)
		adm.PUT("/products/:reference", product.UpsertProduct)
		adm.DELETE("/products", product.DeleteAllProducts)

		adm.PUT("/clients/custom-prices", admin.SetCustomPrices)
	}
}
