package routes

import (
	"os"

	"github.com/curiokart/CurioKart/controllers"
	"github.com/curiokart/CurioKart/middleware"
	"github.com/curiokart/CurioKart/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	// Middleware must be attached before any route is registered; Gin
	// snapshots the handler chain per route at registration time.
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	// The checkout draft lives in the cookie session so back navigation
	// never loses entered fields.
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "curiokart-dev-session-secret"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24, // 1 day
		Path:     "/",
		Secure:   false, // Set to true in production with HTTPS
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("curiokart", store))

	api := router.Group("/v1")
	{
		// Public catalog
		api.GET("/products", controllers.ListProducts)
		api.GET("/products/:id", controllers.GetProduct)

		// Trusted gateway endpoints used by the payment adapter
		paymentAPI := api.Group("/payment")
		{
			paymentAPI.POST("/create-order", controllers.CreateGatewayOrder)
			paymentAPI.POST("/verify", controllers.VerifyGatewayPayment)
		}

		initUserRoutes(api)
		initAdminRoutes(api)
	}

	return router
}

func initUserRoutes(api *gin.RouterGroup) {
	user := api.Group("")
	user.Use(middleware.AuthMiddleware())
	{
		cart := user.Group("/cart")
		{
			cart.GET("", controllers.GetCart)
			cart.POST("/add", controllers.AddToCart)
			cart.PUT("/update", controllers.UpdateCartItem)
			cart.DELETE("/remove/:productId", controllers.RemoveFromCart)
		}

		checkout := user.Group("/checkout")
		{
			checkout.POST("/details", controllers.SubmitCheckoutDetails)
			checkout.GET("/review", controllers.GetCheckoutReview)
			checkout.POST("/back", controllers.CheckoutBack)
			checkout.POST("/payment/initiate", controllers.InitiateCheckoutPayment)
			checkout.POST("/payment/cancel", controllers.CancelCheckoutPayment)
			checkout.POST("/payment/confirm", controllers.ConfirmCheckoutPayment)
		}

		orders := user.Group("/orders")
		{
			orders.GET("", controllers.ListOrders)
			orders.GET("/:id", controllers.GetOrder)
			orders.GET("/:id/invoice", controllers.DownloadInvoice)
		}
	}
}

func initAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/orders", controllers.AdminListOrders)
		admin.GET("/orders/export", controllers.ExportOrdersExcel)
		admin.PUT("/orders/:id/status", controllers.UpdateOrderStatus)
	}
}
