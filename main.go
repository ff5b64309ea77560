package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bistro-boss-server/constants"
	"bistro-boss-server/controllers"
	"bistro-boss-server/infra"
	"bistro-boss-server/middlewares"
	"bistro-boss-server/repositories"
	"bistro-boss-server/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.mongodb.org/mongo-driver/mongo"
)

func setupRouter(db *mongo.Database) *gin.Engine {
	authService := services.NewAuthService()
	authController := controllers.NewAuthController(authService)

	userRepository := repositories.NewUserRepository(db)
	userService := services.NewUserService(userRepository)
	userController := controllers.NewUserController(userService)

	menuRepository := repositories.NewMenuRepository(db)
	menuService := services.NewMenuService(menuRepository)
	menuController := controllers.NewMenuController(menuService)

	reviewRepository := repositories.NewReviewRepository(db)
	reviewService := services.NewReviewService(reviewRepository)
	reviewController := controllers.NewReviewController(reviewService)

	cartRepository := repositories.NewCartRepository(db)
	cartService := services.NewCartService(cartRepository)
	cartController := controllers.NewCartController(cartService)

	paymentRepository := repositories.NewPaymentRepository(db)
	paymentService := services.NewPaymentService(paymentRepository, cartRepository)
	paymentController := controllers.NewPaymentController(paymentService)

	statsService := services.NewStatsService(userRepository, menuRepository, paymentRepository)
	statsController := controllers.NewStatsController(statsService)

	requireAuth := middlewares.AuthMiddleware(authService)
	requireAdmin := middlewares.RequireRoles(userService, constants.RoleAdmin)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "Hello World!")
	})

	r.POST("/jwt", authController.IssueToken)

	r.POST("/users", userController.Register)
	userRouterWithAuth := r.Group("/allUsers", requireAuth)
	userRouterWithAdminAuth := r.Group("/allUsers", requireAuth, requireAdmin)
	userRouterWithAdminAuth.GET("", userController.FindAll)
	userRouterWithAdminAuth.DELETE("/:id", userController.Delete)
	userRouterWithAdminAuth.PATCH("/admin/:id", userController.PromoteToAdmin)
	userRouterWithAuth.GET("/admin/:email", userController.CheckAdmin)

	menuRouter := r.Group("/menu")
	menuRouterWithAdminAuth := r.Group("/menu", requireAuth, requireAdmin)
	menuRouter.GET("", menuController.FindAll)
	menuRouter.GET("/:id", menuController.FindById)
	menuRouterWithAdminAuth.POST("", menuController.Create)
	menuRouterWithAdminAuth.PATCH("/:id", menuController.Update)
	menuRouterWithAdminAuth.DELETE("/:id", menuController.Delete)

	r.GET("/reviews", reviewController.FindAll)

	cartRouter := r.Group("/carts")
	cartRouter.POST("", cartController.Add)
	cartRouter.GET("", cartController.FindByEmail)
	cartRouter.DELETE("/:id", cartController.Delete)

	r.POST("/create-payment-intent", paymentController.CreateIntent)
	r.POST("/payment", paymentController.Record)
	r.GET("/payments/:email", requireAuth, paymentController.FindByEmail)

	statsRouter := r.Group("", requireAuth, requireAdmin)
	statsRouter.GET("/admin-stats", statsController.AdminStats)
	statsRouter.GET("/order-stats", statsController.OrderStats)

	return r
}

func main() {
	infra.Initialize()

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	db := infra.SetupDB()
	r := setupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	if err := db.Client().Disconnect(ctx); err != nil {
		log.Printf("Failed to disconnect from database: %v", err)
	}
	log.Println("Server exited")
}
