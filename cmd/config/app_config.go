package config

import (
	"os"
	"time"

	"github.com/esraghu/milk-delivery-app/internal/api/handlers"
	"github.com/esraghu/milk-delivery-app/internal/api/routes"
	"github.com/esraghu/milk-delivery-app/internal/middleware"
	"github.com/esraghu/milk-delivery-app/internal/utils"
	"github.com/esraghu/milk-delivery-app/pkg/cancellation"
	"github.com/esraghu/milk-delivery-app/pkg/delivery"
	"github.com/esraghu/milk-delivery-app/pkg/jwt"
	"github.com/esraghu/milk-delivery-app/pkg/order"
	"github.com/esraghu/milk-delivery-app/pkg/product"
	"github.com/esraghu/milk-delivery-app/pkg/subscription"
	"github.com/esraghu/milk-delivery-app/pkg/user"
	"github.com/esraghu/milk-delivery-app/pkg/vacation"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	productRepository := product.NewProductRepository(db)
	subscriptionRepository := subscription.NewSubscriptionRepository(db)
	orderRepository := order.NewOrderRepository(db)
	vacationRepository := vacation.NewVacationRepository(db)
	cancellationRepository := cancellation.NewCancellationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	productService := product.NewProductService(productRepository)
	subscriptionService := subscription.NewSubscriptionService(subscriptionRepository, productRepository)
	orderService := order.NewOrderService(orderRepository, productRepository)
	vacationService := vacation.NewVacationService(vacationRepository)
	cancellationService := cancellation.NewCancellationService(cancellationRepository)
	deliveryService := delivery.NewDeliveryService(
		subscriptionRepository,
		orderRepository,
		vacationRepository,
		userRepository,
		productRepository,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	vacationHandler := handlers.NewVacationHandler(vacationService, validator)
	cancellationHandler := handlers.NewCancellationHandler(cancellationService, validator)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		ProductHandler:      productHandler,
		SubscriptionHandler: subscriptionHandler,
		OrderHandler:        orderHandler,
		VacationHandler:     vacationHandler,
		CancellationHandler: cancellationHandler,
		DeliveryHandler:     deliveryHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
