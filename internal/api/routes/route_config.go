package routes

import (
	"github.com/esraghu/milk-delivery-app/internal/api/handlers"
	"github.com/esraghu/milk-delivery-app/internal/middleware"
	"github.com/esraghu/milk-delivery-app/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	ProductHandler      handlers.ProductHandler
	SubscriptionHandler handlers.SubscriptionHandler
	OrderHandler        handlers.OrderHandler
	VacationHandler     handlers.VacationHandler
	CancellationHandler handlers.CancellationHandler
	DeliveryHandler     handlers.DeliveryHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Users()
	c.Products()
	c.Subscription()
	c.Orders()
	c.Vacations()
	c.Cancellations()
	c.Deliveries()
	c.GuestRoute()
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users")
	{
		users.Post("/login", c.UserHandler.Login)
		users.Post("/signup", c.UserHandler.Signup)
		users.Post("/signup-delivery", c.UserHandler.SignupDelivery)
		users.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		users.Get("", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.ListUsers)
	}
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products", c.Middleware.AuthMiddleware(c.JWTService))
	products.Get("", c.ProductHandler.GetProducts)
	products.Post("", c.ProductHandler.CreateProduct)
}

func (c *Config) Subscription() {
	subscription := c.App.Group("/api/v1/subscription", c.Middleware.AuthMiddleware(c.JWTService))
	subscription.Get("", c.SubscriptionHandler.GetSubscription)
	subscription.Post("", c.SubscriptionHandler.SetSubscription)
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))
	orders.Get("", c.OrderHandler.ListOrders)
	orders.Post("", c.OrderHandler.PlaceOrder)
}

func (c *Config) Vacations() {
	vacations := c.App.Group("/api/v1/vacations", c.Middleware.AuthMiddleware(c.JWTService))
	vacations.Get("", c.VacationHandler.ListVacations)
	vacations.Post("", c.VacationHandler.AddVacation)
}

func (c *Config) Cancellations() {
	cancellations := c.App.Group("/api/v1/cancellations", c.Middleware.AuthMiddleware(c.JWTService))
	cancellations.Get("", c.CancellationHandler.ListCancellations)
	cancellations.Post("", c.CancellationHandler.RecordCancellation)
}

func (c *Config) Deliveries() {
	deliveries := c.App.Group("/api/v1/deliveries", c.Middleware.AuthMiddleware(c.JWTService))
	deliveries.Get("/:date", c.DeliveryHandler.GetDailyManifest)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
