package routes

import (
	"food-order-api/domain"
	"food-order-api/internal/api/handlers"
	"food-order-api/internal/middleware"
	"food-order-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	RecipeHandler handlers.RecipeHandler
	OrderHandler  handlers.OrderHandler
	UploadHandler handlers.UploadHandler
	Middleware    middleware.Middleware
	JWTService    jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Recipes()
	c.Orders()
	c.Uploads()
}

func (c *Config) GuestRoute() {
	c.App.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": domain.MessageWelcome})
	})
	c.App.Post("/api/register", c.UserHandler.Register)
	c.App.Post("/api/login", c.UserHandler.Login)
}

func (c *Config) User() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Get("/api/users/me", auth, c.UserHandler.Me)
	c.App.Put("/api/users/me", auth, c.UserHandler.UpdateUser)
}

func (c *Config) Recipes() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Get("/api/recipes", auth, c.RecipeHandler.GetRecipes)
	c.App.Post("/api/recipes", auth, c.RecipeHandler.CreateRecipe)
	c.App.Get("/api/recipes/:id", auth, c.RecipeHandler.GetRecipe)
	c.App.Put("/api/recipes/:id", auth, c.RecipeHandler.UpdateRecipe)
	c.App.Delete("/api/recipes/:id", auth, c.RecipeHandler.DeleteRecipe)
}

func (c *Config) Orders() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Get("/api/orders", auth, c.OrderHandler.GetOrders)
	c.App.Post("/api/orders", auth, c.OrderHandler.CreateOrder)
	c.App.Put("/api/orders/:id/complete", auth, c.OrderHandler.CompleteOrder)
}

func (c *Config) Uploads() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Post("/api/upload", auth, c.UploadHandler.Upload)
	// Uploaded images are public so they can be embedded directly.
	c.App.Get("/api/uploads/:filename", c.UploadHandler.ServeUpload)
}
