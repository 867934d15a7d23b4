package config

import (
	"context"
	"food-order-api/internal/api/handlers"
	"food-order-api/internal/api/routes"
	"food-order-api/internal/middleware"
	"food-order-api/internal/utils"
	"food-order-api/internal/utils/mailing"
	"food-order-api/internal/utils/storage"
	"food-order-api/pkg/jwt"
	"food-order-api/pkg/order"
	"food-order-api/pkg/recipe"
	"food-order-api/pkg/upload"
	"food-order-api/pkg/user"
	"io"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// AppOptions carries the collaborators NewAppWithOptions wires together.
// Nil Mailer disables kitchen notifications.
type AppOptions struct {
	JWTService   jwt.JWTService
	Storage      storage.FileStorage
	Mailer       mailing.Mailer
	KitchenEmail string
	LogOutput    io.Writer
}

// NewApp builds the application from the loaded configuration.
func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.LoadConfig()

	logFile := utils.GetConfig("LOG_FILE")
	if err := os.MkdirAll(filepath.Dir(logFile), os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	fileStorage, err := storage.New(context.Background(), utils.GetConfig("STORAGE_DRIVER"), utils.GetConfig("UPLOAD_DIR"))
	if err != nil {
		return nil, err
	}

	return NewAppWithOptions(db, AppOptions{
		JWTService:   jwt.NewJWTService(),
		Storage:      fileStorage,
		Mailer:       mailing.NewMailer(mailing.LoadMailConfig()),
		KitchenEmail: utils.GetConfig("KITCHEN_EMAIL"),
		LogOutput:    file,
	}), nil
}

func NewAppWithOptions(db *gorm.DB, opts AppOptions) *fiber.App {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName: "food-order-api",
	})
	validator := utils.Validate

	app.Use(recover.New())
	if opts.LogOutput != nil {
		app.Use(logger.New(logger.Config{
			TimeFormat: "2006-01-02 15:04:05",
			TimeZone:   "Asia/Shanghai",
			Output:     opts.LogOutput,
		}))
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	orderRepository := order.NewOrderRepository(db)

	// Service
	userService := user.NewUserService(userRepository, opts.JWTService)
	recipeService := recipe.NewRecipeService(recipeRepository, opts.Storage)
	orderService := order.NewOrderService(orderRepository, opts.Mailer, opts.KitchenEmail)
	uploadService := upload.NewUploadService(opts.Storage)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	orderHandler := handlers.NewOrderHandler(orderService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	routesConfig := routes.Config{
		App:           app,
		UserHandler:   userHandler,
		RecipeHandler: recipeHandler,
		OrderHandler:  orderHandler,
		UploadHandler: uploadHandler,
		Middleware:    middleware.NewMiddleware(userRepository),
		JWTService:    opts.JWTService,
	}
	routesConfig.Setup()
	return app
}
