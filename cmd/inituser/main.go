// Command inituser creates an account out of band:
//
//	inituser <username> <password>
package main

import (
	"context"
	"errors"
	"fmt"
	"food-order-api/cmd/config"
	migration "food-order-api/cmd/database/migrate"
	"food-order-api/domain"
	"food-order-api/internal/utils"
	"food-order-api/pkg/jwt"
	"food-order-api/pkg/user"
	"os"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: inituser <username> <password>")
		os.Exit(1)
	}
	username, password := os.Args[1], os.Args[2]

	utils.LoadConfig()
	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	userService := user.NewUserService(user.NewUserRepository(db), jwt.NewJWTService())
	err = userService.Register(context.Background(), domain.RegisterRequest{
		Username: username,
		Password: password,
	})
	switch {
	case errors.Is(err, domain.ErrUsernameExists):
		fmt.Printf("User '%s' already exists!\n", username)
	case err != nil:
		log.Fatalf("error creating user: %v", err)
	default:
		fmt.Printf("User '%s' created successfully!\n", username)
	}
}
