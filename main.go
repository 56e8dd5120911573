package main

import (
	"context"
	"time"

	"fiber-marketplace-api/configs"
	cartControllers "fiber-marketplace-api/controllers/carts"
	productControllers "fiber-marketplace-api/controllers/products"
	userControllers "fiber-marketplace-api/controllers/users"
	"fiber-marketplace-api/repositories"
	"fiber-marketplace-api/responses"
	"fiber-marketplace-api/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	app := fiber.New(fiber.Config{
		ErrorHandler: responses.ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
	}))
	app.Use(logger.New())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := repositories.Connect(ctx, configs.EnvMongoURI())
	if err != nil {
		logrus.WithError(err).Fatal("Could not connect to MongoDB")
	}
	logrus.Info("Connected to MongoDB")

	productRepo := repositories.NewMongoProductRepository(configs.GetCollection(client, "products"))
	userRepo := repositories.NewMongoUserRepository(configs.GetCollection(client, "users"))
	cartRepo := repositories.NewMongoCartRepository(configs.GetCollection(client, "carts"))

	productCtrl := productControllers.NewController(productRepo, configs.EnvPaginationBaseURL())
	userCtrl := userControllers.NewController(userRepo, cartRepo)
	cartCtrl := cartControllers.NewController(cartRepo, userRepo)

	routes.ProductsRoute(app, productCtrl)
	routes.UsersRoute(app, userCtrl, cartCtrl)

	for _, group := range app.Stack() {
		for _, route := range group {
			logrus.WithFields(logrus.Fields{
				"method": route.Method,
				"path":   route.Path,
			}).Info("Registered endpoint")
		}
	}

	port := configs.EnvPort()
	logrus.Info("Server is up and running on port " + port)
	if err := app.Listen(":" + port); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
