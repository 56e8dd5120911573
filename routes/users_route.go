package routes

import (
	cartControllers "fiber-marketplace-api/controllers/carts"
	controllers "fiber-marketplace-api/controllers/users"

	"github.com/gofiber/fiber/v2"
)

func UsersRoute(app *fiber.App, ctrl *controllers.Controller, cartCtrl *cartControllers.Controller) {
	app.Post("/users", ctrl.CreateUser)
	app.Get("/users", ctrl.GetAllUsers)

	// the literal carts segment must win over the :userId parameter
	app.Get("/users/carts/:cartId", cartCtrl.GetCart)
	app.Put("/users/carts/:cartId", cartCtrl.UpdateCart)
	app.Delete("/users/carts/:cartId", cartCtrl.DeleteCart)

	app.Get("/users/:userId", ctrl.GetUser)
	app.Put("/users/:userId", ctrl.UpdateUser)
	app.Delete("/users/:userId", ctrl.DeleteUser)

	app.Get("/users/:userId/carts", cartCtrl.GetUserCarts)
	app.Post("/users/:userId/carts", cartCtrl.CreateCart)
}
