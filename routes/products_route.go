package routes

import (
	controllers "fiber-marketplace-api/controllers/products"

	"github.com/gofiber/fiber/v2"
)

func ProductsRoute(app *fiber.App, ctrl *controllers.Controller) {
	app.Get("/products", ctrl.GetAllProducts)

	// literal segment must be registered before the :productId parameter
	app.Get("/products/paginate", ctrl.GetProductsPaginated)

	app.Get("/products/:productId", ctrl.GetProduct)
	app.Post("/products", ctrl.CreateProduct)
	app.Put("/products/:productId", ctrl.UpdateProduct)
	app.Delete("/products/:productId", ctrl.DeleteProduct)

	app.Get("/products/:productId/reviews", ctrl.GetProductReviews)
	app.Get("/products/:productId/reviews/:reviewId", ctrl.GetProductReview)
	app.Post("/products/:productId/reviews", ctrl.AddProductReview)
	app.Put("/products/:productId/reviews/:reviewId", ctrl.UpdateProductReview)
	app.Delete("/products/:productId/reviews/:reviewId", ctrl.DeleteProductReview)
}
