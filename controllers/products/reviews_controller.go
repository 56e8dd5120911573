package products

import (
	"context"
	"errors"
	"fmt"

	"fiber-marketplace-api/models"
	"fiber-marketplace-api/repositories"
	"fiber-marketplace-api/responses"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type reviewUpdate struct {
	Comment *string  `json:"comment"`
	Rate    *float64 `json:"rate"`
}

func (ctrl *Controller) GetProductReviews(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		return responses.BadRequest("Invalid product ID format")
	}

	product, err := ctrl.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return responses.NotFound(fmt.Sprintf("Product with ID %s not found", c.Params("productId")))
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(product.Reviews)
}

// GetProductReview scans the embedded review sequence in insertion order.
func (ctrl *Controller) GetProductReview(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		return responses.BadRequest("Invalid product ID format")
	}
	reviewID, err := primitive.ObjectIDFromHex(c.Params("reviewId"))
	if err != nil {
		return responses.BadRequest("Invalid review ID format")
	}

	product, err := ctrl.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return responses.NotFound(fmt.Sprintf("Product with ID %s not found", c.Params("productId")))
		}
		return err
	}

	for _, review := range product.Reviews {
		if review.ID == reviewID {
			return c.Status(fiber.StatusOK).JSON(review)
		}
	}
	return responses.NotFound(fmt.Sprintf("Review with ID %s not found", c.Params("reviewId")))
}

func (ctrl *Controller) AddProductReview(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		return responses.BadRequest("Invalid product ID format")
	}

	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		return responses.BadRequest("Invalid request format")
	}
	if err := validate.Struct(review); err != nil {
		return responses.BadRequest(err.Error())
	}

	product, err := ctrl.products.PushReview(ctx, productID, review)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return responses.NotFound(fmt.Sprintf("Product with ID %s not found", c.Params("productId")))
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProductReview shallow-merges the provided fields onto the review at
// its position in the sequence, then persists the whole product document.
func (ctrl *Controller) UpdateProductReview(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		return responses.BadRequest("Invalid product ID format")
	}
	reviewID, err := primitive.ObjectIDFromHex(c.Params("reviewId"))
	if err != nil {
		return responses.BadRequest("Invalid review ID format")
	}

	var update reviewUpdate
	if err := c.BodyParser(&update); err != nil {
		return responses.BadRequest("Invalid request format")
	}

	product, err := ctrl.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return responses.NotFound(fmt.Sprintf("Product with ID %s not found", c.Params("productId")))
		}
		return err
	}

	reviewIndex := -1
	for i, review := range product.Reviews {
		if review.ID == reviewID {
			reviewIndex = i
			break
		}
	}
	if reviewIndex == -1 {
		return responses.NotFound(fmt.Sprintf("Review with ID %s not found", c.Params("reviewId")))
	}

	if update.Comment != nil {
		product.Reviews[reviewIndex].Comment = *update.Comment
	}
	if update.Rate != nil {
		product.Reviews[reviewIndex].Rate = update.Rate
	}
	if err := validate.Struct(product.Reviews[reviewIndex]); err != nil {
		return responses.BadRequest(err.Error())
	}

	updated, err := ctrl.products.SetReviews(ctx, productID, product.Reviews)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return responses.NotFound(fmt.Sprintf("Product with ID %s not found", c.Params("productId")))
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(updated)
}

// DeleteProductReview pulls the review out of the sequence. When the review
// id is not present the pull is a no-op and the unchanged product comes
// back with 200.
func (ctrl *Controller) DeleteProductReview(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		return responses.BadRequest("Invalid product ID format")
	}
	reviewID, err := primitive.ObjectIDFromHex(c.Params("reviewId"))
	if err != nil {
		return responses.BadRequest("Invalid review ID format")
	}

	product, err := ctrl.products.PullReview(ctx, productID, reviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return responses.NotFound(fmt.Sprintf("Product with ID %s not found", c.Params("productId")))
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(product)
}
