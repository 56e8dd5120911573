package carts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fiber-marketplace-api/models"
	"fiber-marketplace-api/repositories"
	"fiber-marketplace-api/responses"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const requestTimeout = 10 * time.Second

var validate = validator.New()

type Controller struct {
	carts repositories.CartRepository
	users repositories.UserRepository
}

func NewController(carts repositories.CartRepository, users repositories.UserRepository) *Controller {
	return &Controller{carts: carts, users: users}
}

type createCartRequest struct {
	Products []models.CartProduct `json:"products" validate:"dive"`
}

type cartUpdate struct {
	Products *[]models.CartProduct `json:"products"`
	Status   *string               `json:"status"`
}

// GetUserCarts resolves the user's cart references to the restricted
// products+status projection.
func (ctrl *Controller) GetUserCarts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return responses.BadRequest("Invalid user ID format")
	}

	user, err := ctrl.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return responses.NotFound(fmt.Sprintf("User with id %s not found", c.Params("userId")))
		}
		return err
	}

	summaries, err := ctrl.carts.FindSummariesByIDs(ctx, user.Carts)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(summaries)
}

// GetCart returns the cart with its owner resolved to a restricted user
// projection. A dangling owner reference populates to null.
func (ctrl *Controller) GetCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	cartID, err := primitive.ObjectIDFromHex(c.Params("cartId"))
	if err != nil {
		return responses.BadRequest("Invalid cart ID format")
	}

	cart, err := ctrl.carts.FindByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, repositories.ErrCartNotFound) {
			return responses.NotFound(fmt.Sprintf("Cart with id %s not found", c.Params("cartId")))
		}
		return err
	}

	owner, err := ctrl.users.FindSummaryByID(ctx, cart.Owner)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(models.PopulatedCart{
		ID:        cart.ID,
		Owner:     owner,
		Products:  cart.Products,
		Status:    cart.Status,
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	})
}

// CreateCart builds a new Active cart for the user and appends its id to the
// user's carts references. The status in the request body is ignored. If the
// link step fails the freshly inserted cart is deleted again so no orphan is
// left behind.
func (ctrl *Controller) CreateCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return responses.BadRequest("Invalid user ID format")
	}

	if _, err := ctrl.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return responses.NotFound(fmt.Sprintf("User with id %s not found", c.Params("userId")))
		}
		return err
	}

	var req createCartRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.BadRequest("Invalid request format")
	}

	cart := models.Cart{
		Owner:    userID,
		Products: req.Products,
		Status:   models.CartStatusActive,
	}
	if err := validate.Struct(cart); err != nil {
		return responses.BadRequest(err.Error())
	}

	insertedID, err := ctrl.carts.Insert(ctx, &cart)
	if err != nil {
		return err
	}

	if err := ctrl.users.PushCart(ctx, userID, insertedID); err != nil {
		if deleteErr := ctrl.carts.Delete(ctx, insertedID); deleteErr != nil {
			return fmt.Errorf("failed to roll back cart %s: %w", insertedID.Hex(), deleteErr)
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"_id": insertedID})
}

func (ctrl *Controller) UpdateCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	cartID, err := primitive.ObjectIDFromHex(c.Params("cartId"))
	if err != nil {
		return responses.BadRequest("Invalid cart ID format")
	}

	var update cartUpdate
	if err := c.BodyParser(&update); err != nil {
		return responses.BadRequest("Invalid request format")
	}

	cart, err := ctrl.carts.FindByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, repositories.ErrCartNotFound) {
			return responses.NotFound(fmt.Sprintf("Cart with id %s not found", c.Params("cartId")))
		}
		return err
	}

	if update.Products != nil {
		cart.Products = *update.Products
	}
	if update.Status != nil {
		cart.Status = *update.Status
	}
	if err := validate.Struct(cart); err != nil {
		return responses.BadRequest(err.Error())
	}

	if err := ctrl.carts.Replace(ctx, cartID, cart); err != nil {
		if errors.Is(err, repositories.ErrCartNotFound) {
			return responses.NotFound(fmt.Sprintf("Cart with id %s not found", c.Params("cartId")))
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(cart)
}

// DeleteCart removes the cart. The owning user's carts references are not
// retracted.
func (ctrl *Controller) DeleteCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	cartID, err := primitive.ObjectIDFromHex(c.Params("cartId"))
	if err != nil {
		return responses.BadRequest("Invalid cart ID format")
	}

	if err := ctrl.carts.Delete(ctx, cartID); err != nil {
		if errors.Is(err, repositories.ErrCartNotFound) {
			return responses.NotFound(fmt.Sprintf("Cart with id %s not found", c.Params("cartId")))
		}
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
