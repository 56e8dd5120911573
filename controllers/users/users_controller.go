package users

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
	users repositories.UserRepository
	carts repositories.CartRepository
}

func NewController(users repositories.UserRepository, carts repositories.CartRepository) *Controller {
	return &Controller{users: users, carts: carts}
}

type userUpdate struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	DateOfBirth *string `json:"dateOfBirth"`
	Age         *int    `json:"age"`
	Address     *string `json:"address"`
}

func (u userUpdate) applyTo(user *models.User) {
	if u.FirstName != nil {
		user.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		user.LastName = *u.LastName
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.DateOfBirth != nil {
		user.DateOfBirth = *u.DateOfBirth
	}
	if u.Age != nil {
		user.Age = u.Age
	}
	if u.Address != nil {
		user.Address = *u.Address
	}
}

func (ctrl *Controller) CreateUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return responses.BadRequest("Invalid request format")
	}
	if err := validate.Struct(user); err != nil {
		return responses.BadRequest(err.Error())
	}

	insertedID, err := ctrl.users.Insert(ctx, &user)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"_id": insertedID})
}

// GetAllUsers lists every user with the carts references resolved to the
// restricted products+status projection.
func (ctrl *Controller) GetAllUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	users, err := ctrl.users.FindAll(ctx)
	if err != nil {
		return err
	}

	populated := make([]models.PopulatedUser, 0, len(users))
	for _, user := range users {
		carts, err := ctrl.carts.FindSummariesByIDs(ctx, user.Carts)
		if err != nil {
			return err
		}
		populated = append(populated, models.PopulatedUser{
			ID:          user.ID,
			FirstName:   user.FirstName,
			LastName:    user.LastName,
			Email:       user.Email,
			DateOfBirth: user.DateOfBirth,
			Age:         user.Age,
			Address:     user.Address,
			Carts:       carts,
			CreatedAt:   user.CreatedAt,
			UpdatedAt:   user.UpdatedAt,
		})
	}
	return c.Status(fiber.StatusOK).JSON(populated)
}

// GetUser returns the full user document with the carts field left as raw
// identifiers.
func (ctrl *Controller) GetUser(c *fiber.Ctx) error {
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
	return c.Status(fiber.StatusOK).JSON(user)
}

func (ctrl *Controller) UpdateUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return responses.BadRequest("Invalid user ID format")
	}

	var update userUpdate
	if err := c.BodyParser(&update); err != nil {
		return responses.BadRequest("Invalid request format")
	}

	user, err := ctrl.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return responses.NotFound(fmt.Sprintf("User with id %s not found", c.Params("userId")))
		}
		return err
	}

	update.applyTo(user)
	if err := validate.Struct(user); err != nil {
		return responses.BadRequest(err.Error())
	}

	if err := ctrl.users.Replace(ctx, userID, user); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return responses.NotFound(fmt.Sprintf("User with id %s not found", c.Params("userId")))
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// DeleteUser removes the user. The user's carts stay behind in the carts
// collection.
func (ctrl *Controller) DeleteUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return responses.BadRequest("Invalid user ID format")
	}

	if err := ctrl.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return responses.NotFound(fmt.Sprintf("User with id %s not found", c.Params("userId")))
		}
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
