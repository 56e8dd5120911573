package products

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"fiber-marketplace-api/models"
	"fiber-marketplace-api/queries"
	"fiber-marketplace-api/repositories"
	"fiber-marketplace-api/responses"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const requestTimeout = 10 * time.Second

var validate = validator.New()

type Controller struct {
	products repositories.ProductRepository
	baseURL  string
}

func NewController(products repositories.ProductRepository, paginationBaseURL string) *Controller {
	return &Controller{products: products, baseURL: paginationBaseURL}
}

type productUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Brand       *string  `json:"brand"`
	ImageUrl    *string  `json:"imageUrl"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
}

func (u productUpdate) applyTo(product *models.Product) {
	if u.Name != nil {
		product.Name = *u.Name
	}
	if u.Description != nil {
		product.Description = *u.Description
	}
	if u.Brand != nil {
		product.Brand = *u.Brand
	}
	if u.ImageUrl != nil {
		product.ImageUrl = *u.ImageUrl
	}
	if u.Price != nil {
		product.Price = u.Price
	}
	if u.Category != nil {
		product.Category = *u.Category
	}
}

func (ctrl *Controller) GetAllProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	products, err := ctrl.products.FindAll(ctx)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

func (ctrl *Controller) GetProductsPaginated(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	values, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return responses.BadRequest("Invalid query string")
	}
	query := queries.Parse(values)

	total, page, err := ctrl.products.FindPage(ctx, query)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"links":         query.Links(ctrl.baseURL, total),
		"totalProducts": total,
		"totalPages":    queries.TotalPages(total, query.Limit),
		"products":      page,
	})
}

func (ctrl *Controller) GetProduct(c *fiber.Ctx) error {
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
	return c.Status(fiber.StatusOK).JSON(product)
}

func (ctrl *Controller) CreateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return responses.BadRequest("Invalid request format")
	}
	if err := validate.Struct(product); err != nil {
		return responses.BadRequest(err.Error())
	}

	insertedID, err := ctrl.products.Insert(ctx, &product)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"_id": insertedID})
}

func (ctrl *Controller) UpdateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		return responses.BadRequest("Invalid product ID format")
	}

	var update productUpdate
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

	update.applyTo(product)
	if err := validate.Struct(product); err != nil {
		return responses.BadRequest(err.Error())
	}

	if err := ctrl.products.Replace(ctx, productID, product); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return responses.NotFound(fmt.Sprintf("Product with ID %s not found", c.Params("productId")))
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

// DeleteProduct removes the product by id. Cart line items referencing the
// product are left untouched.
func (ctrl *Controller) DeleteProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		return responses.BadRequest("Invalid product ID format")
	}

	if err := ctrl.products.Delete(ctx, productID); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return responses.NotFound(fmt.Sprintf("Product with ID %s not found", c.Params("productId")))
		}
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
