package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is embedded in its parent Product and has no independent lifecycle.
// Its ID is assigned when the review is pushed onto the product.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Comment string             `bson:"comment" json:"comment" validate:"required"`
	Rate    *float64           `bson:"rate" json:"rate" validate:"required"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Brand       string             `bson:"brand" json:"brand" validate:"required"`
	ImageUrl    string             `bson:"imageUrl" json:"imageUrl" validate:"required"`
	Price       *float64           `bson:"price" json:"price" validate:"required"`
	Category    string             `bson:"category" json:"category" validate:"required"`
	Reviews     []Review           `bson:"reviews" json:"reviews"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
