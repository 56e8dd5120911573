package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CartStatusActive = "Active"
	CartStatusPaid   = "Paid"
)

type CartProduct struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  *int               `bson:"quantity" json:"quantity" validate:"required"`
}

// Cart is stored in its own collection. User and Cart reference each other
// by identifier only; neither owns the other's lifecycle.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Owner     primitive.ObjectID `bson:"owner" json:"owner"`
	Products  []CartProduct      `bson:"products" json:"products" validate:"dive"`
	Status    string             `bson:"status" json:"status" validate:"required,oneof=Active Paid"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CartSummary is the restricted products+status projection used when a
// user's carts are populated.
type CartSummary struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Products []CartProduct      `bson:"products" json:"products"`
	Status   string             `bson:"status" json:"status"`
}

// PopulatedCart is a cart with its owner resolved to a restricted user
// projection.
type PopulatedCart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Owner     *UserSummary       `bson:"owner" json:"owner"`
	Products  []CartProduct      `bson:"products" json:"products"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
