package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	FirstName   string               `bson:"firstName" json:"firstName" validate:"required"`
	LastName    string               `bson:"lastName" json:"lastName" validate:"required"`
	Email       string               `bson:"email" json:"email" validate:"required,email"`
	DateOfBirth string               `bson:"dateOfBirth" json:"dateOfBirth" validate:"required"`
	Age         *int                 `bson:"age" json:"age" validate:"required,min=18,max=65"`
	Address     string               `bson:"address" json:"address" validate:"required"`
	Carts       []primitive.ObjectID `bson:"carts" json:"carts"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// PopulatedUser is a user with the carts references resolved to the
// restricted products+status projection. Returned by the users listing.
type PopulatedUser struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FirstName   string             `bson:"firstName" json:"firstName"`
	LastName    string             `bson:"lastName" json:"lastName"`
	Email       string             `bson:"email" json:"email"`
	DateOfBirth string             `bson:"dateOfBirth" json:"dateOfBirth"`
	Age         *int               `bson:"age" json:"age"`
	Address     string             `bson:"address" json:"address"`
	Carts       []CartSummary      `bson:"carts" json:"carts"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserSummary is the owner projection returned inside a populated cart.
type UserSummary struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Age       int                `bson:"age" json:"age"`
}
