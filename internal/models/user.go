package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is created on first sign-in; the identity provider has already
// verified the name/email pair before it reaches us.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Credits   int                `bson:"credits" json:"credits"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
