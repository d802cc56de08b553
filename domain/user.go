package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	UserName string             `bson:"username"`
	Password string             `bson:"password"` // bcrypt hash
	Role     string             `bson:"role"`
}

// UserRecord is the projection of an account safe to return to a client;
// the password hash never leaves the repository layer.
type UserRecord struct {
	UserName string `json:"username"`
	Role     string `json:"role"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByUserName(ctx context.Context, userName string) (*User, error)
	Fetch(ctx context.Context) ([]User, error)
}

type UserListUsecase interface {
	ListUsers(ctx context.Context) ([]UserRecord, error)
}
