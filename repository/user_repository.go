package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fionaabad/AniMatch/domain"
	"github.com/fionaabad/AniMatch/mongo"
	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepository struct {
	database   mongo.Database
	collection string
}

func NewUserRepository(db mongo.Database, collection string) domain.UserRepository {
	return &userRepository{
		database:   db,
		collection: collection,
	}
}

func (ur *userRepository) Create(ctx context.Context, user *domain.User) error {
	collection := ur.database.Collection(ur.collection)

	n, err := collection.CountDocuments(ctx, bson.M{"username": user.UserName})
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if n > 0 {
		return domain.ErrUserAlreadyExists
	}

	_, err = collection.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (ur *userRepository) Fetch(ctx context.Context) ([]domain.User, error) {
	collection := ur.database.Collection(ur.collection)

	// The hash stays in the database even for internal callers.
	opts := options.Find().SetProjection(bson.D{{Key: "password", Value: 0}})
	cursor, err := collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var users []domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (ur *userRepository) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	collection := ur.database.Collection(ur.collection)

	var user domain.User
	err := collection.FindOne(ctx, bson.M{"username": userName}).Decode(&user)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}
