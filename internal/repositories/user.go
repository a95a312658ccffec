package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/readleaf/readleaf-server/internal/logger"
	"github.com/readleaf/readleaf-server/internal/models"
)

const usersCollection = "users"

type UserReadRepository struct {
	coll *mongo.Collection
}

func NewUserReadRepository(db *mongo.Database) *UserReadRepository {
	return &UserReadRepository{coll: db.Collection(usersCollection)}
}

// GetByUsername returns the user with the given username, or nil when no
// such user exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	var user models.UserDB
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&user)

	logger.Log.Infow("users.findOne",
		"username", username,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapError(err)
	}
	return &user, nil
}

type UserWriteRepository struct {
	coll *mongo.Collection
}

func NewUserWriteRepository(db *mongo.Database) *UserWriteRepository {
	return &UserWriteRepository{coll: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique indexes on username and email.
// Idempotent, called once at startup.
func (r *UserWriteRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_users_username"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_users_email"),
		},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return wrapError(err)
}

// Insert persists a new user document. The caller assigns the ObjectID up
// front so the token can be issued before the write.
func (r *UserWriteRepository) Insert(ctx context.Context, user *models.UserDB) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, user)

	logger.Log.Infow("users.insertOne",
		"user_id", user.ID.Hex(),
		"username", user.Username,
		"error", err,
	)

	return wrapError(err)
}

// Touch re-saves a user by bumping updated_at. Kept as the login-time
// persistence round trip for later auditing extensions.
func (r *UserWriteRepository) Touch(ctx context.Context, userID primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"updated_at": time.Now().UTC()}},
	)

	logger.Log.Infow("users.updateOne",
		"user_id", userID.Hex(),
		"error", err,
	)

	if err != nil {
		return wrapError(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
