package userRepo

import (
	"fmt"
	"time"

	"triptailor/database/repository"
	"triptailor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo(db *mongo.Database) UserRepository {
	repo := &MongoUserRepo{coll: db.Collection("users")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes enforces email uniqueness so concurrent first-time upserts
// cannot produce two documents for the same address.
func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := repository.NewContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by its email address.
func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return &user, nil
}

// Search retrieves users filtered by a case-insensitive name substring.
func (r *MongoUserRepo) Search(name string) ([]models.User, error) {
	filter := bson.M{}
	if name != "" {
		filter["name"] = bson.M{"$regex": name, "$options": "i"}
	}
	return r.find(filter)
}

// TourGuides retrieves all users with the tour guide role.
func (r *MongoUserRepo) TourGuides() ([]models.User, error) {
	return r.find(bson.M{"role": models.RoleTourGuide})
}

func (r *MongoUserRepo) find(filter bson.M) ([]models.User, error) {
	ctx, cancel := repository.NewContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, u)
	}
	return users, nil
}

// SetStatus patches only the status field of the user with that email.
func (r *MongoUserRepo) SetStatus(email, status string) (*mongo.UpdateResult, error) {
	return r.SetFields(email, bson.M{"status": status})
}

// SetFields patches the given fields on the user with that email.
func (r *MongoUserRepo) SetFields(email string, fields bson.M) (*mongo.UpdateResult, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to update user with email %s: %w", email, err)
	}
	return result, nil
}

// UpsertByEmail writes the full document keyed on email with the upsert
// option, so racing first-time saves converge on a single record.
func (r *MongoUserRepo) UpsertByEmail(user *models.User) (*mongo.UpdateResult, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	opts := options.Update().SetUpsert(true)
	result, err := r.coll.UpdateOne(ctx, bson.M{"email": user.Email}, bson.M{"$set": user}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user with email %s: %w", user.Email, err)
	}
	return result, nil
}

// Promote sets the role and forces status to accepted.
func (r *MongoUserRepo) Promote(id primitive.ObjectID, role string) (*mongo.UpdateResult, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"role":      role,
		"status":    models.StatusAccepted,
		"updatedAt": time.Now(),
	}}
	result, err := r.coll.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("failed to promote user %s: %w", id.Hex(), err)
	}
	return result, nil
}

// Count returns the number of user documents.
func (r *MongoUserRepo) Count() (int64, error) {
	ctx, cancel := repository.NewContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
