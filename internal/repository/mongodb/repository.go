package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/fishing-tracker/internal/domain/models"
)

const (
	userProfilesColl = "userProfiles"
	auditLogsColl    = "auditLogs"
)

// Repository defines the document store operations used by the services.
// Owned collections are addressed by the names in models.OwnedCollections.
type Repository interface {
	CreateUserProfile(ctx context.Context, profile models.UserProfile) error
	GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdateProfileCounters(ctx context.Context, userID string, deltas models.CounterDeltas) error
	SetProfileCounters(ctx context.Context, userID string, counters models.ProfileCounters) error
	DeleteUserProfile(ctx context.Context, userID string) (int, error)

	AddCatch(ctx context.Context, c models.Catch) (string, error)
	GetUserCatches(ctx context.Context, userID string) ([]models.Catch, error)
	GetUserCatchesSince(ctx context.Context, userID string, cutoff time.Time) ([]models.Catch, error)
	DeleteCatch(ctx context.Context, userID, catchID string) (*models.Catch, error)

	GetUserGear(ctx context.Context, userID string) ([]models.Gear, error)
	GetWeatherLogs(ctx context.Context, userID string) ([]models.WeatherLog, error)
	GetFishingSpots(ctx context.Context, userID string) ([]models.FishingSpot, error)
	GetSocialInteractions(ctx context.Context, userID string) ([]models.SocialInteraction, error)
	GetRegulations(ctx context.Context, userID string) ([]models.Regulation, error)

	DeleteOwnedDocuments(ctx context.Context, collection, userID string) (int, error)
	CountOwnedDocuments(ctx context.Context, collection, userID string) (int, error)

	ListUserIDs(ctx context.Context) ([]string, error)
	AppendAuditLog(ctx context.Context, entry models.AuditLogEntry) error
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// CreateUserProfile writes the profile document, replacing any existing one.
func (r *MongoDBRepository) CreateUserProfile(ctx context.Context, profile models.UserProfile) error {
	now := time.Now().UTC()
	if profile.JoinDate.IsZero() {
		profile.JoinDate = now
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.LastActive = now

	_, err := r.db.Collection(userProfilesColl).ReplaceOne(ctx,
		bson.M{"_id": profile.UserID}, profile, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to create profile for %s: %w", profile.UserID, err)
	}
	return nil
}

// GetUserProfile returns the profile document, or nil when none exists.
func (r *MongoDBRepository) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Collection(userProfilesColl).FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile for %s: %w", userID, err)
	}
	return &profile, nil
}

// UpdateProfileCounters applies atomic increments to the cached profile counters.
func (r *MongoDBRepository) UpdateProfileCounters(ctx context.Context, userID string, deltas models.CounterDeltas) error {
	update := bson.M{
		"$inc": bson.M{"catches": deltas.Catches, "totalWeight": deltas.TotalWeight},
		"$set": bson.M{"lastActive": time.Now().UTC()},
	}
	_, err := r.db.Collection(userProfilesColl).UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to update counters for %s: %w", userID, err)
	}
	return nil
}

// SetProfileCounters overwrites the cached counters with recomputed values.
func (r *MongoDBRepository) SetProfileCounters(ctx context.Context, userID string, counters models.ProfileCounters) error {
	update := bson.M{"$set": bson.M{
		"catches":     counters.Catches,
		"totalWeight": counters.TotalWeight,
		"species":     counters.Species,
		"gearCount":   counters.GearCount,
		"lastActive":  time.Now().UTC(),
	}}
	_, err := r.db.Collection(userProfilesColl).UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to set counters for %s: %w", userID, err)
	}
	return nil
}

// DeleteUserProfile removes the profile document and reports how many
// documents were removed (0 or 1).
func (r *MongoDBRepository) DeleteUserProfile(ctx context.Context, userID string) (int, error) {
	res, err := r.db.Collection(userProfilesColl).DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete profile for %s: %w", userID, err)
	}
	return int(res.DeletedCount), nil
}

// AddCatch inserts a catch document and returns its id.
func (r *MongoDBRepository) AddCatch(ctx context.Context, c models.Catch) (string, error) {
	if c.ID == "" {
		c.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.db.Collection(models.CollectionCatches).InsertOne(ctx, c)
	if err != nil {
		return "", fmt.Errorf("failed to insert catch: %w", err)
	}
	return c.ID, nil
}

// GetUserCatches returns every catch owned by the user, newest first.
func (r *MongoDBRepository) GetUserCatches(ctx context.Context, userID string) ([]models.Catch, error) {
	return r.findCatches(ctx, bson.M{"userId": userID})
}

// GetUserCatchesSince returns catches with dateTime at or after the cutoff.
// The boundary is inclusive.
func (r *MongoDBRepository) GetUserCatchesSince(ctx context.Context, userID string, cutoff time.Time) ([]models.Catch, error) {
	return r.findCatches(ctx, bson.M{"userId": userID, "dateTime": bson.M{"$gte": cutoff}})
}

func (r *MongoDBRepository) findCatches(ctx context.Context, filter bson.M) ([]models.Catch, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dateTime", Value: -1}})
	cursor, err := r.db.Collection(models.CollectionCatches).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catches: %w", err)
	}
	catches := []models.Catch{}
	if err := cursor.All(ctx, &catches); err != nil {
		return nil, fmt.Errorf("failed to decode catches: %w", err)
	}
	return catches, nil
}

// DeleteCatch removes one catch and returns the removed document so the
// caller can adjust the cached profile counters. Returns nil when the catch
// does not exist.
func (r *MongoDBRepository) DeleteCatch(ctx context.Context, userID, catchID string) (*models.Catch, error) {
	var removed models.Catch
	err := r.db.Collection(models.CollectionCatches).
		FindOneAndDelete(ctx, bson.M{"_id": catchID, "userId": userID}).
		Decode(&removed)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete catch %s: %w", catchID, err)
	}
	return &removed, nil
}

// GetUserGear returns every gear item owned by the user.
func (r *MongoDBRepository) GetUserGear(ctx context.Context, userID string) ([]models.Gear, error) {
	return findOwned[models.Gear](ctx, r.db.Collection(models.CollectionGear), userID)
}

// GetWeatherLogs returns every weather log owned by the user.
func (r *MongoDBRepository) GetWeatherLogs(ctx context.Context, userID string) ([]models.WeatherLog, error) {
	return findOwned[models.WeatherLog](ctx, r.db.Collection(models.CollectionWeatherLogs), userID)
}

// GetFishingSpots returns every saved spot owned by the user.
func (r *MongoDBRepository) GetFishingSpots(ctx context.Context, userID string) ([]models.FishingSpot, error) {
	return findOwned[models.FishingSpot](ctx, r.db.Collection(models.CollectionFishingSpots), userID)
}

// GetSocialInteractions returns every social interaction owned by the user.
func (r *MongoDBRepository) GetSocialInteractions(ctx context.Context, userID string) ([]models.SocialInteraction, error) {
	return findOwned[models.SocialInteraction](ctx, r.db.Collection(models.CollectionSocialInteractions), userID)
}

// GetRegulations returns every regulation note owned by the user.
func (r *MongoDBRepository) GetRegulations(ctx context.Context, userID string) ([]models.Regulation, error) {
	return findOwned[models.Regulation](ctx, r.db.Collection(models.CollectionRegulations), userID)
}

// DeleteOwnedDocuments removes every document owned by the user from one
// collection as a single batch and returns the deleted count. Running it
// against an already-empty collection yields zero and no error.
func (r *MongoDBRepository) DeleteOwnedDocuments(ctx context.Context, collection, userID string) (int, error) {
	res, err := r.db.Collection(collection).DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s for %s: %w", collection, userID, err)
	}
	return int(res.DeletedCount), nil
}

// CountOwnedDocuments counts the documents owned by the user in one collection.
func (r *MongoDBRepository) CountOwnedDocuments(ctx context.Context, collection, userID string) (int, error) {
	n, err := r.db.Collection(collection).CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s for %s: %w", collection, userID, err)
	}
	return int(n), nil
}

// ListUserIDs returns the id of every user with a profile document.
func (r *MongoDBRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	raw, err := r.db.Collection(userProfilesColl).Distinct(ctx, "_id", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list user ids: %w", err)
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// AppendAuditLog appends one record to the audit collection. Records are
// never updated in place.
func (r *MongoDBRepository) AppendAuditLog(ctx context.Context, entry models.AuditLogEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	_, err := r.db.Collection(auditLogsColl).InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to append audit log: %w", err)
	}
	return nil
}

func findOwned[T any](ctx context.Context, coll *mongo.Collection, userID string) ([]T, error) {
	cursor, err := coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", coll.Name(), err)
	}
	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", coll.Name(), err)
	}
	return docs, nil
}
