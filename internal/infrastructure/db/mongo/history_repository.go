package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/recipegen/recipe-roulette/internal/core/domain"
)

const historyCollection = "recipe_history"

// HistoryRepository implements ports.HistoryRepository using MongoDB.
// The collection is append-only: rows are inserted whole and never updated
// or deleted, so concurrent appends from different users cannot interleave.
type HistoryRepository struct {
	coll *mongo.Collection
}

func NewHistoryRepository(db *mongo.Database) *HistoryRepository {
	return &HistoryRepository{coll: db.Collection(historyCollection)}
}

func (r *HistoryRepository) Insert(ctx context.Context, entry *domain.HistoryEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"username":     entry.Username,
		"recipe_name":  entry.RecipeName,
		"ingredients":  entry.Ingredients,
		"instructions": entry.Instructions,
		"image_url":    entry.ImageURL,
		"recipe_url":   entry.RecipeURL,
		"timestamp":    entry.Timestamp.UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

func (r *HistoryRepository) ListForUser(ctx context.Context, username string) ([]domain.HistoryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"username": username}, opts)
	if err != nil {
		return nil, fmt.Errorf("find history: %w", err)
	}
	defer cur.Close(ctx)

	var entries []domain.HistoryEntry
	for cur.Next(ctx) {
		var doc struct {
			Username     string    `bson:"username"`
			RecipeName   string    `bson:"recipe_name"`
			Ingredients  string    `bson:"ingredients"`
			Instructions string    `bson:"instructions"`
			ImageURL     string    `bson:"image_url"`
			RecipeURL    string    `bson:"recipe_url"`
			Timestamp    time.Time `bson:"timestamp"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode history entry: %w", err)
		}
		entries = append(entries, domain.HistoryEntry{
			Username:     doc.Username,
			RecipeName:   doc.RecipeName,
			Ingredients:  doc.Ingredients,
			Instructions: doc.Instructions,
			ImageURL:     doc.ImageURL,
			RecipeURL:    doc.RecipeURL,
			Timestamp:    doc.Timestamp.UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return entries, nil
}
