// Package cartstore keeps each user's cart as one MongoDB document. Saves
// replace the whole document and are guarded by a version counter.
package cartstore

import (
	"context"
	"errors"

	"cosme-store/internal/domain/cart"
	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/usecase/shared"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoCartStore struct {
	collection *mongo.Collection
	clock      clock.Clock
}

func NewMongoCartStore(db *mongo.Database, collection string, clk clock.Clock) *MongoCartStore {
	return &MongoCartStore{
		collection: db.Collection(collection),
		clock:      clk,
	}
}

func (s *MongoCartStore) Load(ctx context.Context, userID uuid.UUID) (shared.StoredCart, error) {
	var doc cartDocument
	err := s.collection.FindOne(ctx, bson.M{"user_id": userID.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return shared.StoredCart{Ledger: cart.NewLedger()}, nil
	}
	if err != nil {
		return shared.StoredCart{}, errs.Wrap(err, "failed to load cart")
	}
	return shared.StoredCart{
		Ledger:   doc.ledger(),
		Vouchers: doc.Vouchers,
		Version:  doc.Version,
	}, nil
}

// Save writes the whole cart when the stored version still equals c.Version.
// A first save inserts; losing either race yields ErrCartVersionConflict.
func (s *MongoCartStore) Save(ctx context.Context, userID uuid.UUID, c shared.StoredCart) (int64, error) {
	doc := toDocument(userID, c, s.clock.Now())
	next := c.Version + 1
	doc.Version = next

	if c.Version == 0 {
		_, err := s.collection.InsertOne(ctx, doc)
		if mongo.IsDuplicateKeyError(err) {
			return 0, shared.ErrCartVersionConflict
		}
		if err != nil {
			return 0, errs.Wrap(err, "failed to create cart")
		}
		return next, nil
	}

	filter := bson.M{"user_id": doc.UserID, "version": c.Version}
	update := bson.M{
		"$set": bson.M{
			"items":      doc.Items,
			"selected":   doc.Selected,
			"vouchers":   doc.Vouchers,
			"updated_at": doc.UpdatedAt,
		},
		"$inc": bson.M{"version": 1},
	}
	res, err := s.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, errs.Wrap(err, "failed to save cart")
	}
	if res.MatchedCount == 0 {
		return 0, shared.ErrCartVersionConflict
	}
	return next, nil
}

func (s *MongoCartStore) CreateIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errs.Wrap(err, "failed to create cart indexes")
	}
	return nil
}
