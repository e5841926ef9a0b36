package noticestore

import (
	"context"
	"errors"

	"ajou-backend/lib/scrapers/notice"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "notice"

type Store struct {
	col *mongo.Collection
}

func New(db *mongo.Database) Store {
	return Store{col: db.Collection(collectionName)}
}

// LatestId reads the sync cursor: the highest notice id already
// persisted. There is no separate cursor record, it is derived by
// querying for the max key. found is false on an empty collection.
func (s Store) LatestId(ctx context.Context) (id int, found bool, err error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})

	var latest notice.Notice
	err = s.col.FindOne(ctx, bson.D{}, opts).Decode(&latest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return latest.Id, true, nil
}

// Insert appends a batch of genuinely new notices. The collection's
// unique index on id still rejects true duplicates if a batch ever
// overlaps.
func (s Store) Insert(ctx context.Context, notices []notice.Notice) error {
	if len(notices) == 0 {
		return nil
	}
	docs := make([]any, len(notices))
	for i, n := range notices {
		docs[i] = n
	}
	_, err := s.col.InsertMany(ctx, docs)
	return err
}

// EnsureIndexes creates the unique natural-key index, safe to call on
// every startup.
func (s Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
