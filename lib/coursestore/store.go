package coursestore

import (
	"context"
	"fmt"

	"ajou-backend/lib/scrapers/mhaksa"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	db *mongo.Database
	// year-term pair baked into collection names, e.g. "2023-1"
	term string
}

func New(db *mongo.Database, term string) Store {
	return Store{db: db, term: term}
}

func (s Store) collection(category string) *mongo.Collection {
	return s.db.Collection(fmt.Sprintf("course_%s_%s", s.term, category))
}

// List reads back a category's stored records sorted by subject code.
func (s Store) List(ctx context.Context, category string) ([]mhaksa.Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "subject_code", Value: 1}})
	cursor, err := s.collection(category).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	var courses []mhaksa.Course
	err = cursor.All(ctx, &courses)
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// Upsert writes a category's fetched courses by natural key. A row with
// a matching subject code is fully replaced, everything else is
// inserted. Each write is independently atomic, the batch is not
// all-or-nothing.
func (s Store) Upsert(ctx context.Context, category string, courses []mhaksa.Course) (int, error) {
	col := s.collection(category)
	opts := options.Update().SetUpsert(true)

	written := 0
	for _, course := range courses {
		filter := bson.D{{Key: "subject_code", Value: course.SubjectCode}}
		update := bson.D{{Key: "$set", Value: course}}

		_, err := col.UpdateOne(ctx, filter, update, opts)
		if err != nil {
			return written, fmt.Errorf("upserting %s into %s: %w", course.SubjectCode, category, err)
		}
		written++
	}
	return written, nil
}
