package coursestore

import (
	"context"
	"os"
	"testing"
	"time"

	"ajou-backend/lib/mongoutil"
	"ajou-backend/lib/scrapers/mhaksa"
	"ajou-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUpsertIntegration(t *testing.T) {
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI is not set")
	}

	cleanup := telemetry.SetupForTesting("test:coursestore")
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	client, err := mongoutil.Open(ctx, uri)
	require.NoError(t, err)
	defer client.Disconnect(ctx)

	db := client.Database("ajou_test_coursestore")
	defer db.Drop(ctx)

	store := New(db, "2023-1")
	courses := []mhaksa.Course{
		{SubjectCode: "CSE3030", SubjectKoreanName: "운영체제", CreditPoints: 3},
		{SubjectCode: "CSE2010", SubjectKoreanName: "자료구조", CreditPoints: 3},
	}

	written, err := store.Upsert(ctx, "전공과목", courses)
	require.NoError(t, err)
	require.Equal(t, 2, written)

	// upserting identical data again must not create duplicates
	_, err = store.Upsert(ctx, "전공과목", courses)
	require.NoError(t, err)

	count, err := store.collection("전공과목").CountDocuments(ctx, bson.D{})
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	// a changed payload replaces the row under the same key
	courses[0].SubjectKoreanName = "운영체제및실습"
	_, err = store.Upsert(ctx, "전공과목", courses[:1])
	require.NoError(t, err)

	var stored mhaksa.Course
	err = store.collection("전공과목").
		FindOne(ctx, bson.D{{Key: "subject_code", Value: "CSE3030"}}).
		Decode(&stored)
	require.NoError(t, err)
	require.Equal(t, "운영체제및실습", stored.SubjectKoreanName)
}
