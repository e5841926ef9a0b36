package noticestore

import (
	"context"
	"os"
	"testing"
	"time"

	"ajou-backend/lib/mongoutil"
	"ajou-backend/lib/scrapers/notice"
	"ajou-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

// runs against a real mongod, gated on MONGODB_TEST_URI so the unit
// suite stays self-contained
func TestStoreIntegration(t *testing.T) {
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI is not set")
	}

	cleanup := telemetry.SetupForTesting("test:noticestore")
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	client, err := mongoutil.Open(ctx, uri)
	require.NoError(t, err)
	defer client.Disconnect(ctx)

	db := client.Database("ajou_test_noticestore")
	defer db.Drop(ctx)

	store := New(db)
	require.NoError(t, store.EnsureIndexes(ctx))

	_, found, err := store.LatestId(ctx)
	require.NoError(t, err)
	require.False(t, found)

	err = store.Insert(ctx, []notice.Notice{
		{Id: 101, Category: "학사", Title: "a", Date: "2023-03-01", Writer: "w"},
		{Id: 103, Category: "장학", Title: "b", Date: "2023-03-02", Writer: "w"},
	})
	require.NoError(t, err)

	latest, found, err := store.LatestId(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 103, latest)

	// the unique index must reject a duplicate natural key
	err = store.Insert(ctx, []notice.Notice{{Id: 103, Title: "dup"}})
	require.Error(t, err)
}
