package noticesync

import (
	"context"
	"errors"
	"testing"

	"ajou-backend/lib/scrapers/notice"
	"ajou-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

// fakeBoard serves notices the way the real client does: newest id
// `top`, a request for n rows returns the n newest, oldest first.
type fakeBoard struct {
	top        int
	fetchCalls []int
	err        error
}

func (f *fakeBoard) Fetch(ctx context.Context, queryOption string, limit int) ([]notice.Notice, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.fetchCalls = append(f.fetchCalls, limit)

	var out []notice.Notice
	for id := f.top - limit + 1; id <= f.top; id++ {
		if id < 1 {
			continue
		}
		out = append(out, notice.Notice{Id: id, Category: "학사", Title: "t", Writer: "w"})
	}
	return out, nil
}

type fakeStore struct {
	latest   int
	hasRows  bool
	inserted [][]notice.Notice
}

func (f *fakeStore) LatestId(ctx context.Context) (int, bool, error) {
	return f.latest, f.hasRows, nil
}

func (f *fakeStore) Insert(ctx context.Context, notices []notice.Notice) error {
	f.inserted = append(f.inserted, notices)
	return nil
}

func TestSyncOnceNothingMissing(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:noticesync")
	defer cleanup()

	board := &fakeBoard{top: 103}
	store := &fakeStore{latest: 103, hasRows: true}

	inserted, err := NewService(board, store, "").SyncOnce(context.Background())
	require.NoError(t, err)
	require.Zero(t, inserted)
	require.Empty(t, store.inserted)
}

func TestSyncOnceFetchesExactlyTheMissingWindow(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:noticesync")
	defer cleanup()

	// persisted max id 103, board at 105: the engine must re-fetch
	// exactly 2 records and insert both
	board := &fakeBoard{top: 105}
	store := &fakeStore{latest: 103, hasRows: true}

	inserted, err := NewService(board, store, "").SyncOnce(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, inserted)

	require.Equal(t, []int{1, 2}, board.fetchCalls)
	require.Len(t, store.inserted, 1)
	require.Equal(t, 104, store.inserted[0][0].Id)
	require.Equal(t, 105, store.inserted[0][1].Id)
}

func TestSyncOnceCursorAheadOfSource(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:noticesync")
	defer cleanup()

	board := &fakeBoard{top: 100}
	store := &fakeStore{latest: 110, hasRows: true}

	inserted, err := NewService(board, store, "").SyncOnce(context.Background())
	require.NoError(t, err)
	require.Zero(t, inserted)
	require.Empty(t, store.inserted)
}

func TestSyncOnceSeedsEmptyCollection(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:noticesync")
	defer cleanup()

	board := &fakeBoard{top: 200}
	store := &fakeStore{}

	inserted, err := NewService(board, store, "").SyncOnce(context.Background())
	require.NoError(t, err)
	require.Equal(t, notice.DefaultLimit, inserted)
	require.Len(t, store.inserted, 1)
}

func TestSyncOnceBoardDown(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:noticesync")
	defer cleanup()

	board := &fakeBoard{err: errors.New("connection refused")}
	store := &fakeStore{latest: 103, hasRows: true}

	_, err := NewService(board, store, "").SyncOnce(context.Background())
	require.Error(t, err)
	require.Empty(t, store.inserted)
}
