package noticesync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ajou-backend/lib/scrapers/notice"
	"ajou-backend/lib/telemetry"
	"ajou-backend/lib/timezone"

	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("ajou.services.noticesync")

// Fetcher is the board client surface the engine needs. Results are
// oldest first.
type Fetcher interface {
	Fetch(ctx context.Context, queryOption string, limit int) ([]notice.Notice, error)
}

// Store is the persistence surface: a derived max-id cursor and an
// append batch.
type Store interface {
	LatestId(ctx context.Context) (id int, found bool, err error)
	Insert(ctx context.Context, notices []notice.Notice) error
}

const (
	successRest = time.Minute * 30
	failureRest = time.Minute * 5
)

type Service struct {
	fetcher Fetcher
	store   Store
	query   string

	// swapped out in tests
	now func() time.Time
}

func NewService(fetcher Fetcher, store Store, query string) Service {
	if query == "" {
		query = notice.DefaultQuery
	}
	return Service{
		fetcher: fetcher,
		store:   store,
		query:   query,
		now:     timezone.Now,
	}
}

// SyncOnce runs one incremental cycle: read the cursor, probe the board
// for its newest id, fetch exactly the missing window and append it.
func (s Service) SyncOnce(ctx context.Context) (inserted int, err error) {
	ctx, span := tracer.Start(ctx, "SyncOnce")
	defer span.End()

	latest, found, err := s.store.LatestId(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "cursor read failed")
		return 0, err
	}

	probe, err := s.fetcher.Fetch(ctx, s.query, 1)
	if err != nil {
		span.SetStatus(codes.Error, "board probe failed")
		return 0, err
	}
	if len(probe) == 0 {
		span.SetStatus(codes.Error, "board probe came back empty")
		return 0, fmt.Errorf("board returned no rows for query %q", s.query)
	}
	freshest := probe[len(probe)-1].Id

	if !found {
		// first run against an empty collection: seed with the default
		// page instead of trying to backfill the whole board
		seed, err := s.fetcher.Fetch(ctx, s.query, notice.DefaultLimit)
		if err != nil {
			return 0, err
		}
		err = s.store.Insert(ctx, seed)
		if err != nil {
			span.SetStatus(codes.Error, "seed insert failed")
			return 0, err
		}
		slog.InfoContext(ctx, "seeded empty notice collection", "count", len(seed))
		return len(seed), nil
	}

	missing := freshest - latest
	if missing < 0 {
		// persisted cursor ahead of the source, likely a board rollback;
		// treated as nothing to do rather than guessed at
		slog.WarnContext(
			ctx, "persisted cursor is ahead of the source",
			"persisted", latest, "source", freshest,
		)
		return 0, nil
	}
	if missing == 0 {
		return 0, nil
	}

	batch, err := s.fetcher.Fetch(ctx, s.query, missing)
	if err != nil {
		span.SetStatus(codes.Error, "window fetch failed")
		return 0, err
	}
	err = s.store.Insert(ctx, batch)
	if err != nil {
		span.SetStatus(codes.Error, "batch insert failed")
		return 0, err
	}
	return len(batch), nil
}

// Run is the long-lived polling loop. Cycle failures rest briefly and
// retry, they never terminate the loop; only context cancellation does.
func (s Service) Run(ctx context.Context) {
	for {
		now := s.now()

		if wake, resting := NextWake(now); resting {
			slog.InfoContext(
				ctx, "outside polling window, resting",
				"until", wake.Format(time.RFC1123),
			)
			if !sleepUntil(ctx, now, wake) {
				return
			}
			continue
		}

		inserted, err := s.SyncOnce(ctx)
		var rest time.Duration
		if err != nil {
			slog.ErrorContext(ctx, "sync cycle failed", "err", err)
			rest = failureRest
		} else {
			slog.InfoContext(ctx, "sync cycle done", "inserted", inserted)
			rest = successRest
		}

		if !sleepUntil(ctx, s.now(), s.now().Add(rest)) {
			return
		}
	}
}
