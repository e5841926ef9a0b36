package coursesync

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ajou-backend/lib/scrapers/mhaksa"
	"ajou-backend/lib/telemetry"

	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("ajou.services.coursesync")

// Fetcher is the authenticated course client surface.
type Fetcher interface {
	FetchCourses(ctx context.Context, category mhaksa.Category, session string) ([]mhaksa.Course, error)
}

// Store persists one category's batch by natural key.
type Store interface {
	Upsert(ctx context.Context, category string, courses []mhaksa.Course) (int, error)
}

const defaultSessionTTL = time.Minute * 20

type Service struct {
	fetcher    Fetcher
	store      Store
	sessions   sessionCache
	categories []mhaksa.Category
}

type Options struct {
	Fetcher Fetcher
	Store   Store
	// username only keys the session cache, credentials live inside
	// the SessionSource
	Username string
	Session  SessionSource
	// defaults to the full bucket table
	Categories []mhaksa.Category
	SessionTTL time.Duration
}

func NewService(opts Options) Service {
	if len(opts.Categories) == 0 {
		opts.Categories = mhaksa.Categories
	}
	if opts.SessionTTL == 0 {
		opts.SessionTTL = defaultSessionTTL
	}
	return Service{
		fetcher:    opts.Fetcher,
		store:      opts.Store,
		sessions:   newSessionCache(opts.Username, opts.SessionTTL, opts.Session),
		categories: opts.Categories,
	}
}

// Run performs one full course sync: one session acquisition reused
// across every category, a full fetch per category, and a per-record
// upsert. An unavailable category is skipped, the run continues;
// storage failures abort the run.
func (s Service) Run(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	token, err := s.sessions.Get(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "session acquisition failed")
		return err
	}

	for _, category := range s.categories {
		courses, err := s.fetcher.FetchCourses(ctx, category, token)
		if errors.Is(err, mhaksa.ErrUnavailable) {
			// a stale token shows up as an unavailable category; drop
			// the cached session so the next run logs in fresh
			s.sessions.Invalidate()
			slog.WarnContext(
				ctx, "category unavailable, skipping",
				"category", category.Name, "err", err,
			)
			continue
		}
		if err != nil {
			slog.WarnContext(
				ctx, "category fetch failed, skipping",
				"category", category.Name, "err", err,
			)
			continue
		}
		if len(courses) == 0 {
			slog.InfoContext(ctx, "category came back empty", "category", category.Name)
			continue
		}

		written, err := s.store.Upsert(ctx, category.Name, courses)
		if err != nil {
			span.SetStatus(codes.Error, "upsert failed")
			return err
		}
		slog.InfoContext(
			ctx, "category synced",
			"category", category.Name, "written", written,
		)
	}

	return nil
}
