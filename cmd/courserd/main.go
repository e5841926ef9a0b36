package main

import (
	"context"
	"log/slog"

	"ajou-backend/lib/browser"
	"ajou-backend/lib/configutil"
	"ajou-backend/lib/coursestore"
	"ajou-backend/lib/mongoutil"
	"ajou-backend/lib/restyutil"
	"ajou-backend/lib/scrapers/mhaksa"
	"ajou-backend/lib/serviceutil"
	"ajou-backend/lib/telemetry"
	"ajou-backend/lib/timezone"
	"ajou-backend/services/coursesync"

	"github.com/robfig/cron/v3"
)

// weekday mornings, shortly after the portal's nightly maintenance
const defaultSchedule = "30 9 * * 1-5"

func main() {
	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	if config.Schedule == "" {
		config.Schedule = defaultSchedule
	}

	telemetry.InitSlog(config.Verbose)

	ctx := serviceutil.SignalContext()

	tel, err := telemetry.SetupFromEnv(ctx, "courserd")
	if err != nil {
		serviceutil.Fatal("failed to set up telemetry", err)
	}
	defer tel.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)

	username, err := configutil.RequireEnv("AJOU_ID")
	if err != nil {
		serviceutil.Fatal("failed to read portal credentials", err)
	}
	password, err := configutil.RequireEnv("AJOU_PASSWORD")
	if err != nil {
		serviceutil.Fatal("failed to read portal credentials", err)
	}
	uri, err := configutil.RequireEnv("MONGODB")
	if err != nil {
		serviceutil.Fatal("failed to read database location", err)
	}

	mongoClient, err := mongoutil.Open(ctx, uri)
	if err != nil {
		serviceutil.Fatal("failed to open database", err)
	}
	defer mongoClient.Disconnect(context.Background())

	if config.DebugHttpDir != "" {
		mhaksa.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(config.DebugHttpDir))
	}

	service := coursesync.NewService(coursesync.Options{
		Fetcher: mhaksa.NewClient(mhaksa.ClientOptions{
			Endpoint: config.Portal.CourseEndpoint,
			Year:     config.Portal.Year,
			Term:     config.Portal.TermCode,
		}),
		Store: coursestore.New(
			mongoClient.Database(config.Mongo.Database),
			config.Portal.TermLabel,
		),
		Username: username,
		Session: func(ctx context.Context) (string, error) {
			return mhaksa.AcquireSession(ctx, mhaksa.LoginOptions{
				EntryUrl:    config.Portal.EntryUrl,
				SsoLoginUrl: config.Portal.SsoLoginUrl,
				HomeUrl:     config.Portal.HomeUrl,
				Username:    username,
				Password:    password,
				Browser: browser.Options{
					UserDataDir: config.Browser.UserDataDir,
					Headless:    config.Browser.Headless,
				},
			})
		},
	})

	run := func() {
		err := service.Run(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "course sync failed", "err", err)
		}
	}

	slog.Info("running initial course sync...")
	run()

	scheduler := cron.New(cron.WithLocation(timezone.Location))
	_, err = scheduler.AddFunc(config.Schedule, run)
	if err != nil {
		serviceutil.Fatal("failed to schedule course sync", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	slog.Info("course sync scheduled", "spec", config.Schedule)
	<-ctx.Done()
}
