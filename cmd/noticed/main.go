package main

import (
	"context"

	"ajou-backend/lib/configutil"
	"ajou-backend/lib/mongoutil"
	"ajou-backend/lib/noticestore"
	"ajou-backend/lib/restyutil"
	"ajou-backend/lib/scrapers/notice"
	"ajou-backend/lib/serviceutil"
	"ajou-backend/lib/telemetry"
	"ajou-backend/services/noticesync"
)

func main() {
	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}

	telemetry.InitSlog(config.Verbose)

	ctx := serviceutil.SignalContext()

	tel, err := telemetry.SetupFromEnv(ctx, "noticed")
	if err != nil {
		serviceutil.Fatal("failed to set up telemetry", err)
	}
	defer tel.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)

	uri, err := configutil.RequireEnv("MONGODB")
	if err != nil {
		serviceutil.Fatal("failed to read database location", err)
	}
	mongoClient, err := mongoutil.Open(ctx, uri)
	if err != nil {
		serviceutil.Fatal("failed to open database", err)
	}
	defer mongoClient.Disconnect(context.Background())

	store := noticestore.New(mongoClient.Database(config.Mongo.Database))
	err = store.EnsureIndexes(ctx)
	if err != nil {
		serviceutil.Fatal("failed to ensure indexes", err)
	}

	if config.DebugHttpDir != "" {
		notice.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(config.DebugHttpDir))
	}
	board := notice.NewClient(config.Notice.BaseLink)

	noticesync.NewService(board, store, config.Notice.Query).Run(ctx)
}
