package main

import (
	"context"

	"ajou-backend/cmd/ajou-cli/commands"
	"ajou-backend/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "ajou-cli")
	telemetry.InitSlog(true)
	commands.ExecuteContext(context.Background())
}
