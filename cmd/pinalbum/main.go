package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/GoArmGo/PinAlbum/internal/app"
	"github.com/GoArmGo/PinAlbum/internal/di"
)

func main() {
	modeFlag := flag.String("mode", string(app.ModeServer), "Режим запуска приложения: server или worker")
	flag.Parse()

	// bootstrap-логгер (используется только на этапе инициализации т.к еще не создал slogger)
	bootstrapLogger := slog.New(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	mode, err := app.ParseMode(*modeFlag)
	if err != nil {
		bootstrapLogger.Error("invalid mode", "error", err)
		os.Exit(2)
	}
	bootstrapLogger.Info("starting application", "mode", mode)

	ctx := context.Background()

	application, err := di.BuildApp(ctx, mode)
	if err != nil {
		bootstrapLogger.Error("failed to build app", "error", err)
		os.Exit(1)
	}

	logger := application.LoggerIns()
	if err := application.Run(ctx, mode); err != nil {
		logger.Error("application run failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}
