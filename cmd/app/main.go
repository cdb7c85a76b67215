package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"deliveryorders/cmd"
	"deliveryorders/internal/core/application/usecases/commands"
	"deliveryorders/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	log.SetOutput(stdout)

	cfg, err := cmd.ParseArgs(args, cmd.DefaultsFromEnv(os.Getenv))
	if err != nil {
		log.Errorf("Invalid arguments:\n%v", err)
		return exitUsage
	}

	// .env is read only once the arguments are valid. It is optional and
	// real environment variables take precedence.
	if godotenv.Load(".env") == nil {
		if cfg, err = cmd.ParseArgs(args, cmd.DefaultsFromEnv(os.Getenv)); err != nil {
			log.Errorf("Invalid arguments:\n%v", err)
			return exitUsage
		}
	}

	command, err := commands.NewFilterOrdersCommand(
		cfg.CityDistrict,
		cfg.FirstDeliveryDateTime,
		cfg.OrdersFile,
		cfg.DeliveryOrder,
	)
	if err != nil {
		log.Errorf("Invalid arguments:\n%v", err)
		return exitUsage
	}

	zapLogger, closeLog, err := logger.New(cfg.DeliveryLog, cfg.Verbose, stdout)
	if err != nil {
		log.Errorf("Failed to open log file %s: %v", cfg.DeliveryLog, err)
		return exitFailure
	}
	defer func() {
		if err := closeLog(); err != nil {
			log.Errorf("Failed to close log file %s: %v", cfg.DeliveryLog, err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Error("Failed to connect to match store", zap.Error(err))
		return exitFailure
	}
	defer func() {
		if err := app.Close(); err != nil {
			zapLogger.Warn("Failed to close match store", zap.Error(err))
		}
	}()

	handler := app.CreateFilterOrdersCommandHandler()
	if _, err := handler.Handle(ctx, command); err != nil {
		return exitFailure
	}

	return exitOK
}
