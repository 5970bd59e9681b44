package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/mpilhlt/inference-stubs/internal/handlers"
	"github.com/mpilhlt/inference-stubs/internal/logging"
	"github.com/mpilhlt/inference-stubs/internal/models"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	huma "github.com/danielgtaylor/huma/v2"
)

func main() {
	// Options can also come from SERVICE_* variables in a local .env file
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded, using OS environment", slog.Any("err", err))
	}

	// Run the CLI. When passed no commands, it starts the server.
	newCLI().Run()
}

// newCLI builds the CLI app. The options callback runs before every
// command, so it must not write to stdout.
func newCLI() humacli.CLI {
	var api huma.API

	cli := humacli.New(func(hooks humacli.Hooks, options *models.Options) {
		logging.InitLogger(options.Debug)

		if !slices.Contains(handlers.Services(), options.Service) {
			slog.Error("Unknown service",
				slog.String("service", options.Service),
				slog.Any("valid", handlers.Services()))
			os.Exit(1)
		}

		// Create a new router & API
		router := http.NewServeMux()
		var err error
		api, err = handlers.NewAPI(options.Service, router, slog.Default())
		if err != nil {
			slog.Error("Unable to add routes", slog.Any("err", err))
			os.Exit(1)
		}

		// Create the HTTP server
		server := &http.Server{
			Addr:              fmt.Sprintf("%s:%d", options.Host, options.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Start server
		hooks.OnStart(func() {
			slog.Info("Starting inference service",
				slog.String("service", options.Service),
				slog.String("addr", server.Addr),
				slog.Bool("debug", options.Debug))
			err := server.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Listen error", slog.Any("err", err))
				os.Exit(1)
			}
			slog.Info("API server stopped", slog.String("addr", server.Addr))
		})

		// Gracefully shutdown server
		hooks.OnStop(func() {
			slog.Info("Shutting down API server", slog.String("service", options.Service))

			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(options.ShutdownTimeout)*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				slog.Error("Shutdown error", slog.Any("err", err))
			}
		})
	})

	cli.Root().Use = "inference-stubs"
	cli.Root().AddCommand(&cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document of the selected service as YAML",
		Run: func(cmd *cobra.Command, args []string) {
			b, err := api.OpenAPI().YAML()
			if err != nil {
				slog.Error("Unable to render OpenAPI document", slog.Any("err", err))
				os.Exit(1)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(b))
		},
	})

	return cli
}
