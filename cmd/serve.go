package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"batcave.app/batcave/internal/alfred"
	config "batcave.app/batcave/internal/configs"
	httpapi "batcave.app/batcave/internal/http"
	repository "batcave.app/batcave/internal/repositories"
	"batcave.app/batcave/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the BATCAVE planning API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		if redisClient != nil {
			defer redisClient.Close()
		}

		taskService := services.NewTaskService(repository.NewTaskRepository(database))
		goalService := services.NewGoalService(repository.NewGoalRepository(database))
		objectiveService := services.NewObjectiveService(repository.NewObjectiveRepository(database))
		visionService := services.NewVisionService(repository.NewVisionRepository(database))

		assistant := alfred.NewClient(
			cfg.AlfredAPIKey,
			cfg.AlfredBaseURL,
			cfg.AlfredModel,
			time.Duration(cfg.AlfredTimeoutSeconds)*time.Second,
		)
		alfredService := services.NewAlfredService(
			assistant,
			repository.NewTaskRepository(database),
			redisClient,
			time.Duration(cfg.SuggestionCacheTTLSeconds)*time.Second,
			time.Duration(cfg.AlfredTimeoutSeconds)*time.Second,
		)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		handler := httpapi.NewHandler(taskService, goalService, objectiveService, visionService, alfredService)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
