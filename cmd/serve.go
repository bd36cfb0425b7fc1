package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "todolist-app.com/todolist-app/internal/configs"
	httpapi "todolist-app.com/todolist-app/internal/http"
	repository "todolist-app.com/todolist-app/internal/repositories"
	"todolist-app.com/todolist-app/internal/services"
	"todolist-app.com/todolist-app/internal/sessions"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the to-do list HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		database := config.New(cfg.DatabaseDSN)

		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)
		groupRepo := repository.NewGroupRepository(database)
		completedRepo := repository.NewCompletedTaskRepository(database)

		sessionStore := sessions.NewRedisStore(
			redisClient,
			cfg.SessionKeyPrefix,
			time.Duration(cfg.SessionTTLMinutes)*time.Minute,
		)

		authService := services.NewAuthService(userRepo, sessionStore)
		groupService := services.NewGroupService(groupRepo)
		taskService := services.NewTaskService(taskRepo, groupRepo, completedRepo, groupService)
		dashboardService := services.NewDashboardService(taskRepo, completedRepo)

		e := echo.New()

		handler := httpapi.NewHandler(taskService, groupService, dashboardService)
		authHandler := httpapi.NewAuthHandler(authService)
		httpapi.Register(e, handler, authHandler, authService, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
