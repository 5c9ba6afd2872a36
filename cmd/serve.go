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
	"go.uber.org/zap"

	config "taskhub.com/taskhub/internal/configs"
	httpapi "taskhub.com/taskhub/internal/http"
	repository "taskhub.com/taskhub/internal/repositories"
	"taskhub.com/taskhub/internal/services"
	"taskhub.com/taskhub/internal/sessions"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task, project and user management HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		logger := config.NewLogger()
		defer logger.Sync()

		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()
		denylist := sessions.NewRedisDenylist(redisClient, cfg.RedisDenylistPrefix)

		userRepo := repository.NewUserRepository(database)
		projectRepo := repository.NewProjectRepository(database)
		taskRepo := repository.NewTaskRepository(database)

		jwtSecret := []byte(cfg.JWTSecret)
		tokenValidity := time.Duration(cfg.TokenValidityMinutes) * time.Minute

		userService := services.NewUserService(userRepo, denylist, jwtSecret, tokenValidity)
		projectService := services.NewProjectService(projectRepo, userRepo)
		taskService := services.NewTaskService(taskRepo)
		transactionService := services.NewTransactionService(database, userRepo, projectRepo, taskRepo, logger)

		e := echo.New()
		e.HideBanner = true
		e.HTTPErrorHandler = httpapi.ErrorHandler(logger)

		handler := httpapi.NewHandler(userService, projectService, taskService, transactionService)
		httpapi.Register(e, handler, jwtSecret, denylist, cfg.RateLimit)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			logger.Info("HTTP server listening", zap.String("addr", cfg.AppURL))
			if err := e.Start(cfg.AppURL); err != nil {
				logger.Info("server stopped", zap.Error(err))
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
