package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/agileflow/agileflow-go/internal/application/auth"
	"github.com/agileflow/agileflow-go/internal/application/usecase"
	"github.com/agileflow/agileflow-go/internal/infrastructure/memory"
	httpRouter "github.com/agileflow/agileflow-go/internal/interfaces/http"
	"github.com/agileflow/agileflow-go/pkg/config"
	"github.com/agileflow/agileflow-go/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando mock backend")

	jwtSecret := cfg.JWT.Secret
	if jwtSecret == "" {
		// Backend de desarrollo: un secret fijo evita configurar nada.
		jwtSecret = "agileflow-dev-secret"
	}

	userRepo := memory.NewUserRepository()
	projectRepo := memory.NewProjectRepository()
	sprintRepo := memory.NewSprintRepository()
	taskRepo := memory.NewTaskRepository()
	productBacklogRepo := memory.NewProductBacklogRepository()
	sprintBacklogRepo := memory.NewSprintBacklogRepository()
	storyRepo := memory.NewUserStoryRepository()

	if err := memory.Seed(memory.SeedRepos{
		Users:           userRepo,
		Projects:        projectRepo,
		Sprints:         sprintRepo,
		Tasks:           taskRepo,
		ProductBacklogs: productBacklogRepo,
		SprintBacklogs:  sprintBacklogRepo,
		UserStories:     storyRepo,
	}); err != nil {
		log.Fatal().Err(err).Msg("sembrar datos demo")
	}

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     jwtSecret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo)
	sprintUC := usecase.NewSprintUseCase(sprintRepo, projectRepo)
	taskUC := usecase.NewTaskUseCase(taskRepo, userRepo)
	backlogUC := usecase.NewBacklogUseCase(productBacklogRepo, sprintBacklogRepo, storyRepo, taskRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		ProjectUC: projectUC,
		SprintUC:  sprintUC,
		TaskUC:    taskUC,
		BacklogUC: backlogUC,
		JWTSecret: jwtSecret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("mock backend detenido")
}
