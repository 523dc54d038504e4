package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agileflow/agileflow-go/internal/application/auth"
	"github.com/agileflow/agileflow-go/internal/application/usecase"
	"github.com/agileflow/agileflow-go/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	UserUC    *usecase.UserUseCase
	ProjectUC *usecase.ProjectUseCase
	SprintUC  *usecase.SprintUseCase
	TaskUC    *usecase.TaskUseCase
	BacklogUC *usecase.BacklogUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Las allow-lists por recurso replican
// las de las vistas del frontend.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/signup", authHandler.Signup)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	manageRoles := RequireRole(entity.RoleProductOwner, entity.RoleScrumMaster, entity.RoleAdmin)

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/search", userHandler.Search)
	users.Get("/role", userHandler.ListByRole)
	users.Get("/count-by-role", userHandler.CountByRole)
	users.Get("/username-available", userHandler.UsernameAvailable)
	users.Get("/email-available", userHandler.EmailAvailable)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Projects (product owner, scrum master, admin)
	projects := protected.Group("/projects", manageRoles)
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Get("/statistics", projectHandler.Statistics)
	projects.Get("/name/:name", projectHandler.GetByName)
	projects.Get("/user/:id", projectHandler.ListByUser)
	projects.Get("/", projectHandler.List)
	projects.Post("/", projectHandler.Create(false))
	projects.Post("/with-owner", projectHandler.Create(true))
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", projectHandler.Update)
	projects.Delete("/:id", projectHandler.Delete)
	projects.Put("/:id/assign-user/:userId", projectHandler.AssignUser)
	projects.Put("/:id/remove-user", projectHandler.RemoveUser)
	projects.Put("/:id/link-backlog/:backlogId", projectHandler.LinkBacklog)
	projects.Put("/:id/unlink-backlog", projectHandler.UnlinkBacklog)

	// Sprints (product owner, scrum master, admin)
	sprints := protected.Group("/sprints", manageRoles)
	sprintHandler := NewSprintHandler(deps.SprintUC)
	sprints.Get("/active", sprintHandler.ListActive)
	sprints.Get("/upcoming", sprintHandler.ListUpcoming)
	sprints.Get("/completed", sprintHandler.ListCompleted)
	sprints.Get("/project/:id", sprintHandler.ListByProject)
	sprints.Get("/", sprintHandler.List)
	sprints.Post("/", sprintHandler.Create)
	sprints.Get("/:id", sprintHandler.GetByID)
	sprints.Put("/:id", sprintHandler.Update)
	sprints.Delete("/:id", sprintHandler.Delete)
	sprints.Post("/:id/assign/:backlogId", sprintHandler.AssignToBacklog)
	sprints.Post("/:id/remove-backlog", sprintHandler.RemoveFromBacklog)

	// Tasks (todos los roles autenticados)
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Get("/", taskHandler.List)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)
	tasks.Post("/:id/assign/:userId", taskHandler.Assign)
	tasks.Post("/:id/log-hours", taskHandler.LogHours)
	tasks.Post("/:id/update-status", taskHandler.UpdateStatus)
	tasks.Post("/:id/comments", taskHandler.AddComment)

	// Backlogs
	backlogHandler := NewBacklogHandler(deps.BacklogUC)

	productBacklogs := protected.Group("/productbacklogs", manageRoles)
	productBacklogs.Get("/project/:id", backlogHandler.ListProductBacklogsByProject)
	productBacklogs.Get("/", backlogHandler.ListProductBacklogs)
	productBacklogs.Post("/", backlogHandler.CreateProductBacklog)
	productBacklogs.Put("/:id", backlogHandler.UpdateProductBacklog)
	productBacklogs.Delete("/:id", backlogHandler.DeleteProductBacklog)

	sprintBacklogs := protected.Group("/sprint-backlogs")
	sprintBacklogs.Post("/create", backlogHandler.CreateSprintBacklog)
	sprintBacklogs.Get("/all", backlogHandler.ListSprintBacklogs)
	sprintBacklogs.Get("/:id", backlogHandler.GetSprintBacklog)
	sprintBacklogs.Post("/:id/add-user-story/:storyId", backlogHandler.AddUserStoryToSprintBacklog)
	sprintBacklogs.Get("/:id/user-stories", backlogHandler.ListSprintBacklogStories)
	sprintBacklogs.Get("/:id/progress", backlogHandler.SprintProgress)

	userStories := protected.Group("/userstories")
	userStories.Get("/", backlogHandler.ListUserStories)
	userStories.Post("/", backlogHandler.CreateUserStory)
	userStories.Get("/:id", backlogHandler.GetUserStory)
	userStories.Delete("/:id", backlogHandler.DeleteUserStory)
	userStories.Post("/:id/sprint/:backlogId", backlogHandler.AssignUserStoryToSprint)
}
