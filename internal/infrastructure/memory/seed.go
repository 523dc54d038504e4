package memory

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/agileflow/agileflow-go/internal/domain/entity"
)

// seedPassword password compartido de las cuentas demo, igual que en el
// mock del frontend original.
const seedPassword = "password"

// SeedRepos agrupa los repositorios que Seed puebla.
type SeedRepos struct {
	Users           *UserRepo
	Projects        *ProjectRepo
	Sprints         *SprintRepo
	Tasks           *TaskRepo
	ProductBacklogs *ProductBacklogRepo
	SprintBacklogs  *SprintBacklogRepo
	UserStories     *UserStoryRepo
}

// Seed puebla los repositorios con los datos de demostración: una cuenta por
// rol (password "password"), un proyecto con su product backlog, un sprint
// en curso y un puñado de user stories y tasks.
func Seed(repos SeedRepos) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashear password demo: %w", err)
	}

	now := time.Now()
	demoUsers := []*entity.User{
		{Username: "admin", Email: "admin@agileflow.io", Role: entity.RoleAdmin},
		{Username: "po", Email: "po@agileflow.io", Role: entity.RoleProductOwner},
		{Username: "sm", Email: "sm@agileflow.io", Role: entity.RoleScrumMaster},
		{Username: "dev", Email: "dev@agileflow.io", Role: entity.RoleDeveloper},
		{Username: "qa", Email: "qa@agileflow.io", Role: entity.RoleTester},
	}
	for _, u := range demoUsers {
		u.PasswordHash = string(hash)
		u.Active = true
		u.CreatedAt = now
		u.UpdatedAt = now
		if err := repos.Users.Create(u); err != nil {
			return fmt.Errorf("sembrar usuario %s: %w", u.Username, err)
		}
	}

	project := &entity.Project{
		Name:        "AgileFlow Demo",
		Description: "Proyecto de demostración del mock backend",
		Status:      "ACTIVE",
		StartDate:   now.AddDate(0, -1, 0),
		EndDate:     now.AddDate(0, 2, 0),
		OwnerID:     demoUsers[1].ID, // product owner
		MemberIDs:   []int64{demoUsers[2].ID, demoUsers[3].ID, demoUsers[4].ID},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repos.Projects.Create(project); err != nil {
		return fmt.Errorf("sembrar proyecto: %w", err)
	}

	productBacklog := &entity.ProductBacklog{
		Title:     "Demo Product Backlog",
		ProjectID: project.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repos.ProductBacklogs.Create(productBacklog); err != nil {
		return fmt.Errorf("sembrar product backlog: %w", err)
	}
	project.ProductBacklogID = productBacklog.ID
	if err := repos.Projects.Update(project); err != nil {
		return fmt.Errorf("enlazar backlog al proyecto: %w", err)
	}

	sprintBacklog := &entity.SprintBacklog{
		Title:     "Sprint 1 Backlog",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repos.SprintBacklogs.Create(sprintBacklog); err != nil {
		return fmt.Errorf("sembrar sprint backlog: %w", err)
	}

	sprint := &entity.Sprint{
		Name:            "Sprint 1",
		StartDate:       now.AddDate(0, 0, -7),
		EndDate:         now.AddDate(0, 0, 7),
		SprintBacklogID: sprintBacklog.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := repos.Sprints.Create(sprint); err != nil {
		return fmt.Errorf("sembrar sprint: %w", err)
	}

	stories := []*entity.UserStory{
		{Title: "Registro de usuarios", Description: "Como visitante quiero crear una cuenta", Priority: "HIGH", Status: entity.TaskStatusDone, ProductBacklogID: productBacklog.ID, SprintBacklogID: sprintBacklog.ID},
		{Title: "Tablero de sprint", Description: "Como developer quiero ver mis tasks del sprint", Priority: "MEDIUM", Status: entity.TaskStatusInProgress, ProductBacklogID: productBacklog.ID, SprintBacklogID: sprintBacklog.ID},
		{Title: "Reportes de progreso", Description: "Como scrum master quiero ver el avance del sprint", Priority: "LOW", Status: entity.TaskStatusToDo, ProductBacklogID: productBacklog.ID},
	}
	for _, s := range stories {
		s.CreatedAt = now
		s.UpdatedAt = now
		if err := repos.UserStories.Create(s); err != nil {
			return fmt.Errorf("sembrar user story %q: %w", s.Title, err)
		}
	}

	demoTasks := []*entity.Task{
		{Title: "Formulario de registro", Status: entity.TaskStatusDone, Priority: "HIGH", EstimatedHours: 8, LoggedHours: 8, UserStoryID: stories[0].ID, AssignedUserID: demoUsers[3].ID},
		{Title: "Validación de datos", Status: entity.TaskStatusInProgress, Priority: "MEDIUM", EstimatedHours: 5, LoggedHours: 2, UserStoryID: stories[1].ID, AssignedUserID: demoUsers[3].ID},
		{Title: "Pruebas de aceptación", Status: entity.TaskStatusToDo, Priority: "MEDIUM", EstimatedHours: 6, UserStoryID: stories[1].ID, AssignedUserID: demoUsers[4].ID},
	}
	for _, t := range demoTasks {
		t.DueDate = sprint.EndDate
		t.CreatedAt = now
		t.UpdatedAt = now
		if err := repos.Tasks.Create(t); err != nil {
			return fmt.Errorf("sembrar task %q: %w", t.Title, err)
		}
	}

	return nil
}
