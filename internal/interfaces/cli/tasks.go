package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/agileflow/agileflow-go/internal/application/guard"
	"github.com/agileflow/agileflow-go/internal/infrastructure/rest"
)

var (
	taskDescription string
	taskPriority    string
	taskDue         string
	taskEstimate    float64
	taskStoryID     int64
	taskAssigneeID  int64
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Opera las tasks (vista /tasks)",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initApp(); err != nil {
			return err
		}
		return requireView(guard.RouteTasks)
	},
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista todas las tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := tasks.List(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var tasksGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Muestra una task con sus comentarios",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		out, err := tasks.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var tasksCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Crea una task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var due time.Time
		if taskDue != "" {
			var err error
			due, err = time.Parse("2006-01-02", taskDue)
			if err != nil {
				return err
			}
		}
		out, err := tasks.Create(cmd.Context(), rest.CreateTaskInput{
			Title:          args[0],
			Description:    taskDescription,
			Priority:       taskPriority,
			DueDate:        due,
			EstimatedHours: taskEstimate,
			UserStoryID:    taskStoryID,
			AssignedUserID: taskAssigneeID,
		})
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var tasksStatusCmd = &cobra.Command{
	Use:   "status <id> <TO_DO|IN_PROGRESS|DONE>",
	Short: "Cambia el estado de una task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		return tasks.UpdateStatus(cmd.Context(), id, args[1])
	},
}

var tasksLogCmd = &cobra.Command{
	Use:   "log-hours <id> <hours>",
	Short: "Registra horas trabajadas en una task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		hours, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}
		return tasks.LogHours(cmd.Context(), id, hours)
	},
}

var tasksAssignCmd = &cobra.Command{
	Use:   "assign <taskId> <userId>",
	Short: "Asigna una task a un usuario",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		userID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return err
		}
		return tasks.Assign(cmd.Context(), taskID, userID)
	},
}

var tasksCommentCmd = &cobra.Command{
	Use:   "comment <taskId> <content>",
	Short: "Agrega un comentario a una task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		userID := int64(0)
		if u := mgr.User(); u != nil {
			userID = u.ID
		}
		return tasks.AddComment(cmd.Context(), taskID, userID, args[1])
	},
}

var tasksDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Elimina una task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		return tasks.Delete(cmd.Context(), id)
	},
}

func init() {
	tasksCreateCmd.Flags().StringVar(&taskDescription, "description", "", "descripción")
	tasksCreateCmd.Flags().StringVar(&taskPriority, "priority", "MEDIUM", "prioridad (LOW, MEDIUM, HIGH)")
	tasksCreateCmd.Flags().StringVar(&taskDue, "due", "", "fecha límite (YYYY-MM-DD)")
	tasksCreateCmd.Flags().Float64Var(&taskEstimate, "estimate", 0, "horas estimadas")
	tasksCreateCmd.Flags().Int64Var(&taskStoryID, "story", 0, "ID de la user story")
	tasksCreateCmd.Flags().Int64Var(&taskAssigneeID, "assignee", 0, "ID del usuario asignado")

	tasksCmd.AddCommand(tasksListCmd, tasksGetCmd, tasksCreateCmd, tasksStatusCmd, tasksLogCmd, tasksAssignCmd, tasksCommentCmd, tasksDeleteCmd)
	rootCmd.AddCommand(tasksCmd)
}
