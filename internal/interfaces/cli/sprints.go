package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/agileflow/agileflow-go/internal/application/guard"
)

var (
	sprintStart     string
	sprintEnd       string
	sprintBacklogID int64
)

var sprintsCmd = &cobra.Command{
	Use:   "sprints",
	Short: "Opera los sprints (vista /sprints)",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initApp(); err != nil {
			return err
		}
		return requireView(guard.RouteSprints)
	},
}

var sprintsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista todos los sprints",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := sprints.List(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var sprintsActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "Lista los sprints en curso",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := sprints.ListActive(cmd.Context(), time.Now())
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var sprintsUpcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Lista los sprints por comenzar",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := sprints.ListUpcoming(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var sprintsCompletedCmd = &cobra.Command{
	Use:   "completed",
	Short: "Lista los sprints finalizados",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := sprints.ListCompleted(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var sprintsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Crea un sprint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := time.Parse("2006-01-02", sprintStart)
		if err != nil {
			return err
		}
		end, err := time.Parse("2006-01-02", sprintEnd)
		if err != nil {
			return err
		}
		out, err := sprints.Create(cmd.Context(), args[0], start, end, sprintBacklogID)
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var sprintsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Elimina un sprint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		return sprints.Delete(cmd.Context(), id)
	},
}

var sprintsAssignCmd = &cobra.Command{
	Use:   "assign <sprintId> <backlogId>",
	Short: "Asigna el sprint a un sprint backlog",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sprintID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		backlogID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return err
		}
		return sprints.AssignToBacklog(cmd.Context(), sprintID, backlogID)
	},
}

func init() {
	sprintsCreateCmd.Flags().StringVar(&sprintStart, "start", time.Now().Format("2006-01-02"), "fecha de inicio (YYYY-MM-DD)")
	sprintsCreateCmd.Flags().StringVar(&sprintEnd, "end", time.Now().AddDate(0, 0, 14).Format("2006-01-02"), "fecha de fin (YYYY-MM-DD)")
	sprintsCreateCmd.Flags().Int64Var(&sprintBacklogID, "backlog", 0, "ID del sprint backlog")

	sprintsCmd.AddCommand(sprintsListCmd, sprintsActiveCmd, sprintsUpcomingCmd, sprintsCompletedCmd, sprintsCreateCmd, sprintsDeleteCmd, sprintsAssignCmd)
	rootCmd.AddCommand(sprintsCmd)
}
