package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/application/guard"
)

var (
	storyDescription string
	storyPriority    string
	storyBacklogID   int64
)

var backlogCmd = &cobra.Command{
	Use:   "backlog",
	Short: "Opera product y sprint backlogs",
}

// ── Product backlog (vista /backlogs/product) ─────────────────────

var productBacklogCmd = &cobra.Command{
	Use:   "product",
	Short: "Product backlogs y user stories",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initApp(); err != nil {
			return err
		}
		return requireView(guard.RouteProductBacklog)
	},
}

var productBacklogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista los product backlogs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := backlogs.ListProductBacklogs(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var productBacklogCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Crea un product backlog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := backlogs.CreateProductBacklog(cmd.Context(), dto.ProductBacklogRequest{Title: args[0]})
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var storiesListCmd = &cobra.Command{
	Use:   "stories",
	Short: "Lista todas las user stories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := backlogs.ListUserStories(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var storyCreateCmd = &cobra.Command{
	Use:   "add-story <title>",
	Short: "Crea una user story en un product backlog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := backlogs.CreateUserStory(cmd.Context(), dto.UserStoryRequest{
			Title:            args[0],
			Description:      storyDescription,
			Priority:         storyPriority,
			ProductBacklogID: storyBacklogID,
		})
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

// ── Sprint backlog (vista /backlogs/sprint) ───────────────────────

var sprintBacklogCmd = &cobra.Command{
	Use:   "sprint",
	Short: "Sprint backlogs, sus stories y su progreso",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initApp(); err != nil {
			return err
		}
		return requireView(guard.RouteSprintBacklog)
	},
}

var sprintBacklogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista los sprint backlogs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := backlogs.ListSprintBacklogs(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var sprintBacklogCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Crea un sprint backlog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := backlogs.CreateSprintBacklog(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var sprintBacklogStoriesCmd = &cobra.Command{
	Use:   "stories <backlogId>",
	Short: "Lista las user stories del sprint backlog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		out, err := backlogs.ListSprintBacklogStories(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var sprintBacklogProgressCmd = &cobra.Command{
	Use:   "progress <backlogId>",
	Short: "Muestra el progreso del sprint backlog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		out, err := backlogs.SprintProgress(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var sprintBacklogAddStoryCmd = &cobra.Command{
	Use:   "add-story <backlogId> <storyId>",
	Short: "Selecciona una user story para el sprint backlog",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		backlogID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		storyID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return err
		}
		return backlogs.AddUserStoryToSprintBacklog(cmd.Context(), backlogID, storyID)
	},
}

func init() {
	storyCreateCmd.Flags().StringVar(&storyDescription, "description", "", "descripción")
	storyCreateCmd.Flags().StringVar(&storyPriority, "priority", "MEDIUM", "prioridad (LOW, MEDIUM, HIGH)")
	storyCreateCmd.Flags().Int64Var(&storyBacklogID, "backlog", 0, "ID del product backlog")

	productBacklogCmd.AddCommand(productBacklogListCmd, productBacklogCreateCmd, storiesListCmd, storyCreateCmd)
	sprintBacklogCmd.AddCommand(sprintBacklogListCmd, sprintBacklogCreateCmd, sprintBacklogStoriesCmd, sprintBacklogProgressCmd, sprintBacklogAddStoryCmd)
	backlogCmd.AddCommand(productBacklogCmd, sprintBacklogCmd)
	rootCmd.AddCommand(backlogCmd)
}
