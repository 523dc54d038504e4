package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/application/guard"
)

var (
	projectDescription string
	projectStart       string
	projectEnd         string
	projectOwnerID     int64
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Opera los proyectos (vista /projects)",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initApp(); err != nil {
			return err
		}
		return requireView(guard.RouteProjects)
	},
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista todos los proyectos",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := projects.List(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var projectsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Muestra un proyecto",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		out, err := projects.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Crea un proyecto",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := time.Parse("2006-01-02", projectStart)
		if err != nil {
			return err
		}
		end, err := time.Parse("2006-01-02", projectEnd)
		if err != nil {
			return err
		}
		in := dto.ProjectRequest{
			Name:        args[0],
			Description: projectDescription,
			StartDate:   start,
			EndDate:     end,
			OwnerID:     projectOwnerID,
		}
		var out *dto.ProjectResponse
		if projectOwnerID > 0 {
			out, err = projects.CreateWithOwner(cmd.Context(), in)
		} else {
			out, err = projects.Create(cmd.Context(), in)
		}
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Elimina un proyecto",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		return projects.Delete(cmd.Context(), id)
	},
}

var projectsStatsCmd = &cobra.Command{
	Use:   "statistics",
	Short: "Muestra los agregados de proyectos del dashboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := projects.Statistics(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var projectsLinkBacklogCmd = &cobra.Command{
	Use:   "link-backlog <projectId> <backlogId>",
	Short: "Enlaza un product backlog al proyecto",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		backlogID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return err
		}
		return projects.LinkBacklog(cmd.Context(), projectID, backlogID)
	},
}

var projectsAssignCmd = &cobra.Command{
	Use:   "assign <projectId> <userId>",
	Short: "Agrega un usuario como miembro del proyecto",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		userID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return err
		}
		return projects.AssignUser(cmd.Context(), projectID, userID)
	},
}

func init() {
	projectsCreateCmd.Flags().StringVar(&projectDescription, "description", "", "descripción del proyecto")
	projectsCreateCmd.Flags().StringVar(&projectStart, "start", time.Now().Format("2006-01-02"), "fecha de inicio (YYYY-MM-DD)")
	projectsCreateCmd.Flags().StringVar(&projectEnd, "end", time.Now().AddDate(0, 3, 0).Format("2006-01-02"), "fecha de fin (YYYY-MM-DD)")
	projectsCreateCmd.Flags().Int64Var(&projectOwnerID, "owner", 0, "ID del product owner (usa la variante /with-owner)")

	projectsCmd.AddCommand(projectsListCmd, projectsGetCmd, projectsCreateCmd, projectsDeleteCmd, projectsStatsCmd, projectsLinkBacklogCmd, projectsAssignCmd)
	rootCmd.AddCommand(projectsCmd)
}
