package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/application/guard"
	"github.com/agileflow/agileflow-go/internal/domain/entity"
)

var newUserRole string

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Administra usuarios (vista /users, solo admin)",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initApp(); err != nil {
			return err
		}
		return requireView(guard.RouteUsers)
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista todos los usuarios",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := users.List(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var usersSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Busca usuarios por username o email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := users.Search(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create <username> <email> <password>",
	Short: "Crea un usuario",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := users.Create(cmd.Context(), dto.CreateUserRequest{
			Username: args[0],
			Email:    args[1],
			Role:     newUserRole,
		}, args[2])
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Elimina un usuario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		return users.Delete(cmd.Context(), id)
	},
}

var usersByRoleCmd = &cobra.Command{
	Use:   "by-role <role>",
	Short: "Lista los usuarios con el rol dado",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := users.ListByRole(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

func init() {
	usersCreateCmd.Flags().StringVar(&newUserRole, "role", string(entity.RoleDeveloper), "rol de la cuenta")

	usersCmd.AddCommand(usersListCmd, usersSearchCmd, usersCreateCmd, usersDeleteCmd, usersByRoleCmd)
	rootCmd.AddCommand(usersCmd)
}
