package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/application/guard"
	"github.com/agileflow/agileflow-go/internal/domain/entity"
)

var signupRole string

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Inicia sesión y guarda la sesión localmente",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if ok := mgr.Login(cmd.Context(), args[0], args[1]); !ok {
			// La notificación ya salió por stderr; el exit code marca el fallo.
			return fmt.Errorf("login fallido")
		}
		if u := mgr.User(); u != nil {
			fmt.Printf("Vista por defecto: %s\n", guard.DefaultRoute(entity.Role(u.Role)))
		}
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup <username> <email> <password>",
	Short: "Registra una cuenta nueva",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := dto.SignupRequest{
			Username: args[0],
			Email:    args[1],
			Password: args[2],
			Role:     signupRole,
		}
		if ok := mgr.Signup(cmd.Context(), in); !ok {
			return fmt.Errorf("registro fallido")
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Cierra la sesión y limpia el almacén local",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr.Logout()
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Muestra la sesión actual",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _ := mgr.Snapshot()
		if !sess.IsAuthenticated() {
			fmt.Println("No has iniciado sesión.")
			return nil
		}
		return printJSON(sess.User)
	},
}

var openCmd = &cobra.Command{
	Use:   "open <route>",
	Short: "Evalúa el acceso a una vista, como al navegar en la aplicación web",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		route := guard.Route(args[0])
		v, ok := guard.FindView(route)
		if !ok {
			return fmt.Errorf("vista desconocida: %s", route)
		}
		sess, _ := mgr.Snapshot()
		d := guard.Evaluate(v, sess, mgr.Loading())
		switch d.Action {
		case guard.ActionRender:
			fmt.Printf("render %s\n", route)
		case guard.ActionRedirect:
			fmt.Printf("redirect %s -> %s\n", route, d.Target)
		default:
			fmt.Println("suspend (sesión cargando)")
		}
		return nil
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Muestra la vista por defecto del rol actual",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _ := mgr.Snapshot()
		if !sess.IsAuthenticated() {
			return fmt.Errorf("necesitas iniciar sesión (agileflow login)")
		}
		fmt.Println(guard.DefaultRoute(sess.Role()))
		return nil
	},
}

func init() {
	signupCmd.Flags().StringVar(&signupRole, "role", string(entity.RoleDeveloper), "rol de la cuenta (PRODUCT_OWNER, SCRUM_MASTER, DEVELOPER, TESTER, ADMIN)")
	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd, whoamiCmd, openCmd, dashboardCmd)
}
