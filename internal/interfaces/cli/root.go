// Package cli comandos del cliente de terminal. Cada comando corresponde a
// una vista del frontend original y pasa por el mismo control de acceso.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/agileflow/agileflow-go/internal/application/guard"
	"github.com/agileflow/agileflow-go/internal/application/session"
	"github.com/agileflow/agileflow-go/internal/infrastructure/localstore"
	"github.com/agileflow/agileflow-go/internal/infrastructure/rest"
	"github.com/agileflow/agileflow-go/pkg/config"
	"github.com/agileflow/agileflow-go/pkg/logger"
)

var (
	cfg *config.Config
	log *logger.Logger
	mgr *session.Manager

	apiClient  *rest.Client
	projects   *rest.ProjectClient
	sprints    *rest.SprintClient
	tasks      *rest.TaskClient
	users      *rest.UserClient
	backlogs   *rest.BacklogClient
	sessionDir string
)

var rootCmd = &cobra.Command{
	Use:   "agileflow",
	Short: "Cliente de terminal de AgileFlow",
	Long: `agileflow es el cliente de terminal de AgileFlow: inicia sesión contra el
backend REST, guarda la sesión localmente y opera proyectos, sprints, tasks
y backlogs con el mismo control de acceso por rol que la aplicación web.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
}

// Execute ejecuta el comando raíz.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sessionDir, "session-dir", "", "directorio del almacén de sesión (default: config del usuario)")
}

// initApp arma el grafo de dependencias del cliente y restaura la sesión
// guardada antes de correr cualquier subcomando.
func initApp() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log = logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	dir := sessionDir
	if dir == "" {
		dir = cfg.Session.Dir
	}
	store := localstore.New(dir)

	// El TokenSource lee del manager; se resuelve después de construirlo.
	apiClient = rest.NewClient(
		cfg.API.BaseURL,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
		func() string {
			if mgr == nil {
				return ""
			}
			return mgr.Token()
		},
		log,
	)
	projects = rest.NewProjectClient(apiClient)
	sprints = rest.NewSprintClient(apiClient)
	tasks = rest.NewTaskClient(apiClient)
	users = rest.NewUserClient(apiClient)
	backlogs = rest.NewBacklogClient(apiClient)

	mgr = session.NewManager(store, rest.NewAuthClient(apiClient), stderrNotifier{}, log)
	mgr.Initialize()
	return nil
}

// requireView aplica el guard de la vista. Devuelve error si la decisión no
// es renderizar, nombrando el destino de la redirección.
func requireView(route guard.Route) error {
	v, ok := guard.FindView(route)
	if !ok {
		return fmt.Errorf("vista desconocida: %s", route)
	}
	sess, _ := mgr.Snapshot()
	d := guard.Evaluate(v, sess, mgr.Loading())
	switch d.Action {
	case guard.ActionRender:
		return nil
	case guard.ActionRedirect:
		if d.Target == guard.RouteLogin {
			return fmt.Errorf("necesitas iniciar sesión (agileflow login)")
		}
		return fmt.Errorf("tu rol no tiene acceso a %s (vista por defecto: %s)", route, d.Target)
	default:
		return fmt.Errorf("sesión aún cargando")
	}
}

// printJSON imprime el resultado como JSON indentado en stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
