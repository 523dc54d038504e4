package guard

import "github.com/agileflow/agileflow-go/internal/domain/entity"

// Route camino de una vista de la aplicación.
type Route string

// Rutas de la aplicación (las mismas del frontend original).
const (
	RouteLogin    Route = "/login"
	RouteSignup   Route = "/signup"
	RouteTestAuth Route = "/test-auth"

	RouteDashboardProductOwner Route = "/dashboard/product-owner"
	RouteDashboardScrumMaster  Route = "/dashboard/scrum-master"
	RouteDashboardDeveloper    Route = "/dashboard/developer"
	RouteDashboardTester       Route = "/dashboard/tester"
	RouteDashboardAdmin        Route = "/dashboard/admin"

	RouteProjects Route = "/projects"
	RouteSprints  Route = "/sprints"
	RouteTasks    Route = "/tasks"
	RouteUsers    Route = "/users"

	RouteProductBacklog Route = "/backlogs/product"
	RouteSprintBacklog  Route = "/backlogs/sprint"
)

// DefaultRoute mapea cada rol a su dashboard por defecto. El switch es
// exhaustivo sobre el conjunto cerrado de roles; un rol fuera del conjunto
// cae a /login, el mismo fallback que tenía el frontend original.
func DefaultRoute(role entity.Role) Route {
	switch role {
	case entity.RoleProductOwner:
		return RouteDashboardProductOwner
	case entity.RoleScrumMaster:
		return RouteDashboardScrumMaster
	case entity.RoleDeveloper:
		return RouteDashboardDeveloper
	case entity.RoleTester:
		return RouteDashboardTester
	case entity.RoleAdmin:
		return RouteDashboardAdmin
	default:
		return RouteLogin
	}
}

// Action resultado de una decisión de guard.
type Action int

const (
	// ActionRender la vista solicitada puede renderizarse.
	ActionRender Action = iota
	// ActionRedirect el usuario debe ir a Target en lugar de la vista pedida.
	ActionRedirect
	// ActionSuspend la sesión aún no se inicializó; no decidir todavía.
	ActionSuspend
)

// String nombre legible de la acción.
func (a Action) String() string {
	switch a {
	case ActionRender:
		return "render"
	case ActionRedirect:
		return "redirect"
	case ActionSuspend:
		return "suspend"
	default:
		return "unknown"
	}
}

// Decision decisión de un guard sobre una vista solicitada.
type Decision struct {
	Action Action
	Target Route // destino cuando Action es ActionRedirect
}

func render() Decision           { return Decision{Action: ActionRender} }
func redirect(to Route) Decision { return Decision{Action: ActionRedirect, Target: to} }
func suspend() Decision          { return Decision{Action: ActionSuspend} }

// AuthGate puerta para las vistas de autenticación (login/signup): con la
// sesión cargando no decide; autenticado redirige al dashboard del rol;
// sin autenticar deja renderizar la vista pedida.
func AuthGate(sess entity.Session, loading bool) Decision {
	if loading {
		return suspend()
	}
	if sess.IsAuthenticated() {
		return redirect(DefaultRoute(sess.Role()))
	}
	return render()
}

// AuthzGate puerta para vistas protegidas: sin autenticar redirige a /login;
// si la vista declara allow-list y el rol no está en ella, redirige al
// dashboard por defecto del rol. Allow-list vacía = solo exige autenticación.
// Con la sesión cargando suspende: un estado desconocido no es "no autenticado".
func AuthzGate(sess entity.Session, loading bool, allowedRoles []entity.Role) Decision {
	if loading {
		return suspend()
	}
	if !sess.IsAuthenticated() {
		return redirect(RouteLogin)
	}
	if len(allowedRoles) > 0 && !roleAllowed(sess.Role(), allowedRoles) {
		return redirect(DefaultRoute(sess.Role()))
	}
	return render()
}

func roleAllowed(role entity.Role, allowed []entity.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
