package guard

import "github.com/agileflow/agileflow-go/internal/domain/entity"

// View una vista de la aplicación con sus requisitos de acceso.
type View struct {
	Route Route
	// Auth true para vistas de autenticación (se evalúan con AuthGate).
	Auth bool
	// AllowedRoles allow-list para vistas protegidas; vacía = cualquier
	// usuario autenticado.
	AllowedRoles []entity.Role
}

// allRoles comparte la allow-list de las vistas abiertas a todos los roles.
var allRoles = []entity.Role{
	entity.RoleProductOwner,
	entity.RoleScrumMaster,
	entity.RoleDeveloper,
	entity.RoleTester,
	entity.RoleAdmin,
}

// views tabla de rutas calcada del frontend original (App.jsx): cada vista
// con la misma allow-list que declaraba su ProtectedRoute.
var views = []View{
	{Route: RouteLogin, Auth: true},
	{Route: RouteSignup, Auth: true},
	{Route: RouteTestAuth, Auth: true},

	{Route: RouteDashboardProductOwner, AllowedRoles: []entity.Role{entity.RoleProductOwner}},
	{Route: RouteDashboardScrumMaster, AllowedRoles: []entity.Role{entity.RoleScrumMaster}},
	{Route: RouteDashboardDeveloper, AllowedRoles: []entity.Role{entity.RoleDeveloper}},
	{Route: RouteDashboardTester, AllowedRoles: []entity.Role{entity.RoleTester}},
	{Route: RouteDashboardAdmin, AllowedRoles: []entity.Role{entity.RoleAdmin}},

	{Route: RouteProjects, AllowedRoles: []entity.Role{entity.RoleProductOwner, entity.RoleScrumMaster, entity.RoleAdmin}},
	{Route: RouteSprints, AllowedRoles: []entity.Role{entity.RoleProductOwner, entity.RoleScrumMaster, entity.RoleAdmin}},
	{Route: RouteTasks, AllowedRoles: allRoles},
	{Route: RouteUsers, AllowedRoles: []entity.Role{entity.RoleAdmin}},

	{Route: RouteProductBacklog, AllowedRoles: []entity.Role{entity.RoleProductOwner, entity.RoleScrumMaster, entity.RoleAdmin}},
	{Route: RouteSprintBacklog, AllowedRoles: allRoles},
}

// Views devuelve la tabla de vistas conocidas.
func Views() []View {
	out := make([]View, len(views))
	copy(out, views)
	return out
}

// FindView busca una vista por ruta; ok=false si la ruta no existe.
func FindView(route Route) (View, bool) {
	for _, v := range views {
		if v.Route == route {
			return v, true
		}
	}
	return View{}, false
}

// Evaluate decide sobre una vista con el guard que le corresponde.
func Evaluate(v View, sess entity.Session, loading bool) Decision {
	if v.Auth {
		return AuthGate(sess, loading)
	}
	return AuthzGate(sess, loading, v.AllowedRoles)
}
