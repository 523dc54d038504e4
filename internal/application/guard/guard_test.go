package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agileflow/agileflow-go/internal/application/guard"
	"github.com/agileflow/agileflow-go/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// sessionWithRole construye una sesión autenticada con el rol dado.
func sessionWithRole(role entity.Role) entity.Session {
	return entity.Session{
		Token: "tok-123",
		User: &entity.UserInfo{
			ID:       1,
			Username: "alguien",
			Email:    "alguien@agileflow.io",
			Role:     role,
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// DefaultRoute — mapa rol → dashboard
// ──────────────────────────────────────────────────────────────────────────────

// Cada rol del conjunto cerrado tiene su dashboard propio.
func TestDefaultRoute_TodosLosRoles(t *testing.T) {
	cases := map[entity.Role]guard.Route{
		entity.RoleProductOwner: guard.RouteDashboardProductOwner,
		entity.RoleScrumMaster:  guard.RouteDashboardScrumMaster,
		entity.RoleDeveloper:    guard.RouteDashboardDeveloper,
		entity.RoleTester:       guard.RouteDashboardTester,
		entity.RoleAdmin:        guard.RouteDashboardAdmin,
	}
	// El mapa debe cubrir todos los roles conocidos.
	require.Len(t, cases, len(entity.AllRoles()))

	for role, want := range cases {
		assert.Equal(t, want, guard.DefaultRoute(role),
			"el rol %s debe mapear a %s", role, want)
	}
}

// Un rol fuera del conjunto cae al login, nunca a un dashboard ajeno.
func TestDefaultRoute_RolDesconocidoCaeALogin(t *testing.T) {
	assert.Equal(t, guard.RouteLogin, guard.DefaultRoute(entity.Role("SUPERVISOR")))
	assert.Equal(t, guard.RouteLogin, guard.DefaultRoute(entity.Role("")))
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthGate — vistas de login/signup
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthGate_CargandoSuspende(t *testing.T) {
	d := guard.AuthGate(entity.Session{}, true)
	assert.Equal(t, guard.ActionSuspend, d.Action,
		"con la sesión cargando no se decide nada")
}

func TestAuthGate_SinSesionRenderiza(t *testing.T) {
	d := guard.AuthGate(entity.Session{}, false)
	assert.Equal(t, guard.ActionRender, d.Action)
}

func TestAuthGate_AutenticadoRedirigeASuDashboard(t *testing.T) {
	d := guard.AuthGate(sessionWithRole(entity.RoleScrumMaster), false)
	require.Equal(t, guard.ActionRedirect, d.Action,
		"un usuario autenticado no debe ver el login")
	assert.Equal(t, guard.RouteDashboardScrumMaster, d.Target)
}

// Token sin usuario (o al revés) no cuenta como autenticado.
func TestAuthGate_SesionParcialNoEsAutenticada(t *testing.T) {
	soloToken := entity.Session{Token: "tok-123"}
	d := guard.AuthGate(soloToken, false)
	assert.Equal(t, guard.ActionRender, d.Action,
		"token sin usuario debe tratarse como no autenticado")

	soloUser := entity.Session{User: &entity.UserInfo{ID: 1, Username: "x", Role: entity.RoleAdmin}}
	d = guard.AuthGate(soloUser, false)
	assert.Equal(t, guard.ActionRender, d.Action,
		"usuario sin token debe tratarse como no autenticado")
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthzGate — vistas protegidas
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthzGate_CargandoSuspende(t *testing.T) {
	d := guard.AuthzGate(sessionWithRole(entity.RoleAdmin), true, nil)
	assert.Equal(t, guard.ActionSuspend, d.Action,
		"cargando no es lo mismo que no autenticado")
}

func TestAuthzGate_SinSesionRedirigeALogin(t *testing.T) {
	d := guard.AuthzGate(entity.Session{}, false, []entity.Role{entity.RoleAdmin})
	require.Equal(t, guard.ActionRedirect, d.Action)
	assert.Equal(t, guard.RouteLogin, d.Target)
}

func TestAuthzGate_RolPermitidoRenderiza(t *testing.T) {
	allowed := []entity.Role{entity.RoleProductOwner, entity.RoleScrumMaster}
	d := guard.AuthzGate(sessionWithRole(entity.RoleScrumMaster), false, allowed)
	assert.Equal(t, guard.ActionRender, d.Action)
}

func TestAuthzGate_RolNoPermitidoRedirigeASuDashboard(t *testing.T) {
	allowed := []entity.Role{entity.RoleAdmin}
	d := guard.AuthzGate(sessionWithRole(entity.RoleDeveloper), false, allowed)
	require.Equal(t, guard.ActionRedirect, d.Action,
		"el developer no puede entrar a la vista de admin")
	assert.Equal(t, guard.RouteDashboardDeveloper, d.Target,
		"debe ir a su propio dashboard, no al login")
}

// Allow-list vacía: cualquier usuario autenticado pasa.
func TestAuthzGate_SinAllowListSoloExigeAutenticacion(t *testing.T) {
	d := guard.AuthzGate(sessionWithRole(entity.RoleTester), false, nil)
	assert.Equal(t, guard.ActionRender, d.Action)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de vistas y Evaluate
// ──────────────────────────────────────────────────────────────────────────────

func TestFindView_RutasConocidasYDesconocidas(t *testing.T) {
	v, ok := guard.FindView(guard.RouteUsers)
	require.True(t, ok)
	assert.Equal(t, []entity.Role{entity.RoleAdmin}, v.AllowedRoles,
		"/users es exclusiva del admin")

	_, ok = guard.FindView(guard.Route("/nada"))
	assert.False(t, ok)
}

func TestEvaluate_VistaDeAuthUsaAuthGate(t *testing.T) {
	v, ok := guard.FindView(guard.RouteLogin)
	require.True(t, ok)

	d := guard.Evaluate(v, sessionWithRole(entity.RoleTester), false)
	require.Equal(t, guard.ActionRedirect, d.Action)
	assert.Equal(t, guard.RouteDashboardTester, d.Target)
}

func TestEvaluate_VistaProtegidaUsaAuthzGate(t *testing.T) {
	v, ok := guard.FindView(guard.RouteProjects)
	require.True(t, ok)

	// Tester no está en la allow-list de /projects.
	d := guard.Evaluate(v, sessionWithRole(entity.RoleTester), false)
	require.Equal(t, guard.ActionRedirect, d.Action)
	assert.Equal(t, guard.RouteDashboardTester, d.Target)

	// Admin sí.
	d = guard.Evaluate(v, sessionWithRole(entity.RoleAdmin), false)
	assert.Equal(t, guard.ActionRender, d.Action)
}
