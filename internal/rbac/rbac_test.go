package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-pos/internal/model"
	"github.com/iliyamo/restaurant-pos/internal/rbac"
)

var allPages = []string{"dashboard", "orders", "menu", "tables", "inventory", "users", "reports"}

func pages(items []rbac.NavItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Page)
	}
	return out
}

func TestAdministratorSeesEveryPage(t *testing.T) {
	for _, p := range allPages {
		assert.True(t, rbac.HasPageAccess(rbac.Administrator, p), "admin should access %s", p)
	}
	assert.Equal(t, allPages, pages(rbac.NavigationItems(rbac.Administrator)))
}

func TestPageAccessMatchesGrantTable(t *testing.T) {
	cases := []struct {
		role    rbac.Role
		granted []string
	}{
		{rbac.Manager, []string{"dashboard", "orders", "menu", "tables", "inventory", "users", "reports"}},
		{rbac.Server, []string{"dashboard", "orders", "menu", "tables", "inventory"}},
		{rbac.KitchenStaff, []string{"dashboard", "orders", "menu", "inventory"}},
	}
	for _, tc := range cases {
		granted := make(map[string]bool, len(tc.granted))
		for _, p := range tc.granted {
			granted[p] = true
		}
		for _, p := range allPages {
			assert.Equal(t, granted[p], rbac.HasPageAccess(tc.role, p),
				"%s access to %s", tc.role, p)
		}
	}
}

func TestServerDeniedUsersAndReports(t *testing.T) {
	assert.False(t, rbac.HasPageAccess(rbac.Server, "users"))
	assert.False(t, rbac.HasPageAccess(rbac.Server, "reports"))
}

func TestKitchenStaffDeniedTables(t *testing.T) {
	assert.False(t, rbac.HasPageAccess(rbac.KitchenStaff, "tables"))
}

func TestNavigationPreservesMasterOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"dashboard", "orders", "menu", "tables", "inventory"},
		pages(rbac.NavigationItems(rbac.Server)))
	assert.Equal(t,
		[]string{"dashboard", "orders", "menu", "inventory"},
		pages(rbac.NavigationItems(rbac.KitchenStaff)))
}

func TestActionAccess(t *testing.T) {
	assert.True(t, rbac.HasActionAccess(rbac.Administrator, "orders", "delete"))
	assert.False(t, rbac.HasActionAccess(rbac.Manager, "orders", "delete"))
	assert.True(t, rbac.HasActionAccess(rbac.KitchenStaff, "orders", "edit"))
	assert.False(t, rbac.HasActionAccess(rbac.KitchenStaff, "orders", "create"))

	// Open page grants allow any action, including ones never named.
	assert.True(t, rbac.HasActionAccess(rbac.Manager, "menu", "delete"))
}

func TestFailClosed(t *testing.T) {
	assert.False(t, rbac.HasPageAccess(rbac.Role("Sommelier"), "orders"))
	assert.False(t, rbac.HasActionAccess(rbac.Server, "users", "view"))
	assert.False(t, rbac.HasActionAccess(rbac.Role(""), "orders", "view"))
	assert.Empty(t, rbac.NavigationItems(rbac.Role("nobody")))
}

func TestFromUserRole(t *testing.T) {
	cases := map[model.UserRole]rbac.Role{
		model.UserAdmin:   rbac.Administrator,
		model.UserManager: rbac.Manager,
		model.UserServer:  rbac.Server,
		model.UserKitchen: rbac.KitchenStaff,
	}
	for in, want := range cases {
		got, err := rbac.FromUserRole(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := rbac.FromUserRole(model.UserRole("chef"))
	assert.Error(t, err)
}

func TestParseRoundTrips(t *testing.T) {
	for _, r := range []rbac.Role{rbac.Administrator, rbac.Manager, rbac.Server, rbac.KitchenStaff} {
		got, err := rbac.Parse(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	_, err := rbac.Parse("OWNER")
	assert.Error(t, err)
}
