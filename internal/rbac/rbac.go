// Package rbac holds the static role/permission table and the lookup
// functions used to gate pages, in-page actions and navigation. Grants
// are fixed at compile time and never change at runtime; every lookup
// fails closed on an unknown role, page or action.
package rbac

import (
	"fmt"

	"github.com/iliyamo/restaurant-pos/internal/model"
)

// Role is the access-control identity of an authenticated session. It
// is a closed set and deliberately distinct from model.UserRole, the
// lower-cased enumeration stored on user records.
type Role string

const (
	Administrator Role = "Administrator"
	Manager       Role = "Manager"
	Server        Role = "Server"
	KitchenStaff  Role = "Kitchen Staff"
)

// Grant pairs a page identifier with an optional set of allowed
// actions. A nil Actions set means any action is allowed once page
// access is granted.
type Grant struct {
	Page    string
	Actions map[string]bool
}

func actions(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// permissions is the static grant table. Administrators hold open
// grants on every page; the other roles carry explicit action sets
// where their abilities are narrower than the page itself.
var permissions = map[Role][]Grant{
	Administrator: {
		{Page: "dashboard"},
		{Page: "orders"},
		{Page: "menu"},
		{Page: "tables"},
		{Page: "inventory"},
		{Page: "users"},
		{Page: "reports"},
	},
	Manager: {
		{Page: "dashboard"},
		{Page: "orders", Actions: actions("view", "create", "edit", "status")},
		{Page: "menu"},
		{Page: "tables"},
		{Page: "inventory"},
		{Page: "users", Actions: actions("view")},
		{Page: "reports"},
	},
	Server: {
		{Page: "dashboard"},
		{Page: "orders", Actions: actions("view", "create", "edit", "status")},
		{Page: "menu", Actions: actions("view")},
		{Page: "tables"},
		{Page: "inventory", Actions: actions("view")},
	},
	KitchenStaff: {
		{Page: "dashboard"},
		{Page: "orders", Actions: actions("view", "edit", "status")},
		{Page: "menu", Actions: actions("view")},
		{Page: "inventory", Actions: actions("view", "edit")},
	},
}

// HasPageAccess reports whether the role holds a grant for the page.
// Unknown roles and pages yield false.
func HasPageAccess(role Role, page string) bool {
	for _, g := range permissions[role] {
		if g.Page == page {
			return true
		}
	}
	return false
}

// HasActionAccess reports whether the role may perform the action on
// the page. Without a matching page grant the answer is false; a grant
// with a nil action set allows any action; otherwise the action must be
// a member of the grant's set.
func HasActionAccess(role Role, page, action string) bool {
	for _, g := range permissions[role] {
		if g.Page != page {
			continue
		}
		if g.Actions == nil {
			return true
		}
		return g.Actions[action]
	}
	return false
}

// NavItem is one entry of the navigation menu presented to a session.
type NavItem struct {
	Page  string `json:"page"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// masterNav is the fixed, ordered master navigation list. Its order is
// a visible contract: NavigationItems preserves it when filtering.
var masterNav = []NavItem{
	{Page: "dashboard", Label: "Dashboard", Path: "/"},
	{Page: "orders", Label: "Orders", Path: "/orders"},
	{Page: "menu", Label: "Menu", Path: "/menu"},
	{Page: "tables", Label: "Tables", Path: "/tables"},
	{Page: "inventory", Label: "Inventory", Path: "/inventory"},
	{Page: "users", Label: "Staff", Path: "/users"},
	{Page: "reports", Label: "Reports", Path: "/reports"},
}

// NavigationItems filters the master list down to the pages the role
// can access, preserving master order.
func NavigationItems(role Role) []NavItem {
	out := make([]NavItem, 0, len(masterNav))
	for _, item := range masterNav {
		if HasPageAccess(role, item.Page) {
			out = append(out, item)
		}
	}
	return out
}

// FromUserRole maps the lower-cased role stored on a user record to the
// session Role. This is the single boundary where the two enumerations
// meet; an unmapped value is an error so the caller fails closed.
func FromUserRole(r model.UserRole) (Role, error) {
	switch r {
	case model.UserAdmin:
		return Administrator, nil
	case model.UserManager:
		return Manager, nil
	case model.UserServer:
		return Server, nil
	case model.UserKitchen:
		return KitchenStaff, nil
	default:
		return "", fmt.Errorf("unknown user role %q", r)
	}
}

// Parse returns the Role matching the given string, typically read back
// from a JWT claim. Unknown strings fail closed with an error.
func Parse(s string) (Role, error) {
	switch Role(s) {
	case Administrator, Manager, Server, KitchenStaff:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}
