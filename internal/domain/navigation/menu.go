package navigation

import (
	"github.com/storelinehq/admin-gateway-go/internal/domain/user"
)

// Item is one sidebar entry. Roles lists who may see it.
type Item struct {
	ID    string      `json:"id"`
	Label string      `json:"label"`
	Path  string      `json:"path"`
	Roles []user.Role `json:"-"`
}

var menu = []Item{
	{ID: "dashboard", Label: "Dashboard", Path: "/dashboard", Roles: []user.Role{user.RoleAdmin, user.RoleSubadmin}},
	{ID: "attendance", Label: "Attendance", Path: "/attendance", Roles: []user.Role{user.RoleAdmin, user.RoleSubadmin}},
	{ID: "daily-leave", Label: "Daily Leave Requests", Path: "/leave/daily", Roles: []user.Role{user.RoleAdmin, user.RoleSubadmin}},
	{ID: "monthly-leave", Label: "Monthly Leave Requests", Path: "/leave/monthly", Roles: []user.Role{user.RoleAdmin}},
	{ID: "sales-analytics", Label: "Sales Analytics", Path: "/analytics/sales", Roles: []user.Role{user.RoleAdmin}},
	{ID: "branches", Label: "Branches", Path: "/branches", Roles: []user.Role{user.RoleAdmin}},
}

// MenuFor returns the sidebar entries visible to a role, in display order.
func MenuFor(role user.Role) []Item {
	var items []Item
	for _, item := range menu {
		for _, r := range item.Roles {
			if r == role {
				items = append(items, item)
				break
			}
		}
	}
	return items
}
