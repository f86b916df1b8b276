package user

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSubadmin Role = "subadmin"
)

// IsValid reports whether the role is one the gateway recognises.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleSubadmin
}

type Permission string

const (
	// Roster / attendance view
	PermissionRosterView     Permission = "roster.view"
	PermissionAttendanceMark Permission = "attendance.mark"

	// Leave approval
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Analytics
	PermissionAnalyticsView Permission = "analytics.view"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionRosterView,
		PermissionAttendanceMark,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionAnalyticsView,
	},
	RoleSubadmin: {
		PermissionRosterView,
		PermissionAttendanceMark,
		PermissionLeaveViewAll,
	},
}

// HasPermission checks whether a role carries a permission.
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
