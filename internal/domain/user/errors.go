package user

import "errors"

var (
	ErrAdminPrivilegeRequired  = errors.New("admin privilege required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrUnknownRole             = errors.New("unknown role")
)
