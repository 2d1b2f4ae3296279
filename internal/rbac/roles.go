package rbac

// Role names. Keep these stable; they are part of auth/RBAC contracts.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

func IsAdmin(role string) bool { return role == RoleAdmin }

func IsKnownRole(role string) bool {
	switch role {
	case RoleAdmin, RoleOperator, RoleViewer:
		return true
	default:
		return false
	}
}

// CanInvoke reports whether role may invoke a tool.
// Viewers only reach read-only tools.
func CanInvoke(role string, readOnly bool) bool {
	switch role {
	case RoleAdmin, RoleOperator:
		return true
	case RoleViewer:
		return readOnly
	default:
		return false
	}
}
