package entity

// Role names as reported by the upstream API. The gateway copies the role
// verbatim from upstream responses and never assigns one itself.
const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// IsValidRole reports whether the role name is one the upstream may assign.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}
