package entities

// Role is the role claim carried by the session token.
type Role string

const (
	RoleIntakeClerk   Role = "intake_clerk"
	RoleDiagnostician Role = "diagnostician"
	RolePartsClerk    Role = "parts_clerk"
	RoleTechnician    Role = "technician"
	RoleAdministrator Role = "administrator"
)

func (r Role) Valid() bool {
	switch r {
	case RoleIntakeClerk, RoleDiagnostician, RolePartsClerk, RoleTechnician, RoleAdministrator:
		return true
	}
	return false
}

// Actor is the authenticated caller of a command.
type Actor struct {
	ID   int64 `json:"id"`
	Role Role  `json:"role"`
}
