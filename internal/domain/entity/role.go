package entity

// Role identifies a class of authenticated caller on admin routes.
type Role string

const (
	// RoleAdmin may operate on any applicant's records.
	RoleAdmin Role = "admin"
	// RoleApplicant may only operate on its own records.
	RoleApplicant Role = "applicant"
)

// Roles is a set of roles carried by a token.
type Roles []Role

// ToStrings converts the roles to plain strings for token claims.
func (r Roles) ToStrings() []string {
	out := make([]string, 0, len(r))
	for _, role := range r {
		out = append(out, string(role))
	}

	return out
}

// Contains reports whether the set carries the given role.
func (r Roles) Contains(role Role) bool {
	for _, candidate := range r {
		if candidate == role {
			return true
		}
	}

	return false
}
