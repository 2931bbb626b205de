package domain

// PrincipalType is the access tier encoded inside an auth token.
type PrincipalType string

const (
	PrincipalGuest      PrincipalType = "guest"
	PrincipalRegistered PrincipalType = "registered"
	PrincipalAdmin      PrincipalType = "admin"
)

// Valid reports whether t is one of the three known tiers.
func (t PrincipalType) Valid() bool {
	switch t {
	case PrincipalGuest, PrincipalRegistered, PrincipalAdmin:
		return true
	}
	return false
}

// Principal is the authenticated actor derived from a bearer token.
// UserID is nil for guests and always set for registered users and admins;
// the type tag, not the nil check, is authoritative for tier decisions.
type Principal struct {
	Type   PrincipalType
	UserID *int64
}

// GuestPrincipal returns the anonymous principal.
func GuestPrincipal() Principal {
	return Principal{Type: PrincipalGuest}
}

// RegisteredPrincipal returns a principal for a persisted user id.
func RegisteredPrincipal(id int64) Principal {
	return Principal{Type: PrincipalRegistered, UserID: &id}
}

// AdminPrincipal returns a principal for a persisted admin id.
func AdminPrincipal(id int64) Principal {
	return Principal{Type: PrincipalAdmin, UserID: &id}
}

// IsGuest reports whether the principal is anonymous.
func (p Principal) IsGuest() bool { return p.Type == PrincipalGuest }

// IsAdmin reports whether the principal holds the admin tier.
func (p Principal) IsAdmin() bool { return p.Type == PrincipalAdmin }
