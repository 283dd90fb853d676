package entity

// Role is the closed set of account types used across all three services.
// The string values are part of the wire contract (token claims, request
// bodies) and must stay in sync everywhere a role is read or written.
type Role string

const (
	RoleDoctor  Role = "medico"
	RolePatient Role = "paciente"
	RoleAdmin   Role = "admin"
)

// IsValid reports whether r is one of the three known roles. Every
// boundary that accepts a role as input must check this.
func (r Role) IsValid() bool {
	switch r {
	case RoleDoctor, RolePatient, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
