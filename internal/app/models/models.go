package models

// RoleType defines the caller role carried in access tokens
type RoleType string

const (
	RoleStudent    RoleType = "STUDENT"
	RoleInstructor RoleType = "INSTRUCTOR"
	RoleAdmin      RoleType = "ADMIN"
)

// IsValid reports whether r is one of the known roles.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// Caller is the authenticated identity a mutating request acts on behalf of.
type Caller struct {
	UserID int64
	Role   RoleType
}

// IsAdmin reports whether the caller has the administrator role.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
