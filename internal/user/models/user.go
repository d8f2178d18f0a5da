package models

// Role is the permission class attached to a user. Nothing in the registry
// enforces it.
type Role string

const (
	RoleWriter Role = "WRITER"
	RoleReader Role = "READER"
)

// DefaultRole is applied when a create request leaves Role empty.
const DefaultRole = RoleReader

func (r Role) String() string {
	return string(r)
}

// User is a blog user record.
//
// Invariants:
//   - ID is generated by the registry and never changes
//   - the registry never mutates a record after it is added
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// CreateUserRequest is the input to user creation. Role is optional.
type CreateUserRequest struct {
	Name string `json:"name"`
	Role Role   `json:"role,omitempty"`
}

// Normalize applies defaults to unset fields.
func (r *CreateUserRequest) Normalize() {
	if r.Role == "" {
		r.Role = DefaultRole
	}
}
