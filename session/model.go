package session

// User is the authenticated identity held by the [Store]: who the operator
// is, the role they carry, and the flattened permission codes granted to
// them. It is replaced wholesale on login and profile refresh, never patched
// field by field.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`

	RoleName string `json:"role_name,omitempty"`
	IsStaff  bool   `json:"is_staff"`

	Permissions []string `json:"permissions,omitempty"`
}

// Tokens is the bearer credential pair. Access is short-lived and replaced in
// place by silent refresh; Refresh is immutable once set.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
