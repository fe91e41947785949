package pharmaclient

/*
====================================
AUTH / IDENTITY
====================================
*/

// User is the backend's full user record.
type User struct {
	ID          string      `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Role        *string     `json:"role,omitempty"`
	RoleName    *string     `json:"role_name,omitempty"`
	RoleDetail  *RoleDetail `json:"role_detail,omitempty"`
	IsActive    bool        `json:"is_active"`
	IsStaff     bool        `json:"is_staff"`
	CreatedAt   string      `json:"created_at"`
	Permissions []string    `json:"permissions,omitempty"`
}

// RoleDetail is a role with its resolved permission records.
type RoleDetail struct {
	ID                int                `json:"id"`
	Name              string             `json:"name"`
	Permissions       []int              `json:"permissions"`
	PermissionsDetail []PermissionDetail `json:"permissions_detail"`
	IsActive          bool               `json:"is_active"`
}

// PermissionDetail is a single permission record.
type PermissionDetail struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Codename         string `json:"codename"`
	ContentType      int    `json:"content_type"`
	ContentTypeLabel string `json:"content_type_label"`
	ContentTypeModel string `json:"content_type_model"`
}

// LoginPayload carries the login credentials.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterPayload carries a new account registration.
type RegisterPayload struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthTokens is the JWT pair returned by login.
type AuthTokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// UpdateProfilePayload carries a partial profile update.
type UpdateProfilePayload struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// ChangePasswordPayload carries a password change for the current user.
type ChangePasswordPayload struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

/*
====================================
USER / ROLE / PERMISSION ADMIN
====================================
*/

// UserCreatePayload creates a user account.
type UserCreatePayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     *int   `json:"role,omitempty"`
}

// UserUpdatePayload partially updates a user account.
type UserUpdatePayload struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     *int   `json:"role,omitempty"`
}

// UsersListParams filters the user list.
type UsersListParams struct {
	Search   string
	Ordering string
}

// RoleCreatePayload creates a role.
type RoleCreatePayload struct {
	Name        string `json:"name"`
	Permissions []int  `json:"permissions"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// RoleUpdatePayload partially updates a role.
type RoleUpdatePayload struct {
	Name        string `json:"name,omitempty"`
	Permissions []int  `json:"permissions,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// PermissionCreatePayload creates a permission record.
type PermissionCreatePayload struct {
	Name        string `json:"name"`
	Codename    string `json:"codename"`
	ContentType int    `json:"content_type"`
}

// PermissionUpdatePayload partially updates a permission record.
type PermissionUpdatePayload struct {
	Name        string `json:"name,omitempty"`
	Codename    string `json:"codename,omitempty"`
	ContentType *int   `json:"content_type,omitempty"`
}
