package pharmaclient

import (
	"context"
	"strconv"
)

/*
====================================
USERS
====================================
*/

// ListUsers lists user accounts.
func (c *Client) ListUsers(ctx context.Context, params UsersListParams) ([]User, error) {
	query := map[string]string{
		"search":   params.Search,
		"ordering": params.Ordering,
	}
	return getList[User](ctx, c, endpointUsers, query)
}

// GetUser fetches one user account.
func (c *Client) GetUser(ctx context.Context, id string) (User, error) {
	return getJSON[User](ctx, c, detailPath(endpointUsers, id), nil)
}

// CreateUser creates a user account.
func (c *Client) CreateUser(ctx context.Context, payload UserCreatePayload) (User, error) {
	return postJSON[User](ctx, c, endpointUsers, payload)
}

// UpdateUser partially updates a user account.
func (c *Client) UpdateUser(ctx context.Context, id string, payload UserUpdatePayload) (User, error) {
	return patchJSON[User](ctx, c, detailPath(endpointUsers, id), payload)
}

// DeleteUser deletes a user account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.delete(ctx, detailPath(endpointUsers, id))
}

// GetUserAuthInfo fetches the calling user's account with its role and
// permissions resolved. Unlike CurrentUser it does not touch the local
// session; callers use it to inspect what the backend currently grants.
func (c *Client) GetUserAuthInfo(ctx context.Context) (User, error) {
	return getJSON[User](ctx, c, endpointUsersAuthInfo, nil)
}

/*
====================================
ROLES
====================================
*/

// ListRoles lists roles with their resolved permissions.
func (c *Client) ListRoles(ctx context.Context) ([]RoleDetail, error) {
	return getList[RoleDetail](ctx, c, endpointRoles, nil)
}

// GetRole fetches one role.
func (c *Client) GetRole(ctx context.Context, id int) (RoleDetail, error) {
	return getJSON[RoleDetail](ctx, c, detailPath(endpointRoles, strconv.Itoa(id)), nil)
}

// CreateRole creates a role.
func (c *Client) CreateRole(ctx context.Context, payload RoleCreatePayload) (RoleDetail, error) {
	return postJSON[RoleDetail](ctx, c, endpointRoles, payload)
}

// UpdateRole partially updates a role.
func (c *Client) UpdateRole(ctx context.Context, id int, payload RoleUpdatePayload) (RoleDetail, error) {
	return patchJSON[RoleDetail](ctx, c, detailPath(endpointRoles, strconv.Itoa(id)), payload)
}

// DeleteRole deletes a role.
func (c *Client) DeleteRole(ctx context.Context, id int) error {
	return c.delete(ctx, detailPath(endpointRoles, strconv.Itoa(id)))
}

/*
====================================
PERMISSIONS
====================================
*/

// ListPermissions lists permission records.
func (c *Client) ListPermissions(ctx context.Context) ([]PermissionDetail, error) {
	return getList[PermissionDetail](ctx, c, endpointPermissions, nil)
}

// GetPermission fetches one permission record.
func (c *Client) GetPermission(ctx context.Context, id int) (PermissionDetail, error) {
	return getJSON[PermissionDetail](ctx, c, detailPath(endpointPermissions, strconv.Itoa(id)), nil)
}

// CreatePermission creates a permission record.
func (c *Client) CreatePermission(ctx context.Context, payload PermissionCreatePayload) (PermissionDetail, error) {
	return postJSON[PermissionDetail](ctx, c, endpointPermissions, payload)
}

// UpdatePermission partially updates a permission record.
func (c *Client) UpdatePermission(ctx context.Context, id int, payload PermissionUpdatePayload) (PermissionDetail, error) {
	return patchJSON[PermissionDetail](ctx, c, detailPath(endpointPermissions, strconv.Itoa(id)), payload)
}

// DeletePermission deletes a permission record.
func (c *Client) DeletePermission(ctx context.Context, id int) error {
	return c.delete(ctx, detailPath(endpointPermissions, strconv.Itoa(id)))
}
