package session

import (
	"testing"
)

func newTestStore(t *testing.T) (*Store, *MemoryAdapter) {
	t.Helper()
	adapter := NewMemoryAdapter()
	return NewStore(adapter, nil), adapter
}

func cashierUser() User {
	return User{
		ID:          "u-1",
		Username:    "cashier",
		Email:       "cashier@pharmacy.test",
		RoleName:    "cashier",
		Permissions: []string{"view_sale", "add_sale"},
	}
}

func testTokens() Tokens {
	return Tokens{Access: "access-1", Refresh: "refresh-1"}
}

func TestAuthenticatedTracksTokens(t *testing.T) {
	store, _ := newTestStore(t)

	if store.Authenticated() {
		t.Fatal("empty store must not be authenticated")
	}

	store.Login(cashierUser(), testTokens())
	if !store.Authenticated() {
		t.Fatal("store must be authenticated after Login")
	}

	store.SetUser(nil)
	if !store.Authenticated() {
		t.Fatal("SetUser must not touch tokens")
	}

	store.SetTokens(nil)
	if store.Authenticated() {
		t.Fatal("nil tokens must de-authenticate")
	}

	store.SetTokens(&Tokens{Access: "a", Refresh: "r"})
	if !store.Authenticated() {
		t.Fatal("SetTokens must authenticate")
	}

	store.Logout()
	if store.Authenticated() {
		t.Fatal("store must not be authenticated after Logout")
	}
	if _, ok := store.Tokens(); ok {
		t.Fatal("tokens must be cleared after Logout")
	}
}

func TestAdminBypass(t *testing.T) {
	cases := []struct {
		name string
		user User
	}{
		{"role name admin", User{ID: "u-2", RoleName: "admin"}},
		{"role name mixed case", User{ID: "u-3", RoleName: "AdMiN"}},
		{"staff flag", User{ID: "u-4", RoleName: "cashier", IsStaff: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, _ := newTestStore(t)
			store.Login(tc.user, testTokens())

			if !store.HasPermission("anything") {
				t.Error("HasPermission must bypass for admin/staff")
			}
			if !store.HasAnyPermission([]string{"x", "y"}) {
				t.Error("HasAnyPermission must bypass for admin/staff")
			}
			if !store.HasAllPermissions([]string{"x", "y"}) {
				t.Error("HasAllPermissions must bypass for admin/staff")
			}
		})
	}
}

func TestPermissionRecomputeOnSetUser(t *testing.T) {
	store, _ := newTestStore(t)
	store.Login(cashierUser(), testTokens())

	store.SetUser(&User{ID: "u-1", RoleName: "cashier", Permissions: []string{"a", "b"}})
	if !store.HasAnyPermission([]string{"b", "c"}) {
		t.Fatal("expected b to be held after SetUser")
	}

	store.SetUser(&User{ID: "u-1", RoleName: "cashier"})
	if store.HasAnyPermission([]string{"b", "c"}) {
		t.Fatal("permissions must be recomputed, not merged")
	}
}

func TestUpdateAccessTokenPreservesRefresh(t *testing.T) {
	store, _ := newTestStore(t)
	store.Login(cashierUser(), Tokens{Access: "old", Refresh: "r1"})

	store.UpdateAccessToken("new")

	tokens, ok := store.Tokens()
	if !ok {
		t.Fatal("tokens must still be held")
	}
	if tokens.Access != "new" || tokens.Refresh != "r1" {
		t.Fatalf("tokens = %+v, want access=new refresh=r1", tokens)
	}
}

func TestUpdateAccessTokenNoOpWhenEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	store.UpdateAccessToken("new")

	if _, ok := store.Tokens(); ok {
		t.Fatal("UpdateAccessToken on empty store must not create tokens")
	}
	if store.Authenticated() {
		t.Fatal("store must remain unauthenticated")
	}
}

func TestLogoutClearsAdminBypass(t *testing.T) {
	store, _ := newTestStore(t)
	store.Login(User{ID: "u-9", RoleName: "admin"}, testTokens())

	if !store.HasPermission("anything") {
		t.Fatal("admin bypass expected before logout")
	}

	store.Logout()

	if store.HasPermission("anything") {
		t.Fatal("bypass must not survive logout")
	}
	if got := store.Permissions(); len(got) != 0 {
		t.Fatalf("permissions after logout = %v, want empty", got)
	}
}

func TestRehydrateRoundTrip(t *testing.T) {
	adapter := NewMemoryAdapter()

	first := NewStore(adapter, nil)
	first.Login(cashierUser(), testTokens())

	second := NewStore(adapter, nil)

	if !second.Authenticated() {
		t.Fatal("rehydrated store must be authenticated")
	}
	user, ok := second.User()
	if !ok || user.ID != "u-1" || user.Username != "cashier" {
		t.Fatalf("rehydrated user = %+v, ok=%v", user, ok)
	}
	tokens, _ := second.Tokens()
	if tokens != testTokens() {
		t.Fatalf("rehydrated tokens = %+v", tokens)
	}
	if !second.HasPermission("view_sale") {
		t.Fatal("rehydrated permissions must be queryable")
	}
}

func TestRehydrateEmptyWhenNoSnapshot(t *testing.T) {
	store := NewStore(NewMemoryAdapter(), nil)

	if store.Authenticated() {
		t.Fatal("store without snapshot must start empty")
	}
	if _, ok := store.User(); ok {
		t.Fatal("store without snapshot must hold no user")
	}
}

func TestRehydrateCorruptSnapshotStartsEmpty(t *testing.T) {
	adapter := NewMemoryAdapter()
	if err := adapter.Save(t.Context(), []byte("{not json")); err != nil {
		t.Fatalf("seed adapter: %v", err)
	}

	store := NewStore(adapter, nil)
	if store.Authenticated() {
		t.Fatal("corrupt snapshot must yield an empty store")
	}
}

func TestNilAdapterStoreIsUsable(t *testing.T) {
	store := NewStore(nil, nil)
	store.Login(cashierUser(), testTokens())
	if !store.HasPermission("view_sale") {
		t.Fatal("store without adapter must still work in memory")
	}
	store.Logout()
	if store.Authenticated() {
		t.Fatal("logout must clear in-memory state")
	}
}

func TestUserReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t)
	store.Login(cashierUser(), testTokens())

	user, _ := store.User()
	user.RoleName = "admin"

	if store.HasPermission("anything_at_all") {
		t.Fatal("mutating the returned user must not grant bypass")
	}
}
