package user

import "testing"

func TestRegisterAssignsRoleAndToken(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil))

	created, err := service.Register(User{
		Email:    "a@x.com",
		Password: "secret123",
		// a hostile payload may carry roles and a token; both must be discarded
		Roles:    []string{"ROLE_ADMIN"},
		APIToken: "attacker-chosen",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if len(created.Roles) != 1 || created.Roles[0] != RoleUser {
		t.Fatalf("expected roles [%s], got %v", RoleUser, created.Roles)
	}
	if created.APIToken == "" || created.APIToken == "attacker-chosen" {
		t.Fatalf("api token was not issued server-side: %q", created.APIToken)
	}
	if len(created.APIToken) != apiTokenBytes*2 {
		t.Fatalf("unexpected token length %d", len(created.APIToken))
	}
	if created.CreatedAt == "" {
		t.Fatal("createdAt not set")
	}
	if created.UpdatedAt != "" {
		t.Fatalf("updatedAt should be empty on a fresh account, got %q", created.UpdatedAt)
	}
	if created.Password == "secret123" {
		t.Fatal("password stored in plaintext")
	}
	if !CheckPassword("secret123", created.Password) {
		t.Fatal("stored hash does not verify original password")
	}
	if CheckPassword("wrong-password", created.Password) {
		t.Fatal("stored hash verifies a wrong password")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil))

	if _, err := service.Register(User{Email: "a@x.com", Password: "secret123"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	if _, err := service.Register(User{Email: "a@x.com", Password: "other456"}); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
	// uniqueness is case-insensitive
	if _, err := service.Register(User{Email: "A@X.COM", Password: "other456"}); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists for case variant, got %v", err)
	}
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil))

	if _, err := service.Register(User{Email: "", Password: "secret123"}); err != ErrEmailRequired {
		t.Fatalf("expected ErrEmailRequired, got %v", err)
	}
	if _, err := service.Register(User{Email: "a@x.com", Password: ""}); err != ErrPasswordRequired {
		t.Fatalf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil))
	created, err := service.Register(User{Email: "a@x.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	account, err := service.Authenticate("a@x.com", "secret123")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if account.APIToken != created.APIToken {
		t.Fatalf("login must return the existing token, got %q want %q", account.APIToken, created.APIToken)
	}

	// lookup is case-insensitive like registration
	if _, err := service.Authenticate("A@x.Com", "secret123"); err != nil {
		t.Fatalf("case-variant authenticate failed: %v", err)
	}

	// wrong password and unknown email collapse into the same error
	if _, err := service.Authenticate("a@x.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := service.Authenticate("nobody@x.com", "secret123"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestUpdateProfilePartialMerge(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil))
	created, err := service.Register(User{Email: "a@x.com", Password: "secret123", FirstName: "Jean", LastName: "Dupont"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	first := "Marc"
	updated, err := service.UpdateProfile(created.ID, ProfileUpdate{FirstName: &first})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.FirstName != "Marc" {
		t.Fatalf("firstName not merged: %q", updated.FirstName)
	}
	if updated.LastName != "Dupont" || updated.Email != "a@x.com" {
		t.Fatalf("absent fields were modified: %+v", updated)
	}
	if updated.Password != created.Password {
		t.Fatal("password hash changed on a name-only edit")
	}
	if updated.APIToken != created.APIToken {
		t.Fatal("api token changed on edit")
	}
	if updated.UpdatedAt == "" {
		t.Fatal("updatedAt not set by edit")
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Fatal("createdAt changed on edit")
	}
}

func TestUpdateProfileRehashesPassword(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil))
	created, err := service.Register(User{Email: "a@x.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	newPassword := "changed456"
	updated, err := service.UpdateProfile(created.ID, ProfileUpdate{Password: &newPassword})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Password == created.Password {
		t.Fatal("hash unchanged after password edit")
	}
	if CheckPassword("secret123", updated.Password) {
		t.Fatal("old password still verifies")
	}
	if !CheckPassword("changed456", updated.Password) {
		t.Fatal("new password does not verify")
	}

	// an empty password in the payload means "keep the current one"
	empty := ""
	kept, err := service.UpdateProfile(created.ID, ProfileUpdate{Password: &empty})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if kept.Password != updated.Password {
		t.Fatal("empty password payload replaced the hash")
	}
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil))
	if _, err := service.Register(User{Email: "a@x.com", Password: "secret123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	second, err := service.Register(User{Email: "b@x.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	taken := "a@x.com"
	if _, err := service.UpdateProfile(second.ID, ProfileUpdate{Email: &taken}); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	// re-submitting your own email is not a conflict
	own := "b@x.com"
	if _, err := service.UpdateProfile(second.ID, ProfileUpdate{Email: &own}); err != nil {
		t.Fatalf("own email rejected: %v", err)
	}
}
