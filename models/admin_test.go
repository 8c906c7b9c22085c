package models_test

import (
	"testing"

	"villageconnect-be/models"
)

func TestAdminPasswordRoundTrip(t *testing.T) {
	admin := models.Admin{Password: "s3cret-pass"}
	if err := admin.HashPassword(); err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if admin.Password == "s3cret-pass" {
		t.Fatal("password stored in plaintext")
	}
	if !admin.ComparePassword("s3cret-pass") {
		t.Error("ComparePassword rejected the correct password")
	}
	if admin.ComparePassword("wrong-pass") {
		t.Error("ComparePassword accepted a wrong password")
	}
}

func TestValidAdminRole(t *testing.T) {
	for _, r := range []string{models.RoleAdmin, models.RoleSuperAdmin} {
		if !models.ValidAdminRole(r) {
			t.Errorf("ValidAdminRole(%q) = false", r)
		}
	}
	for _, r := range []string{"", "user", "Admin", "root"} {
		if models.ValidAdminRole(r) {
			t.Errorf("ValidAdminRole(%q) = true", r)
		}
	}
}
