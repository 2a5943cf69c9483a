package auth

import (
	"errors"
	"testing"

	"fullwoodjoz/visitus/internal/constants"
)

var testSecret = []byte("unit-test-secret")

func TestIssueAndParseToken(t *testing.T) {
	raw, err := IssueToken(testSecret, "user-1", "yann", "fjm", constants.RoleSubmitter)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	claims, err := ParseToken(testSecret, raw)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if claims.UserID() != "user-1" || claims.Username() != "yann" {
		t.Fatalf("claims identity = %s/%s", claims.UserID(), claims.Username())
	}
	if claims.TenantID() != "fjm" {
		t.Fatalf("tenant = %q", claims.TenantID())
	}
	if claims.IsAdmin() {
		t.Fatal("submitter claims report admin")
	}
	if claims.Source() != "JWT" {
		t.Fatalf("source = %q", claims.Source())
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	raw, err := IssueToken(testSecret, "user-1", "yann", "fjm", constants.RoleAdmin)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	_, err = ParseToken([]byte("other-secret"), raw)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken(testSecret, "not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAdminRoleClaims(t *testing.T) {
	raw, err := IssueToken(testSecret, "user-2", "root", "fjm", constants.RoleAdmin)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	claims, err := ParseToken(testSecret, raw)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if !claims.IsAdmin() {
		t.Fatal("admin token not recognized as admin")
	}
}

func TestAPIKeyClaimsAreAdmin(t *testing.T) {
	claims := &APIKeyClaims{KeyID: "key-1", TenantUUID: "fjm"}
	if !claims.IsAdmin() {
		t.Fatal("API key claims must act as admin")
	}
	if claims.Source() != "API_KEY" {
		t.Fatalf("source = %q", claims.Source())
	}
}
