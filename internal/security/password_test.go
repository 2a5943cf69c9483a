package security

import (
	"strings"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !strings.HasPrefix(hash, "v1$") {
		t.Fatalf("hash missing version prefix: %q", hash)
	}
	if !VerifyPassword("correct horse battery", hash) {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword("wrong horse battery", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	a, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatal(err)
	}
	b, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("two hashes of the same password must use different salts")
	}
}

func TestHashPasswordTooShort(t *testing.T) {
	if _, err := HashPassword("short"); err == nil {
		t.Fatal("expected error for short password")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	for _, encoded := range []string{
		"",
		"v1$180000$salt",
		"v0$180000$c2FsdA$ZGlnZXN0",
		"v1$999$c2FsdA$ZGlnZXN0",
		"v1$180000$!!!$ZGlnZXN0",
	} {
		if VerifyPassword("whatever password", encoded) {
			t.Fatalf("malformed hash %q accepted", encoded)
		}
	}
}
