package auth

import "testing"

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cretpassword")

	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if hash == "s3cretpassword" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !CheckPassword(hash, "s3cretpassword") {
		t.Error("correct password rejected")
	}

	if CheckPassword(hash, "wrongpassword") {
		t.Error("wrong password accepted")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("s3cretpassword")

	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	second, err := HashPassword("s3cretpassword")

	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password should differ")
	}
}
