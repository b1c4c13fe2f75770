package password

import "testing"

// Cost 4 keeps the hashing rounds cheap for tests.
func testHasher() *Hasher {
	return NewHasher(Config{BcryptCost: 4})
}

func TestHashAndVerify(t *testing.T) {
	h := testHasher()

	hash, err := h.Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "pw123456" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !h.Verify("pw123456", hash) {
		t.Error("expected correct password to verify")
	}
	if h.Verify("wrong", hash) {
		t.Error("expected wrong password to fail verification")
	}
}

func TestHash_Salted(t *testing.T) {
	h := testHasher()

	h1, err := h.Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	h2, err := h.Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password must differ (salt)")
	}
	if !h.Verify("pw123456", h1) || !h.Verify("pw123456", h2) {
		t.Error("both salted hashes must verify against the password")
	}
}

func TestHash_RejectsEmptyAndOversized(t *testing.T) {
	h := testHasher()

	if _, err := h.Hash(""); err == nil {
		t.Error("expected empty password to fail")
	}

	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := h.Hash(string(long)); err == nil {
		t.Error("expected >72 byte password to fail")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	h := testHasher()

	if h.Verify("pw123456", "not-a-bcrypt-hash") {
		t.Error("expected malformed hash to verify false")
	}
	if h.Verify("pw123456", "") {
		t.Error("expected empty hash to verify false")
	}
}
