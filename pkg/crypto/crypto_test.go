package crypto

import "testing"

func TestHash(t *testing.T) {
	// Known SHA-256 vector.
	if got := Hash(""); got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Errorf("Hash(\"\") = %s", got)
	}
	if Hash("a") == Hash("b") {
		t.Error("distinct inputs must not collide")
	}
	if Hash("token") != Hash("token") {
		t.Error("digest must be deterministic")
	}
}

func TestHashEqual(t *testing.T) {
	d := Hash("refresh-token")
	if !HashEqual(d, "refresh-token") {
		t.Error("matching value must compare equal")
	}
	if HashEqual(d, "other-token") {
		t.Error("non-matching value must not compare equal")
	}
}
