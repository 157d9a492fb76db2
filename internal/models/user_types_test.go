package models

import "testing"

func TestPasswordSetAndMatches(t *testing.T) {
	var p Password
	if err := p.Set("secret1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if p.Hash == "" || p.Hash == "secret1" {
		t.Error("hash missing or stored in plaintext")
	}

	verify := Password{Hash: p.Hash}

	match, err := verify.Matches("secret1")
	if err != nil || !match {
		t.Errorf("Matches(correct) = (%v, %v), want (true, nil)", match, err)
	}

	match, err = verify.Matches("wrong")
	if err != nil {
		t.Errorf("Matches(wrong) returned error: %v", err)
	}
	if match {
		t.Error("wrong password matched")
	}
}

func TestPasswordHashesAreSalted(t *testing.T) {
	var a, b Password
	if err := a.Set("secret1"); err != nil {
		t.Fatal(err)
	}
	if err := b.Set("secret1"); err != nil {
		t.Fatal(err)
	}
	if a.Hash == b.Hash {
		t.Error("two hashes of the same password are identical")
	}
}
