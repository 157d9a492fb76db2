package session

import "testing"

func TestSessionLifecycle(t *testing.T) {
	m := NewManager()

	token := m.Create(42)
	if token == "" {
		t.Fatal("Create returned empty token")
	}

	userID, ok := m.Get(token)
	if !ok || userID != 42 {
		t.Errorf("Get = (%d, %v), want (42, true)", userID, ok)
	}

	m.Destroy(token)
	if _, ok := m.Get(token); ok {
		t.Error("token still valid after Destroy")
	}
}

func TestSessionTokensAreUnique(t *testing.T) {
	m := NewManager()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := m.Create(int64(i))
		if seen[token] {
			t.Fatalf("duplicate token issued: %s", token)
		}
		seen[token] = true
	}
}

func TestDestroyUnknownTokenIsNoOp(t *testing.T) {
	m := NewManager()
	token := m.Create(1)

	m.Destroy("not-a-token")

	if _, ok := m.Get(token); !ok {
		t.Error("unrelated session was destroyed")
	}
}
