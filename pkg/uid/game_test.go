package uid

import "testing"

func TestGenerateGameIDIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := GenerateGameID()
		if !IsGameID(id) {
			t.Fatalf("%q is not a valid game id", id)
		}
		if seen[id] {
			t.Fatalf("duplicate game id %q", id)
		}
		seen[id] = true
	}
	if IsGameID("not-an-id") {
		t.Fatalf("garbage accepted as game id")
	}
}
