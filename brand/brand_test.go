package brand

import "testing"

func TestLookup(t *testing.T) {
	if b := Lookup("columbia"); b.Name != "Columbia Country Club" {
		t.Fatalf("unexpected brand %+v", b)
	}
	if b := Lookup(""); b.ID != Default().ID {
		t.Fatalf("expected the empty ID to resolve to the default brand, got %+v", b)
	}
	if b := Lookup("unknown"); b.ID != Default().ID {
		t.Fatalf("expected unknown IDs to fall back to the default brand, got %+v", b)
	}
}

func TestBrandsCarryClubIDs(t *testing.T) {
	for _, id := range IDs() {
		if b := Lookup(id); b.ClubID == "" {
			t.Fatalf("brand %q has no club identifier", id)
		}
	}
}
