package widget

import "testing"

func TestNamedIdentitiesAreStable(t *testing.T) {
	if Named("submit") != Named("submit") {
		t.Fatalf("expected the same name to map to the same identity")
	}
	if Named("submit") == Named("cancel") {
		t.Fatalf("expected different names to map to different identities")
	}
}

func TestUniqueIdentitiesAreDistinct(t *testing.T) {
	if NewUnique() == NewUnique() {
		t.Fatalf("expected distinct unique identities")
	}
}

func TestZeroIdentity(t *testing.T) {
	var id ID
	if !id.IsZero() {
		t.Fatalf("expected zero value to report IsZero")
	}
	if Named("x").IsZero() {
		t.Fatalf("expected named identity to be non-zero")
	}
}
