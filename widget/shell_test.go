package widget

import "testing"

type noteMsg string

func TestShellKeepsPublicationOrder(t *testing.T) {
	shell := NewShell()
	shell.Publish(noteMsg("first"))
	shell.Publish(nil)
	shell.Publish(noteMsg("second"))

	msgs := shell.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected nil messages dropped, got %d messages", len(msgs))
	}
	if msgs[0] != noteMsg("first") || msgs[1] != noteMsg("second") {
		t.Fatalf("expected publication order preserved, got %v", msgs)
	}
}

func TestShellDrainResets(t *testing.T) {
	shell := NewShell()
	shell.Publish(noteMsg("one"))

	if got := shell.Drain(); len(got) != 1 {
		t.Fatalf("expected one drained message, got %d", len(got))
	}
	if got := shell.Drain(); len(got) != 0 {
		t.Fatalf("expected shell empty after drain, got %d", len(got))
	}
}
