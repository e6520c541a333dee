package presence

import (
	"reflect"
	"testing"
)

func keys(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Key
		if !e.IsPresent {
			out[i] += "(exit)"
		}
	}
	return out
}

func children(ks ...string) []Child {
	out := make([]Child, len(ks))
	for i, k := range ks {
		out[i] = Child{Key: k, Value: k}
	}
	return out
}

func TestRemovalDeferredUntilExitComplete(t *testing.T) {
	p := New(ModeSync)
	drained := 0
	p.OnExitComplete = func() { drained++ }

	p.Update(children("a", "b"))
	p.Update(children("a"))

	if got := keys(p.Rendered()); !reflect.DeepEqual(got, []string{"a", "b(exit)"}) {
		t.Fatalf("rendered = %v", got)
	}
	if !p.IsExiting("b") {
		t.Error("b should be exiting")
	}

	p.ExitComplete("a")
	p.ExitComplete("b")
	p.ExitComplete("b")

	if got := keys(p.Rendered()); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("rendered = %v", got)
	}
	if drained != 1 {
		t.Errorf("OnExitComplete fired %d times, want 1", drained)
	}
}

func TestSyncEntersWhileExiting(t *testing.T) {
	p := New(ModeSync)
	p.Update(children("a"))
	p.Update(children("b"))

	if got := keys(p.Rendered()); !reflect.DeepEqual(got, []string{"a(exit)", "b"}) {
		t.Errorf("rendered = %v", got)
	}
}

func TestWaitHoldsEnteringChildren(t *testing.T) {
	p := New(ModeWait)
	p.Update(children("a"))
	p.Update(children("b"))

	if got := keys(p.Rendered()); !reflect.DeepEqual(got, []string{"a(exit)"}) {
		t.Fatalf("rendered = %v", got)
	}

	p.ExitComplete("a")
	if got := keys(p.Rendered()); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("rendered = %v", got)
	}
}

func TestPopLayoutFlagsExiting(t *testing.T) {
	p := New(ModePopLayout)
	p.Update(children("a", "b"))
	p.Update(children("b", "c"))

	for _, e := range p.Rendered() {
		if e.Key == "a" && !e.Popped {
			t.Error("exiting child should be popped")
		}
		if e.Key != "a" && e.Popped {
			t.Errorf("%s should not be popped", e.Key)
		}
	}
}

func TestReturningChildBecomesPresent(t *testing.T) {
	p := New(ModeSync)
	p.Update(children("a"))
	p.Update(nil)
	p.Update([]Child{{Key: "a", Value: 2}})

	entries := p.Rendered()
	if len(entries) != 1 || !entries[0].IsPresent || entries[0].Child.Value != 2 {
		t.Errorf("unexpected entries %+v", entries)
	}
	if p.IsExiting("a") {
		t.Error("a should no longer be exiting")
	}
}

type member struct {
	calls []bool
	done  func()
}

func (m *member) SetPresent(present bool, onExitComplete func()) {
	m.calls = append(m.calls, present)
	m.done = onExitComplete
}

func TestBoundMemberDrivesRemoval(t *testing.T) {
	p := New(ModeWait)
	p.Update(children("a"))
	a := &member{}
	p.Bind("a", a)

	p.Update(children("b"))
	if !reflect.DeepEqual(a.calls, []bool{false}) || a.done == nil {
		t.Fatalf("member calls = %v", a.calls)
	}
	if got := keys(p.Rendered()); !reflect.DeepEqual(got, []string{"a(exit)"}) {
		t.Fatalf("rendered = %v", got)
	}

	a.done()
	if got := keys(p.Rendered()); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("rendered = %v", got)
	}
}

func TestSafeToRemoveOnEntry(t *testing.T) {
	p := New(ModeSync)
	p.Update(children("a", "b"))
	p.Update(children("b"))

	entries := p.Rendered()
	if entries[0].SafeToRemove == nil || entries[1].SafeToRemove != nil {
		t.Fatalf("SafeToRemove should be set only on the exiting child")
	}
	entries[0].SafeToRemove()
	if got := keys(p.Rendered()); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("rendered = %v", got)
	}
}

func TestBindWhileExitingStartsExit(t *testing.T) {
	p := New(ModeSync)
	p.Update(children("a"))
	p.Update(nil)

	a := &member{}
	p.Bind("a", a)
	if !reflect.DeepEqual(a.calls, []bool{false}) {
		t.Fatalf("member calls = %v", a.calls)
	}
	a.done()
	if len(p.Rendered()) != 0 {
		t.Errorf("rendered = %v", keys(p.Rendered()))
	}
}

func TestInterruptedExitCallbackIgnored(t *testing.T) {
	p := New(ModeSync)
	p.Update(children("a"))
	a := &member{}
	p.Bind("a", a)

	p.Update(nil)
	first := a.done
	p.Update(children("a"))
	p.Update(nil)
	if !reflect.DeepEqual(a.calls, []bool{false, true, false}) {
		t.Fatalf("member calls = %v", a.calls)
	}

	first()
	if !p.IsExiting("a") {
		t.Fatal("callback from the interrupted exit removed the child")
	}
	a.done()
	if len(p.Rendered()) != 0 {
		t.Errorf("rendered = %v", keys(p.Rendered()))
	}
}

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"sync":      ModeSync,
		"wait":      ModeWait,
		"popLayout": ModePopLayout,
		"bogus":     ModeSync,
	}
	for in, want := range tests {
		if got := ParseMode(in); got != want {
			t.Errorf("ParseMode(%q) = %v, want %v", in, got, want)
		}
	}
	if ModePopLayout.String() != "popLayout" {
		t.Errorf("String = %q", ModePopLayout.String())
	}
}
