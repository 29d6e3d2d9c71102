package history

import (
	"fmt"
	"testing"
)

func TestAppendAndLast(t *testing.T) {
	b := NewBuffer(10)
	b.Append("alice", "one")
	b.Append("bob", "two")
	b.Append("alice", "three")

	if b.Len() != 3 {
		t.Fatalf("Len=%d want 3", b.Len())
	}
	last := b.Last(2)
	if len(last) != 2 || last[0].Raw != "two" || last[1].Raw != "three" {
		t.Fatalf("Last(2) returned wrong messages: %+v", last)
	}
	if got := b.Last(99); len(got) != 3 {
		t.Fatalf("Last(99) should cap at backlog size, got %d", len(got))
	}
}

func TestBlankMessagesIgnored(t *testing.T) {
	b := NewBuffer(10)
	if m := b.Append("alice", "   "); m != nil {
		t.Fatalf("blank message should be dropped")
	}
	if b.Len() != 0 {
		t.Fatalf("Len=%d want 0", b.Len())
	}
}

func TestCapacityTrimsOldest(t *testing.T) {
	b := NewBuffer(3)
	for i := 0; i < 5; i++ {
		b.Append("alice", fmt.Sprintf("msg %d", i))
	}
	if b.Len() != 3 {
		t.Fatalf("Len=%d want 3", b.Len())
	}
	if got := b.All()[0].Raw; got != "msg 2" {
		t.Fatalf("oldest survivor=%q want msg 2", got)
	}
}

func TestSetCapacityTrimsImmediately(t *testing.T) {
	b := NewBuffer(10)
	for i := 0; i < 6; i++ {
		b.Append("bob", fmt.Sprintf("m%d", i))
	}
	b.SetCapacity(2)
	if b.Len() != 2 {
		t.Fatalf("Len=%d want 2", b.Len())
	}
	if got := b.All()[0].Raw; got != "m4" {
		t.Fatalf("oldest survivor=%q want m4", got)
	}
}

func TestAllReturnsDetachedSlice(t *testing.T) {
	b := NewBuffer(10)
	b.Append("alice", "one")
	b.Append("bob", "two")

	snapshot := b.All()
	snapshot = append(snapshot, &Message{Sender: "mallory", Raw: "injected"})
	b.Append("alice", "three")

	got := b.All()
	if len(got) != 3 {
		t.Fatalf("Len=%d want 3", len(got))
	}
	for _, m := range got {
		if m.Sender == "mallory" {
			t.Fatalf("growing a returned slice leaked into the buffer")
		}
	}
	if got[2].Raw != "three" {
		t.Fatalf("newest=%q want three", got[2].Raw)
	}
	if len(snapshot) != 3 {
		t.Fatalf("snapshot len=%d want 3", len(snapshot))
	}
}

func TestMarkupMemoized(t *testing.T) {
	b := NewBuffer(10)
	m := b.Append("alice", "\x02hi\x02 there")
	want := "<b>hi</b> there"
	if got := m.Markup(); got != want {
		t.Fatalf("Markup=%q want=%q", got, want)
	}
	// The cached value must survive repeat calls unchanged.
	if got := m.Markup(); got != want {
		t.Fatalf("second Markup=%q want=%q", got, want)
	}
	if !m.transcoded {
		t.Fatalf("markup not cached after first call")
	}
}
