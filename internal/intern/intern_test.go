package intern

import (
	"fmt"
	"testing"
)

func TestInternUniqueness(t *testing.T) {
	tab := New()

	a1 := tab.Intern([]byte("hello"))
	a2 := tab.Intern([]byte("hello"))
	if a1 != a2 {
		t.Fatalf("equal bytes produced different handles: %v != %v", a1, a2)
	}

	b := tab.Intern([]byte("world"))
	if b == a1 {
		t.Fatalf("distinct bytes produced the same handle")
	}

	if tab.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tab.Len())
	}
}

func TestLookupReturnsCanonicalBytes(t *testing.T) {
	tab := New()
	h := tab.Intern([]byte("atom-value"))
	if got := string(tab.Lookup(h)); got != "atom-value" {
		t.Fatalf("Lookup = %q, want %q", got, "atom-value")
	}
}

func TestInternDoesNotAliasCallerBuffer(t *testing.T) {
	tab := New()
	buf := []byte("mutate-me")
	h := tab.Intern(buf)
	buf[0] = 'X'
	if got := string(tab.Lookup(h)); got != "mutate-me" {
		t.Fatalf("Lookup = %q, want unaffected %q", got, "mutate-me")
	}
}

func TestInternGrowsAndStaysConsistent(t *testing.T) {
	tab := New()
	handles := make(map[string]Handle)

	for i := 0; i < 5000; i++ {
		s := fmt.Sprintf("atom-%d", i%500)
		h := tab.Intern([]byte(s))
		if prev, ok := handles[s]; ok {
			if prev != h {
				t.Fatalf("handle for %q changed from %v to %v after growth", s, prev, h)
			}
		} else {
			handles[s] = h
		}
	}

	if tab.Len() != 500 {
		t.Fatalf("Len() = %d, want 500", tab.Len())
	}

	for s, h := range handles {
		if got := string(tab.Lookup(h)); got != s {
			t.Fatalf("Lookup(%v) = %q, want %q", h, got, s)
		}
	}
}

func TestEmptyAtom(t *testing.T) {
	tab := New()
	h := tab.Intern(nil)
	if got := tab.Lookup(h); len(got) != 0 {
		t.Fatalf("Lookup of empty intern = %q, want empty", got)
	}
	h2 := tab.Intern([]byte{})
	if h2 != h {
		t.Fatalf("nil and empty slice interned to different handles")
	}
}
