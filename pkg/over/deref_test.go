package over

import (
	"testing"
)

func TestOverDeref_InnerTarget(t *testing.T) {
	t.Parallel()
	b := NewBox("Hello, world!")
	got := OverDeref(b, func(s string) int { return len(s) })
	if got != 13 {
		t.Fatalf("expected 13, got: %v", got)
	}
}

func TestOverDeref_EqualsDirectApplication(t *testing.T) {
	t.Parallel()
	b := NewBox(5)
	double := func(n int) int { return n * 2 }
	if got, want := OverDeref[int, int](b, double), double(b.Deref()); got != want {
		t.Fatalf("expected OverDeref to match f(target): got %d, want %d", got, want)
	}
}

func TestOverDeref_WrapperUnchanged(t *testing.T) {
	t.Parallel()
	b := NewBox(5)
	OverDeref(b, func(n int) int { return n + 100 })
	if b.Deref() != 5 {
		t.Fatalf("read view must not change the target, got: %d", b.Deref())
	}
}

func TestOverDeref_CallsExactlyOnce(t *testing.T) {
	t.Parallel()
	calls := 0
	OverDeref(NewBox(1), func(int) int {
		calls++
		return 0
	})
	if calls != 1 {
		t.Fatalf("expected exactly 1 call, got: %d", calls)
	}
}

func TestOverDerefMut_MutatesInnerTarget(t *testing.T) {
	t.Parallel()
	b := NewBox(5)
	OverDerefMut(b, func(n *int) int {
		*n = *n*3 + 1
		return 0
	})
	if b.Deref() != 16 {
		t.Fatalf("expected inner target 16 after mutation, got: %d", b.Deref())
	}
}

func TestOverDerefMut_ReturnIsFunctionResult(t *testing.T) {
	t.Parallel()
	b := NewBox("go")
	got := OverDerefMut(b, func(s *string) int {
		*s += "lang"
		return len(*s)
	})
	if got != 6 {
		t.Fatalf("expected 6, got: %d", got)
	}
	if b.Deref() != "golang" {
		t.Fatalf("expected inner target \"golang\", got: %q", b.Deref())
	}
}

func TestOverDerefMut_CallsExactlyOnce(t *testing.T) {
	t.Parallel()
	calls := 0
	OverDerefMut(NewBox(1), func(p *int) int {
		calls++
		*p++
		return *p
	})
	if calls != 1 {
		t.Fatalf("expected exactly 1 call, got: %d", calls)
	}
}

func TestBox_SetAndDeref(t *testing.T) {
	t.Parallel()
	b := NewBox(1)
	b.Set(9)
	if b.Deref() != 9 {
		t.Fatalf("expected 9 after Set, got: %d", b.Deref())
	}
}

func TestBox_DerefMutAliasesInner(t *testing.T) {
	t.Parallel()
	b := NewBox(3)
	p := b.DerefMut()
	*p = 30
	if b.Deref() != 30 {
		t.Fatalf("expected mutable view to alias the target, got: %d", b.Deref())
	}
}

func TestBox_IsNil(t *testing.T) {
	t.Parallel()
	var nilBox *Box[int]
	if !nilBox.IsNil() {
		t.Fatalf("expected nil handle to report IsNil")
	}
	if NewBox(1).IsNil() {
		t.Fatalf("expected non-nil handle not to report IsNil")
	}
}

// Compile-time checks that *Box satisfies both dereferencing capabilities.
var (
	_ Dereferencer[int]    = (*Box[int])(nil)
	_ MutDereferencer[int] = (*Box[int])(nil)
)
