package vals

import (
	"testing"
)

// Tester is a helper for testing properties of a value.
type Tester struct {
	t *testing.T
	v Value
}

// TestValue returns a ValueTester.
func TestValue(t *testing.T, v Value) Tester {
	return Tester{t, v}
}

// Kind tests the Kind of the value.
func (vt Tester) Kind(wantKind Kind) Tester {
	vt.t.Helper()
	if kind := vt.v.Kind(); kind != wantKind {
		vt.t.Errorf("Kind(v) = %s, want %s", kind, wantKind)
	}
	return vt
}

// Truthy tests the truthiness of the value.
func (vt Tester) Truthy(want bool) Tester {
	vt.t.Helper()
	if b := Truthy(vt.v); b != want {
		vt.t.Errorf("Truthy(v) = %v, want %v", b, want)
	}
	return vt
}

// String tests the display form of the value.
func (vt Tester) String(want string) Tester {
	vt.t.Helper()
	if s := ToString(vt.v); s != want {
		vt.t.Errorf("ToString(v) = %s, want %s", s, want)
	}
	return vt
}

// Repr tests the Repr of the value.
func (vt Tester) Repr(want string) Tester {
	vt.t.Helper()
	if s := Repr(vt.v); s != want {
		vt.t.Errorf("Repr(v) = %s, want %s", s, want)
	}
	return vt
}

// Equal tests that the value is Equal to every of the given values.
func (vt Tester) Equal(others ...Value) Tester {
	vt.t.Helper()
	for _, other := range others {
		if !Equal(vt.v, other) {
			vt.t.Errorf("Equal(v, %s) = false, want true", Repr(other))
		}
	}
	return vt
}

// NotEqual tests that the value is not Equal to any of the given values.
func (vt Tester) NotEqual(others ...Value) Tester {
	vt.t.Helper()
	for _, other := range others {
		if Equal(vt.v, other) {
			vt.t.Errorf("Equal(v, %s) = true, want false", Repr(other))
		}
	}
	return vt
}

// Index tests that indexing the value with the given index returns the wanted
// value and no error.
func (vt Tester) Index(idx, wantVal Value) Tester {
	vt.t.Helper()
	got, err := Index(vt.v, idx)
	if err != nil {
		vt.t.Errorf("Index(v, %s) -> err %v, want nil", Repr(idx), err)
	}
	if !Equal(got, wantVal) {
		vt.t.Errorf("Index(v, %s) -> %s, want %s", Repr(idx), Repr(got), Repr(wantVal))
	}
	return vt
}

// IndexError tests that indexing the value with the given index returns the
// given error.
func (vt Tester) IndexError(idx Value, wantErr error) Tester {
	vt.t.Helper()
	if _, err := Index(vt.v, idx); err != wantErr {
		vt.t.Errorf("Index(v, %s) -> err %v, want %v", Repr(idx), err, wantErr)
	}
	return vt
}
