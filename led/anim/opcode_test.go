package anim

import "testing"

func TestOpsLoadIsExclusive(t *testing.T) {
	s := Ops(OpAdd, OpLoad, OpRepeat)
	if !s.IsLoad() {
		t.Fatal("a set containing OpLoad must collapse to the pure load")
	}
	if s.Has(OpAdd) || s.Has(OpRepeat) {
		t.Fatal("load set must not report other operations")
	}
}

func TestOpsMembership(t *testing.T) {
	s := Ops(OpAdd, OpDivide)
	if s.IsLoad() {
		t.Fatal("non-empty set reported as load")
	}
	if !s.Has(OpAdd) || !s.Has(OpDivide) {
		t.Fatal("missing registered operations")
	}
	if s.Has(OpRotateRight) || s.Has(OpRepeat) {
		t.Fatal("reports operations that were never added")
	}
}

func TestOpsIgnoresUnknown(t *testing.T) {
	s := Ops(Op(200), OpAdd)
	if !s.Has(OpAdd) {
		t.Fatal("valid op lost")
	}
}

func TestOpSetStringPipelineOrder(t *testing.T) {
	// Authoring order is irrelevant; the string (like execution)
	// follows the fixed pipeline order.
	s := Ops(OpRepeat, OpDivide, OpAdd)
	if got := s.String(); got != "add+div+repeat" {
		t.Fatalf("String() = %q, want %q", got, "add+div+repeat")
	}
	if got := Load.String(); got != "load" {
		t.Fatalf("Load.String() = %q, want %q", got, "load")
	}
}

func TestOpString(t *testing.T) {
	if OpPropagateUp.String() != "propup" {
		t.Fatalf("OpPropagateUp.String() = %q", OpPropagateUp.String())
	}
	if Op(99).String() != "unknown" {
		t.Fatalf("Op(99).String() = %q", Op(99).String())
	}
}
