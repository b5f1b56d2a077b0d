package anim

import (
	"testing"

	"github.com/cwbudde/algo-led/internal/testutil"
	"github.com/cwbudde/algo-led/led/level"
)

func TestPropagateUpNoOverflowActsLikeAdd(t *testing.T) {
	buf := []level.Level{2, 2, 2, 2, 2, 2, 2}
	propagateUp(buf, []int8{1, 1, 1, 1, 1, 1, 1}, StripSplit)
	testutil.RequireLevels(t, buf, 3, 3, 3, 3, 3, 3, 3)
}

func TestPropagateUpBleedsOverflowToNeighbor(t *testing.T) {
	buf := []level.Level{14, 0, 0, 0, 0, 0, 0}
	propagateUp(buf, []int8{5, 0, 0, 0, 0, 0, 0}, StripSplit)
	// 14+5 clips at 15; the 4 over the ceiling light the next output.
	testutil.RequireLevels(t, buf, 15, 4, 0, 0, 0, 0, 0)
}

func TestPropagateUpConservesInteriorOverflow(t *testing.T) {
	buf := []level.Level{14, 13, 2, 0, 0, 0, 0}
	before := testutil.Sum(buf)
	deltas := []int8{7, 0, 0, 0, 0, 0, 0}
	propagateUp(buf, deltas, StripSplit)

	// All excess is absorbed inside the half: nothing reached the
	// boundary, so the total grows by exactly the applied delta.
	if got := testutil.Sum(buf); got != before+7 {
		t.Fatalf("sum = %d, want %d", got, before+7)
	}
	testutil.RequireInRange(t, buf)
}

func TestPropagateUpDropsResidualAtHalfBoundary(t *testing.T) {
	buf := []level.Level{15, 15, 15, 15, 15, 14, 0}
	propagateUp(buf, []int8{9, 0, 0, 0, 0, 0, 0}, StripSplit)
	// The cascade runs the ceiling all the way to the half's end stop;
	// whatever the end stop cannot absorb is gone.
	testutil.RequireLevels(t, buf, 15, 15, 15, 15, 15, 15, 0)
}

func TestPropagateUpUnderflowBorrowsFromNeighbors(t *testing.T) {
	buf := []level.Level{3, 0, 5, 0, 0, 0, 0}
	propagateUp(buf, []int8{-5, 0, 0, 0, 0, 0, 0}, StripSplit)
	testutil.RequireLevels(t, buf, 0, 0, 3, 0, 0, 0, 0)
}

func TestPropagateUpHalvesAreIndependent(t *testing.T) {
	buf := []level.Level{0, 0, 0, 0, 0, 15, 10}
	propagateUp(buf, []int8{0, 0, 0, 0, 0, 0, 9}, StripSplit)
	// The right half is a single output here: its overflow cannot
	// spill into the left half.
	testutil.RequireLevels(t, buf, 0, 0, 0, 0, 0, 15, 15)
}

func TestPropagateDownBleedsTowardOuterEnds(t *testing.T) {
	buf := []level.Level{0, 15, 0, 0, 0, 0, 0}
	propagateDown(buf, []int8{0, 3, 0, 0, 0, 0, 0}, StripSplit)
	testutil.RequireLevels(t, buf, 3, 15, 0, 0, 0, 0, 0)
}

func TestPropagateDownRightHalf(t *testing.T) {
	buf := []level.Level{0, 0, 0, 0, 0, 0, 14}
	propagateDown(buf, []int8{0, 0, 0, 0, 0, 0, 4}, StripSplit)
	// Output 6 is both the start and the end stop of its half: the
	// overflow has nowhere to go.
	testutil.RequireLevels(t, buf, 0, 0, 0, 0, 0, 0, 15)
}

func TestPropagateOrderDependence(t *testing.T) {
	// The cascade is not commutative: the same deltas land differently
	// depending on the processing direction.
	up := []level.Level{14, 14, 0, 0, 0, 0, 0}
	down := []level.Level{14, 14, 0, 0, 0, 0, 0}
	deltas := []int8{2, 2, 0, 0, 0, 0, 0}

	propagateUp(up, deltas, StripSplit)
	propagateDown(down, deltas, StripSplit)

	if testutil.Sum(up) == 0 || testutil.Sum(down) == 0 {
		t.Fatal("cascade produced an all-dark strip")
	}
	same := true
	for i := range up {
		if up[i] != down[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("up and down cascades agree (%v); expected order dependence", up)
	}
}
