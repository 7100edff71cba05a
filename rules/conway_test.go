package rules

import "testing"

func TestNextState(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		// live cells survive only on 2 or 3 neighbors
		wantLive := neighbors == 2 || neighbors == 3
		if got := NextState(true, neighbors); got != wantLive {
			t.Errorf("live cell with %d neighbors: got %v, expected %v", neighbors, got, wantLive)
		}

		// dead cells are born only on exactly 3 neighbors
		wantDead := neighbors == 3
		if got := NextState(false, neighbors); got != wantDead {
			t.Errorf("dead cell with %d neighbors: got %v, expected %v", neighbors, got, wantDead)
		}
	}
}

func TestDeadCellWithTwoNeighborsStaysDead(t *testing.T) {
	// the survival branch is a no-op for dead cells, not a birth
	if NextState(false, 2) {
		t.Fatal("dead cell with two neighbors came alive")
	}
}
