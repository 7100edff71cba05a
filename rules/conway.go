package rules

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell.

Branches are checked in order: underpopulation, reproduction, survival,
overpopulation. A dead cell with exactly two live neighbours lands in the
survival branch and stays dead.
*/
func NextState(alive bool, neighbors int) bool {
	switch {
	case neighbors < 2:
		// underpopulation
		return false
	case !alive && neighbors == 3:
		// reproduction
		return true
	case neighbors == 2 || neighbors == 3:
		// survival, state unchanged
		return alive
	default:
		// overpopulation
		return false
	}
}
