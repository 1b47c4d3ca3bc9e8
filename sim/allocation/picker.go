package allocation

// pickFunc chooses a block for a process of the given size among the blocks
// not yet used. It returns Unassigned when no unused block is large enough.
type pickFunc func(blocks []int, used []bool, size int) int

// newPicker returns the selection rule for s. Next fit's cursor lives in the
// returned closure, so each call to run starts from block 0.
func newPicker(s Strategy) pickFunc {
	switch s {
	case StrategyFirstFit:
		return pickFirst
	case StrategyBestFit:
		return pickBest
	case StrategyWorstFit:
		return pickWorst
	case StrategyNextFit:
		return newNextFitPicker()
	}
	return nil
}

func fits(blocks []int, used []bool, i, size int) bool {
	return !used[i] && blocks[i] >= size
}

func pickFirst(blocks []int, used []bool, size int) int {
	for i := range blocks {
		if fits(blocks, used, i, size) {
			return i
		}
	}
	return Unassigned
}

// pickBest scans linearly; strict < keeps the lowest index on ties.
func pickBest(blocks []int, used []bool, size int) int {
	best := Unassigned
	for i := range blocks {
		if !fits(blocks, used, i, size) {
			continue
		}
		if best == Unassigned || blocks[i] < blocks[best] {
			best = i
		}
	}
	return best
}

// pickWorst scans linearly; strict > keeps the lowest index on ties.
func pickWorst(blocks []int, used []bool, size int) int {
	worst := Unassigned
	for i := range blocks {
		if !fits(blocks, used, i, size) {
			continue
		}
		if worst == Unassigned || blocks[i] > blocks[worst] {
			worst = i
		}
	}
	return worst
}

// newNextFitPicker scans from the block after the previous successful
// assignment, wrapping past the end. A failed search leaves the cursor alone.
func newNextFitPicker() pickFunc {
	cursor := 0
	return func(blocks []int, used []bool, size int) int {
		n := len(blocks)
		for k := 0; k < n; k++ {
			i := (cursor + k) % n
			if fits(blocks, used, i, size) {
				cursor = (i + 1) % n
				return i
			}
		}
		return Unassigned
	}
}

// eligibleBlocks lists every unused block large enough for size, in index order.
func eligibleBlocks(blocks []int, used []bool, size int) []int {
	var out []int
	for i := range blocks {
		if fits(blocks, used, i, size) {
			out = append(out, i)
		}
	}
	return out
}
