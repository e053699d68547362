package component

// WaveBudget caps how many waves the player may fire during one level
// attempt. It is rebuilt on every load, so restarts refill it.
type WaveBudget struct {
	Max  int
	Used int
}

func (b *WaveBudget) Remaining() int {
	if b == nil || b.Used >= b.Max {
		return 0
	}
	return b.Max - b.Used
}

var WaveBudgetComponent = NewComponent[WaveBudget]()
