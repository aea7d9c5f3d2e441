package wm

// raiseToFront promotes one pane to the front tier and demotes every other
// pane. Panes that never received an explicit elevation stay at
// TierInherit; everything else drops to TierBack. After the first
// interaction exactly one pane holds TierFront.
func raiseToFront(target *Pane, all map[string]*Pane) {
	for _, p := range all {
		if p == target {
			continue
		}
		if p.tier != TierInherit {
			p.tier = TierBack
		}
	}
	target.tier = TierFront
}
