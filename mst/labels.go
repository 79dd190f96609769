package mst

// labels is a disjoint-set kept as one component label per slot.
// merge rewrites every member of the dropped component: O(V) per union,
// O(1) per lookup.
type labels []int

func newLabels(n int) labels {
	l := make(labels, n)
	for i := range l {
		l[i] = i
	}

	return l
}

// of returns the component label of slot i.
func (l labels) of(i int) int { return l[i] }

// merge relabels every slot carrying drop with keep.
func (l labels) merge(keep, drop int) {
	// Full scan: members of drop are not linked to each other.
	for i, x := range l {
		if x == drop {
			l[i] = keep
		}
	}
}

func (l labels) clone() []int {
	out := make([]int, len(l))
	copy(out, l)

	return out
}
