package media

// FileList is an ordered sequence of filenames. It is not modified after load.
type FileList []string

// DisplayList is the sequence a panel renders.
type DisplayList []string

// Double returns a new slice of list followed by itself. The carousel renders
// both halves so that wrapping at the midpoint is invisible.
func Double[S ~[]E, E any](list S) S {
	d := make(S, 0, 2*len(list))
	d = append(d, list...)
	return append(d, list...)
}

// Single returns list as-is for index-based panels.
func Single(list FileList) DisplayList {
	d := make(DisplayList, len(list))
	copy(d, list)
	return d
}

// Partition splits list by keep, preserving order.
func Partition(list FileList, keep func(string) bool) (kept, dropped FileList) {
	for _, name := range list {
		if keep(name) {
			kept = append(kept, name)
		} else {
			dropped = append(dropped, name)
		}
	}
	return kept, dropped
}
