package engine

// nextIndex picks the track that follows current.
// In shuffle mode the pick is uniform over the catalog, re-rolled while it equals
// current unless the catalog has a single track.
func nextIndex(current, size int, shuffle bool, intn func(int) int) int {
	if !shuffle {
		return (current + 1) % size
	}
	next := intn(size)
	for next == current && size > 1 {
		next = intn(size)
	}
	return next
}

// prevIndex is always the linear predecessor, shuffle or not
func prevIndex(current, size int) int {
	return (current - 1 + size) % size
}
