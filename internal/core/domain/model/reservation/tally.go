package reservation

// Tally counts the reservations held against one facility for one size.
type Tally struct {
	Open  int
	Bound int
}

// Total is the number of slots the reservations consume.
func (t Tally) Total() int {
	return t.Open + t.Bound
}
