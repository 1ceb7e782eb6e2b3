package aliasmanagement

// moveName returns a copy of names with the element at from moved to to.
func moveName(names []string, from, to int) []string {
	out := make([]string, 0, len(names))
	moved := names[from]
	for i, n := range names {
		if i != from {
			out = append(out, n)
		}
	}
	out = append(out[:to], append([]string{moved}, out[to:]...)...)
	return out
}
