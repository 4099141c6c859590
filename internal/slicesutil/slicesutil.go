package slicesutil

// InsertAt returns a new slice with v inserted at index i. The input slice
// is never modified, so it is safe to call on a slice shared with readers.
func InsertAt[S ~[]E, E any](s S, i int, v E) S {
	out := make(S, len(s)+1)
	copy(out, s[:i])
	out[i] = v
	copy(out[i+1:], s[i:])
	return out
}

// RemoveAt returns a new slice without the element at index i, or nil when
// s holds a single element. The input slice is never modified.
func RemoveAt[S ~[]E, E any](s S, i int) S {
	if len(s) == 1 {
		return nil
	}
	out := make(S, len(s)-1)
	copy(out, s[:i])
	copy(out[i:], s[i+1:])
	return out
}

// ReplaceAt returns a copy of s with the element at index i replaced by v.
// The input slice is never modified.
func ReplaceAt[S ~[]E, E any](s S, i int, v E) S {
	out := make(S, len(s))
	copy(out, s)
	out[i] = v
	return out
}
