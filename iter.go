// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/qpt/blob/master/LICENSE.txt.

package qpt

import (
	"bytes"
	"iter"
)

// All iterators below walk the immutable snapshot captured by the receiver,
// so they remain valid indefinitely and never observe subsequent writes.
// Keys are rebuilt during the descent in a single reusable buffer; each
// yielded key is a fresh copy owned by the consumer. Stopping a range early
// is cheap: the yield result short-circuits the whole descent.

// Ascend returns an iterator over all entries in ascending key order.
func (t *Trie[V]) Ascend() iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		if t.root == nil {
			return
		}
		buf := make([]byte, 0, 32)
		t.root.ascend(&buf, yield)
	}
}

// Descend returns an iterator over all entries in descending key order.
func (t *Trie[V]) Descend() iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		if t.root == nil {
			return
		}
		buf := make([]byte, 0, 32)
		t.root.descend(&buf, yield)
	}
}

// DescendLessOrEqual returns an iterator over all entries whose key is less
// than or equal to key, in descending key order. The largest qualifying key
// is yielded first.
func (t *Trie[V]) DescendLessOrEqual(key []byte) iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		if t.root == nil {
			return
		}
		buf := make([]byte, 0, 32)
		t.root.descendLE(key, 0, &buf, yield)
	}
}

// AscendGreaterOrEqual returns an iterator over all entries whose key is
// greater than or equal to key, in ascending key order.
func (t *Trie[V]) AscendGreaterOrEqual(key []byte) iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		if t.root == nil {
			return
		}
		buf := make([]byte, 0, 32)
		t.root.ascendGE(key, 0, &buf, yield)
	}
}

// AscendPrefix returns an iterator over all entries whose key starts with
// prefix, in ascending key order.
func (t *Trie[V]) AscendPrefix(prefix []byte) iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		buf := make([]byte, 0, 32)
		offset := 0
		n := t.root
		for n != nil {
			rest := prefix[offset:]
			if len(rest) <= len(n.prefix) {
				if !bytes.HasPrefix(n.prefix, rest) {
					return
				}
				// The whole subtree extends the requested prefix.
				n.ascend(&buf, yield)
				return
			}
			if !bytes.HasPrefix(rest, n.prefix) {
				return
			}
			buf = append(buf, n.prefix...)
			offset += len(n.prefix)

			b := prefix[offset]
			idx := locate(n.highs, b>>4)
			if idx < 0 {
				return
			}
			even := n.children[idx]
			idx = locate(even.lows, b&nybbleMask)
			if idx < 0 {
				return
			}
			buf = append(buf, b)
			offset++
			n = even.children[idx]
		}
	}
}

// PrefixesOf returns an iterator over all entries whose key is a non-strict
// prefix of key, in order of increasing key length. Unlike the other
// iterators it follows a single path, yielding at most 1 + min(len(key),
// depth) entries.
func (t *Trie[V]) PrefixesOf(key []byte) iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		acc := make([]byte, 0, len(key))
		offset := 0
		n := t.root
		for n != nil {
			if !bytes.HasPrefix(key[offset:], n.prefix) {
				return
			}
			acc = append(acc, n.prefix...)
			offset += len(n.prefix)
			if n.value != nil && !yield(bytes.Clone(acc), *n.value) {
				return
			}
			if offset == len(key) {
				return
			}

			b := key[offset]
			idx := locate(n.highs, b>>4)
			if idx < 0 {
				return
			}
			even := n.children[idx]
			idx = locate(even.lows, b&nybbleMask)
			if idx < 0 {
				return
			}
			acc = append(acc, b)
			offset++
			n = even.children[idx]
		}
	}
}

// ascend yields the node's own value, then every grandchild subtree in
// directory order. Both nybble directories are sorted, so sequential
// concatenation preserves the key order.
func (n *oddNode[V]) ascend(buf *[]byte, yield func([]byte, V) bool) bool {
	mark := len(*buf)
	*buf = append(*buf, n.prefix...)
	if n.value != nil && !yield(bytes.Clone(*buf), *n.value) {
		return false
	}
	for i, even := range n.children {
		for j, child := range even.children {
			*buf = append(*buf, n.highs[i]<<4|even.lows[j])
			ok := child.ascend(buf, yield)
			*buf = (*buf)[:len(*buf)-1]
			if !ok {
				return false
			}
		}
	}
	*buf = (*buf)[:mark]
	return true
}

// descend is the mirror of ascend: grandchild subtrees in reverse directory
// order first, the node's own value last.
func (n *oddNode[V]) descend(buf *[]byte, yield func([]byte, V) bool) bool {
	mark := len(*buf)
	*buf = append(*buf, n.prefix...)
	for i := len(n.children) - 1; i >= 0; i-- {
		even := n.children[i]
		for j := len(even.children) - 1; j >= 0; j-- {
			*buf = append(*buf, n.highs[i]<<4|even.lows[j])
			ok := even.children[j].descend(buf, yield)
			*buf = (*buf)[:len(*buf)-1]
			if !ok {
				return false
			}
		}
	}
	if n.value != nil && !yield(bytes.Clone(*buf), *n.value) {
		return false
	}
	*buf = (*buf)[:mark]
	return true
}

// descendLE yields, in descending order, the entries of this subtree whose
// key is <= key. The three-way comparison of the node prefix against the
// remaining bound decides between a full descent, an empty result and a
// bounded recursion along the dispatch byte of the bound.
func (n *oddNode[V]) descendLE(key []byte, offset int, buf *[]byte, yield func([]byte, V) bool) bool {
	rest := key[offset:]
	m := min(len(n.prefix), len(rest))
	switch bytes.Compare(n.prefix[:m], rest[:m]) {
	case -1:
		// The whole subtree sorts below the bound.
		return n.descend(buf, yield)
	case 1:
		return true
	}

	if len(rest) < len(n.prefix) {
		// The bound ends inside the prefix: every key below extends past it
		// with an equal lead and sorts above the bound.
		return true
	}

	mark := len(*buf)
	*buf = append(*buf, n.prefix...)
	if len(rest) == len(n.prefix) {
		// The node's own key is exactly the bound; its children all extend it.
		if n.value != nil && !yield(bytes.Clone(*buf), *n.value) {
			return false
		}
		*buf = (*buf)[:mark]
		return true
	}

	// The dispatch byte of the bound splits the directory: the equal high
	// nybble recurses bounded, strictly smaller ones descend in full.
	tb := rest[len(n.prefix)]
	for i := len(n.children) - 1; i >= 0; i-- {
		if n.highs[i] > tb>>4 {
			continue
		}
		even := n.children[i]
		if n.highs[i] == tb>>4 {
			if !even.descendLE(key, offset+len(n.prefix), buf, yield) {
				return false
			}
			continue
		}
		for j := len(even.children) - 1; j >= 0; j-- {
			*buf = append(*buf, n.highs[i]<<4|even.lows[j])
			ok := even.children[j].descend(buf, yield)
			*buf = (*buf)[:len(*buf)-1]
			if !ok {
				return false
			}
		}
	}
	if n.value != nil && !yield(bytes.Clone(*buf), *n.value) {
		return false
	}
	*buf = (*buf)[:mark]
	return true
}

// descendLE dispatches on the low nybble of the bound byte at key[offset]:
// the equal entry recurses bounded before strictly smaller entries descend
// in full, preserving descending order.
func (e *evenNode[V]) descendLE(key []byte, offset int, buf *[]byte, yield func([]byte, V) bool) bool {
	b := key[offset]
	for j := len(e.children) - 1; j >= 0; j-- {
		if e.lows[j] > b&nybbleMask {
			continue
		}
		*buf = append(*buf, b>>4<<4|e.lows[j])
		var ok bool
		if e.lows[j] == b&nybbleMask {
			ok = e.children[j].descendLE(key, offset+1, buf, yield)
		} else {
			ok = e.children[j].descend(buf, yield)
		}
		*buf = (*buf)[:len(*buf)-1]
		if !ok {
			return false
		}
	}
	return true
}

// ascendGE is the mirror image of descendLE.
func (n *oddNode[V]) ascendGE(key []byte, offset int, buf *[]byte, yield func([]byte, V) bool) bool {
	rest := key[offset:]
	m := min(len(n.prefix), len(rest))
	switch bytes.Compare(n.prefix[:m], rest[:m]) {
	case -1:
		return true
	case 1:
		return n.ascend(buf, yield)
	}

	if len(rest) <= len(n.prefix) {
		// The bound ends at or inside the prefix: the node's own key and
		// every key below match or extend it, so the whole subtree qualifies.
		return n.ascend(buf, yield)
	}

	// The node's own key is a proper prefix of the bound, hence strictly
	// smaller: skip the value, bound the equal high nybble, take the rest.
	mark := len(*buf)
	*buf = append(*buf, n.prefix...)
	tb := rest[len(n.prefix)]
	for i, even := range n.children {
		if n.highs[i] < tb>>4 {
			continue
		}
		if n.highs[i] == tb>>4 {
			if !even.ascendGE(key, offset+len(n.prefix), buf, yield) {
				return false
			}
			continue
		}
		for j, child := range even.children {
			*buf = append(*buf, n.highs[i]<<4|even.lows[j])
			ok := child.ascend(buf, yield)
			*buf = (*buf)[:len(*buf)-1]
			if !ok {
				return false
			}
		}
	}
	*buf = (*buf)[:mark]
	return true
}

func (e *evenNode[V]) ascendGE(key []byte, offset int, buf *[]byte, yield func([]byte, V) bool) bool {
	b := key[offset]
	for j, child := range e.children {
		if e.lows[j] < b&nybbleMask {
			continue
		}
		*buf = append(*buf, b>>4<<4|e.lows[j])
		var ok bool
		if e.lows[j] == b&nybbleMask {
			ok = child.ascendGE(key, offset+1, buf, yield)
		} else {
			ok = child.ascend(buf, yield)
		}
		*buf = (*buf)[:len(*buf)-1]
		if !ok {
			return false
		}
	}
	return true
}
