// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/qpt/blob/master/LICENSE.txt.

package qpt

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// String returns a hierarchical dump of the node structure, intended for
// debugging. Prefixes and dispatch bytes are printed in hex. The layout is
// not part of the stability contract.
func (t *Trie[V]) String() string {
	if t.root == nil {
		return "empty\n"
	}
	return t.root.string(0)
}

func (n *oddNode[V]) string(space int) string {
	sb := strings.Builder{}
	sb.WriteString(strings.Repeat(" ", space))
	sb.WriteString("prefix: 0x")
	sb.WriteString(hex.EncodeToString(n.prefix))
	if n.value != nil {
		sb.WriteString(" [value]")
	}
	sb.WriteString(" [size=")
	sb.WriteString(strconv.Itoa(n.size))
	sb.WriteByte(']')
	sb.WriteByte('\n')

	for i, even := range n.children {
		for j, child := range even.children {
			sb.WriteString(strings.Repeat(" ", space+2))
			sb.WriteString("0x")
			sb.WriteString(hex.EncodeToString([]byte{n.highs[i]<<4 | even.lows[j]}))
			sb.WriteByte('\n')
			sb.WriteString(child.string(space + 4))
		}
	}
	return sb.String()
}
