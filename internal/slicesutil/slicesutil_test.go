package slicesutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertAt(t *testing.T) {
	s := []byte{1, 3, 5}
	got := InsertAt(s, 1, byte(2))
	assert.Equal(t, []byte{1, 2, 3, 5}, got)
	assert.Equal(t, []byte{1, 3, 5}, s)

	assert.Equal(t, []byte{0, 1, 3, 5}, InsertAt(s, 0, byte(0)))
	assert.Equal(t, []byte{1, 3, 5, 7}, InsertAt(s, 3, byte(7)))
	assert.Equal(t, []byte{9}, InsertAt([]byte(nil), 0, byte(9)))
}

func TestRemoveAt(t *testing.T) {
	s := []byte{1, 2, 3}
	got := RemoveAt(s, 1)
	assert.Equal(t, []byte{1, 3}, got)
	assert.Equal(t, []byte{1, 2, 3}, s)

	assert.Equal(t, []byte{2, 3}, RemoveAt(s, 0))
	assert.Equal(t, []byte{1, 2}, RemoveAt(s, 2))
	assert.Nil(t, RemoveAt([]byte{1}, 0))
}

func TestReplaceAt(t *testing.T) {
	s := []int{1, 2, 3}
	got := ReplaceAt(s, 2, 9)
	assert.Equal(t, []int{1, 2, 9}, got)
	assert.Equal(t, []int{1, 2, 3}, s)
}
