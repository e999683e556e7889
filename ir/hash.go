package ir

import (
	"encoding/binary"
	"hash/maphash"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the subtree rooted at n, stable within
// one process. Equal trees hash equally. It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	n.hashInto(&h)
	return h.Sum64()
}

func (n *Node) hashInto(h *maphash.Hash) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(len(n.Name)))
	h.Write(b[:])
	h.WriteString(n.Name)
	if n.Value == nil {
		h.WriteByte(0)
	} else {
		h.WriteByte(1)
		binary.LittleEndian.PutUint32(b[:], uint32(len(*n.Value)))
		h.Write(b[:])
		h.WriteString(*n.Value)
	}
	binary.LittleEndian.PutUint32(b[:], uint32(len(n.Children)))
	h.Write(b[:])
	for _, c := range n.Children {
		c.hashInto(h)
	}
}
