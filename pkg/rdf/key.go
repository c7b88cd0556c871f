package rdf

import "github.com/zeebo/xxh3"

// hash128 digests b into a 16-byte value using xxh3's 128-bit variant,
// writing the high half before the low half. This is the same device the
// teacher's internal/encoding.TermEncoder used to turn a lexical string
// into a fixed-size storage key; here it is used once per node at
// construction time instead of once per storage access.
func hash128(b []byte) [16]byte {
	h := xxh3.Hash128(b)
	var out [16]byte
	out[0] = byte(h.Hi >> 56)
	out[1] = byte(h.Hi >> 48)
	out[2] = byte(h.Hi >> 40)
	out[3] = byte(h.Hi >> 32)
	out[4] = byte(h.Hi >> 24)
	out[5] = byte(h.Hi >> 16)
	out[6] = byte(h.Hi >> 8)
	out[7] = byte(h.Hi)
	out[8] = byte(h.Lo >> 56)
	out[9] = byte(h.Lo >> 48)
	out[10] = byte(h.Lo >> 40)
	out[11] = byte(h.Lo >> 32)
	out[12] = byte(h.Lo >> 24)
	out[13] = byte(h.Lo >> 16)
	out[14] = byte(h.Lo >> 8)
	out[15] = byte(h.Lo)
	return out
}

// makeKey builds the 17-byte canonical key for a node of the given kind
// from its already-assembled content bytes.
func makeKey(kind Kind, content []byte) [17]byte {
	var key [17]byte
	key[0] = byte(kind)
	h := hash128(content)
	copy(key[1:], h[:])
	return key
}

// literalContent assembles the bytes a literal's key is hashed from. The
// lexical form is always present; a trailing tag byte plus the
// datatype's own key (or the interned language bytes) makes the
// datatype-XOR-language distinction part of the hash domain, so two
// literals with identical lexical bytes but different datatypes or
// languages never collide — the bug noted against the reference
// implementation's literal hash, which combined lexical and language but
// ignored datatype entirely.
func literalContent(lexical string, datatype *Node, lang *string) []byte {
	buf := make([]byte, 0, len(lexical)+18)
	buf = append(buf, lexical...)
	buf = append(buf, 0)
	switch {
	case lang != nil:
		buf = append(buf, 'L')
		buf = append(buf, *lang...)
	case datatype != nil:
		buf = append(buf, 'D')
		buf = append(buf, datatype.key[:]...)
	default:
		buf = append(buf, 'P')
	}
	return buf
}
