package xrand

// Base62Alphabet is the fixed alphabet used by StringBase62: digits, then
// upper case, then lower case.
const Base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Bytes returns n bytes drawn from the bit stream. n <= 0 returns an empty
// slice.
func Bytes(src Source, n int) []byte {
	if n <= 0 {
		return []byte{}
	}

	buf := make([]byte, n)
	src.FillBytes(buf)
	return buf
}

// StringBase62 returns a random string of length n over Base62Alphabet. Each
// position is drawn by an unbiased bounded draw, so all 62 symbols are equally
// likely at every position.
func StringBase62(src Source, n int) string {
	if n <= 0 {
		return ""
	}

	buf := make([]byte, n)
	for i := range buf {
		buf[i] = Base62Alphabet[Uint64Below(src, 62)]
	}
	return string(buf)
}
