package core

import (
	"crypto/rand"
	"strconv"
	"strings"
)

const idSuffixLen = 9

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewTransactionID generates a unique transaction id: the creation
// instant in unix milliseconds followed by a random base36 suffix.
// Uniqueness within a single device is what matters here; the suffix
// covers multiple inserts in the same millisecond.
func NewTransactionID(unixMilli int64) string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(unixMilli, 10))

	buf := make([]byte, idSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// a fixed suffix rather than panic in the write path.
		sb.WriteString("000000000")
		return sb.String()
	}
	for _, b := range buf {
		sb.WriteByte(base36[int(b)%len(base36)])
	}
	return sb.String()
}
