// Package hasher computes the xxHash64 digests used for content-addressed
// output names and manifest verification.
package hasher

import (
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/cespare/xxhash/v2"
)

// FullLen is the length of an untruncated hex digest.
const FullLen = 16

// ContentHash returns the hex xxHash64 of data, truncated to hexLen
// characters when 0 < hexLen < FullLen.
func ContentHash(data []byte, hexLen int) string {
	return format(xxhash.Sum64(data), hexLen)
}

// ContentHashReader is ContentHash over a stream.
func ContentHashReader(r io.Reader, hexLen int) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return format(h.Sum64(), hexLen), nil
}

// Matches reports whether short is a prefix-truncated form of full.
func Matches(full, short string) bool {
	return len(short) > 0 && len(short) <= len(full) && full[:len(short)] == short
}

func format(sum uint64, hexLen int) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], sum)
	full := hex.EncodeToString(b[:])
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}
