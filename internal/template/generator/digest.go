package generator

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// digest accumulates a BLAKE3 hash over generated entries. Entries are fed in
// walk order, so equal trees produce equal digests.
type digest struct {
	h *blake3.Hasher
	n int
}

func newDigest() *digest {
	return &digest{h: blake3.New()}
}

// addFile hashes path and content with NUL separators so different
// path/content splits cannot collide.
func (d *digest) addFile(path string, content []byte) {
	_, _ = d.h.Write([]byte("f\x00" + path + "\x00"))
	_, _ = d.h.Write(content)
	_, _ = d.h.Write([]byte{0})
	d.n++
}

func (d *digest) addDir(path string) {
	_, _ = d.h.Write([]byte("d\x00" + path + "\x00"))
	d.n++
}

// sum returns the hex digest, or "" when nothing was added.
func (d *digest) sum() string {
	if d.n == 0 {
		return ""
	}
	return hex.EncodeToString(d.h.Sum(nil))
}
