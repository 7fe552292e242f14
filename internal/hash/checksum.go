package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of an encoded pixel.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates a checksum over several byte slices, such as all pixels of a column chunk.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest returns an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Add appends data to the running checksum.
func (d *Digest) Add(data []byte) {
	_, _ = d.d.Write(data)
}

// Sum64 returns the checksum of all data added so far.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}

// Reset clears the running checksum.
func (d *Digest) Reset() {
	d.d.Reset()
}
