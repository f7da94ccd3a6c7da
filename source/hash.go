package source

import "github.com/minio/highwayhash"

// key is a fixed HighwayHash key; content hashes only need to be stable
// within one process run (spec's "64-bit content hash"), not cryptographic.
var key = []byte("llmcc-source-hash-key-32-bytes!!")

// Hash computes a 64-bit content hash of data.
func Hash(data []byte) (uint64, error) {
	h, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = h.Write(data)
	if err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
