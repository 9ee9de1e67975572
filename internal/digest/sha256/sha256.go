package sha256

import (
	"crypto/sha256"
	"fmt"
	stdhash "hash"
	"io"
	"os"

	"github.com/strmbuild/strm/internal/digest"
)

// Hash offers an interface to add data for computing a digest
type Hash struct {
	hash stdhash.Hash
}

// New returns a sha256.Hash to compute a digest
func New() *Hash {
	return &Hash{hash: sha256.New()}
}

// AddFile reads a file and adds it to the hash
func (h *Hash) AddFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening file failed: %w", err)
	}

	defer f.Close()

	if _, err := io.Copy(h.hash, f); err != nil {
		return fmt.Errorf("reading file failed: %w", err)
	}

	return nil
}

// AddBytes add bytes to the hash
func (h *Hash) AddBytes(b []byte) error {
	_, err := h.hash.Write(b)
	if err != nil {
		return fmt.Errorf("writing to hash stream failed: %w", err)
	}

	return nil
}

// Digest returns the digest of the hash
func (h *Hash) Digest() *digest.Digest {
	sum := h.hash.Sum(nil)

	return &digest.Digest{
		Algorithm: digest.SHA256,
		Sum:       sum,
	}
}
