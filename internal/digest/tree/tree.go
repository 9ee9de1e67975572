// Package tree computes digests of directory trees.
package tree

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/strmbuild/strm/internal/digest"
	"github.com/strmbuild/strm/internal/digest/sha256"
)

// Sum computes a digest over the content of the directory tree rooted at
// path.
// The digest covers the relative path, the type, the owner executable bit,
// the size and the content of every entry below path. The size in the entry
// header delimits the content, file bytes can not be confused with the
// header of a following entry. os.WalkDir visits the entries in lexical
// order, two trees with the same layout and content therefore produce the
// same digest, independent of their location.
// If path refers to a regular file, the digest covers only the file's name
// and content.
func Sum(path string) (*digest.Digest, error) {
	h := sha256.New()

	fi, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}

	if fi.Mode().IsRegular() {
		if err := addFile(h, filepath.Base(path), path, fi); err != nil {
			return nil, err
		}

		return h.Digest(), nil
	}

	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if p == path {
			return nil
		}

		relPath, err := filepath.Rel(path, p)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		switch {
		case d.IsDir():
			return h.AddBytes([]byte("d " + relPath + "\n"))

		case d.Type()&fs.ModeSymlink != 0:
			target, err := os.Readlink(p)
			if err != nil {
				return fmt.Errorf("reading symlink %q failed: %w", p, err)
			}

			return h.AddBytes([]byte("l " + relPath + " " + strconv.Itoa(len(target)) + " " + target + "\n"))

		case d.Type().IsRegular():
			fi, err := d.Info()
			if err != nil {
				return err
			}

			return addFile(h, relPath, p, fi)

		default:
			return fmt.Errorf("%q is not a regular file, directory or symlink", p)
		}
	})
	if err != nil {
		return nil, err
	}

	return h.Digest(), nil
}

func addFile(h *sha256.Hash, relPath, path string, fi fs.FileInfo) error {
	typeMarker := "f"
	if fi.Mode()&0100 != 0 {
		typeMarker = "x"
	}

	err := h.AddBytes([]byte(typeMarker + " " + relPath + " " + strconv.FormatInt(fi.Size(), 10) + "\n"))
	if err != nil {
		return err
	}

	return h.AddFile(path)
}
