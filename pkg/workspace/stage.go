package workspace

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/strmbuild/strm/internal/fs"
)

// ErrStageClash is returned when staged files clash with existing directory
// content in the workspace directory.
var ErrStageClash = errors.New("files clash with existing directory")

var defLogFn = func(string, ...any) {}

// Stager copies an element's local sources into a workspace directory.
// Regular files, directories and symlinks are staged, file permissions are
// preserved.
type Stager struct {
	ignorePatterns []string
	debugLogFn     func(string, ...any)
}

// NewStager returns a Stager that skips source files matching one of the
// ignorePatterns, glob patterns supporting '**', matched against the path
// relative to the source directory.
func NewStager(ignorePatterns []string, debugLogFn func(string, ...any)) *Stager {
	logFn := defLogFn
	if debugLogFn != nil {
		logFn = debugLogFn
	}

	return &Stager{
		ignorePatterns: ignorePatterns,
		debugLogFn:     logFn,
	}
}

// Stage copies the content of srcDir into targetDir.
// If srcDir is a regular file, the file is copied into targetDir under its
// basename.
// Existing directories in targetDir are merged, an existing file at a path
// that would be staged causes an ErrStageClash error.
func (s *Stager) Stage(srcDir, targetDir string) error {
	if err := fs.Mkdir(targetDir); err != nil {
		return fmt.Errorf("creating directory %s failed: %w", targetDir, err)
	}

	fi, err := os.Lstat(srcDir)
	if err != nil {
		return err
	}

	if fi.Mode().IsRegular() {
		return s.stageEntry(srcDir, filepath.Join(targetDir, filepath.Base(srcDir)), fi.Mode())
	}

	if !fi.IsDir() {
		return fmt.Errorf("%s is not a directory or regular file", srcDir)
	}

	return filepath.WalkDir(srcDir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		if relPath == "." {
			return nil
		}

		ignored, err := s.isIgnored(filepath.ToSlash(relPath))
		if err != nil {
			return err
		}

		if ignored {
			s.debugLogFn("stage: skipping ignored path %q", relPath)

			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}

		return s.stageEntry(path, filepath.Join(targetDir, relPath), fi.Mode())
	})
}

func (s *Stager) isIgnored(relPath string) (bool, error) {
	for _, pattern := range s.ignorePatterns {
		match, err := doublestar.Match(pattern, relPath)
		if err != nil {
			return false, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}

		if match {
			return true, nil
		}
	}

	return false, nil
}

func (s *Stager) stageEntry(src, dst string, mode iofs.FileMode) error {
	dstFi, err := os.Lstat(dst)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	switch {
	case mode.IsDir():
		if dstFi != nil {
			if dstFi.IsDir() {
				return nil
			}

			return fmt.Errorf("staging %s to %s: %w", src, dst, ErrStageClash)
		}

		return os.Mkdir(dst, mode.Perm())

	case mode&iofs.ModeSymlink != 0:
		if dstFi != nil {
			return fmt.Errorf("staging %s to %s: %w", src, dst, ErrStageClash)
		}

		target, err := os.Readlink(src)
		if err != nil {
			return err
		}

		return os.Symlink(target, dst)

	case mode.IsRegular():
		if dstFi != nil {
			return fmt.Errorf("staging %s to %s: %w", src, dst, ErrStageClash)
		}

		s.debugLogFn("stage: copying %q to %q", src, dst)

		return copyFile(src, dst, mode.Perm())

	default:
		return fmt.Errorf("%s has unsupported file type %s", src, mode.Type())
	}
}

func copyFile(src, dst string, perm iofs.FileMode) error {
	srcFd, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s failed: %w", src, err)
	}

	// nolint: errcheck
	defer srcFd.Close()

	dstFd, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("opening %s failed: %w", dst, err)
	}

	_, err = io.Copy(dstFd, srcFd)
	if err != nil {
		_ = dstFd.Close()

		return err
	}

	return dstFd.Close()
}
