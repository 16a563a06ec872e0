// Package fileutil provides file system utilities: bounded reads and
// atomic writes.
package fileutil

import (
	"bytes"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/maa/internal/errors"
)

// AtomicWriteFile replaces path with data so readers see either the old or
// the new content, never a partial file. The parent directory must exist.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	// The temp file shares the directory so rename stays on one filesystem.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".maa-atomic-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()

	if err := fillTemp(tmp, data, perm); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, "replacing %s", path)
	}
	return nil
}

// fillTemp writes, syncs and closes f. f is closed on every path.
func fillTemp(f *os.File, data []byte, perm os.FileMode) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := f.Chmod(perm); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "setting file permissions")
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "syncing temp file")
	}
	return errors.Wrap(f.Close(), "closing temp file")
}

// AtomicWriteYAML encodes v as YAML with two-space indentation and writes it
// with AtomicWriteFile.
func AtomicWriteYAML(path string, v any, perm os.FileMode) (err error) {
	// yaml.v3 panics on unsupported kinds such as funcs.
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("marshaling YAML: %v", r)
		}
	}()

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "marshaling YAML")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "marshaling YAML")
	}

	return AtomicWriteFile(path, buf.Bytes(), perm)
}
