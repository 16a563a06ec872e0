package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/thoreinstein/maa/internal/errors"
)

func TestReadFileLimit(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name    string
		size    int64
		limit   int64
		wantErr bool
	}{
		{"small file", 100, 4096, false},
		{"exact limit", 4096, 4096, false},
		{"too large", 4097, 4096, true},
		{"empty", 0, 16, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tempDir, tt.name)
			if err := os.WriteFile(path, make([]byte, tt.size), 0o644); err != nil {
				t.Fatal(err)
			}

			data, err := ReadFileLimit(path, tt.limit)
			if tt.wantErr {
				if !errors.Is(err, ErrFileTooLarge) {
					t.Errorf("ReadFileLimit() error = %v, want ErrFileTooLarge", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFileLimit() error = %v", err)
			}
			if int64(len(data)) != tt.size {
				t.Errorf("read %d bytes, want %d", len(data), tt.size)
			}
		})
	}
}

func TestReadFileWithLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board_name")
	if err := os.WriteFile(path, []byte("GalileoGen2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := ReadFileWithLimit(path)
	if err != nil {
		t.Fatalf("ReadFileWithLimit() error = %v", err)
	}
	if string(data) != "GalileoGen2\n" {
		t.Errorf("ReadFileWithLimit() = %q", data)
	}
}

func TestReadFileLimit_NotExist(t *testing.T) {
	_, err := ReadFileLimit(filepath.Join(t.TempDir(), "missing"), 16)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFileLimit() error = %v, want ErrNotExist", err)
	}
}
