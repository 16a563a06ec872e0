package maa

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/maa/internal/errors"
)

// writeFile creates root/rel with content.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestSysfsProber_Probe(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  Platform
	}{
		{
			name:  "dmi gen2",
			files: map[string]string{DefaultBoardNamePath: "GalileoGen2\n"},
			want:  IntelGalileoGen2,
		},
		{
			name:  "dmi gen1",
			files: map[string]string{DefaultBoardNamePath: "Galileo\n"},
			want:  IntelGalileoGen1,
		},
		{
			name: "dmi unrecognised falls through to device tree",
			files: map[string]string{
				DefaultBoardNamePath: "Some Desktop Board\n",
				DefaultModelPath:     "Intel Galileo Gen2\x00",
			},
			want: IntelGalileoGen2,
		},
		{
			name:  "no sources",
			files: nil,
			want:  UnknownPlatform,
		},
		{
			name:  "unrecognised only",
			files: map[string]string{DefaultModelPath: "Raspberry Pi 4 Model B\x00"},
			want:  UnknownPlatform,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for rel, content := range tt.files {
				writeFile(t, root, rel, content)
			}

			got, err := (&SysfsProber{Root: root}).Probe()
			if err != nil {
				t.Fatalf("Probe() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Probe() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSysfsProber_CustomPaths(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "board", "GalileoGen2")

	p := &SysfsProber{Root: root, BoardNamePath: "board", ModelPath: "model"}
	got, err := p.Probe()
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	if got != IntelGalileoGen2 {
		t.Errorf("Probe() = %v, want %v", got, IntelGalileoGen2)
	}
}

func TestSysfsProber_UnreadableSource(t *testing.T) {
	root := t.TempDir()
	// A directory where a file is expected makes the read fail with
	// something other than ErrNotExist.
	if err := os.MkdirAll(filepath.Join(root, DefaultBoardNamePath), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := (&SysfsProber{Root: root}).Probe()
	if !errors.Is(err, errors.ErrProbeFailed) {
		t.Errorf("Probe() error = %v, want ErrProbeFailed", err)
	}
	if got != UnknownPlatform {
		t.Errorf("Probe() = %v, want UnknownPlatform", got)
	}
}

func TestSysfsProber_OversizedSource(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, DefaultBoardNamePath, "GalileoGen2"+strings.Repeat(" ", maxIdentSize))

	if _, err := (&SysfsProber{Root: root}).Probe(); !errors.Is(err, errors.ErrProbeFailed) {
		t.Errorf("Probe() error = %v, want ErrProbeFailed", err)
	}
}
