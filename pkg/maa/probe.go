package maa

import (
	"io/fs"

	"github.com/thoreinstein/maa/internal/errors"
	"github.com/thoreinstein/maa/internal/paths"
	"github.com/thoreinstein/maa/pkg/fileutil"
)

// Prober reads the host's board identification signal.
//
// Probe returns UnknownPlatform with a nil error when no signal exists.
// A non-nil error means the signal exists but could not be read.
type Prober interface {
	Probe() (Platform, error)
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func() (Platform, error)

// Probe calls f.
func (f ProberFunc) Probe() (Platform, error) { return f() }

// Default identification sources, relative to SysfsProber.Root.
const (
	DefaultBoardNamePath = paths.DMIBoardName
	DefaultModelPath     = paths.DeviceTreeModel
)

// maxIdentSize bounds how much of an identification file is read.
const maxIdentSize = 4096

// SysfsProber identifies the board from the DMI board name, falling back
// to the device-tree model.
type SysfsProber struct {
	// Root is prepended to every path. Defaults to "/".
	Root string
	// BoardNamePath is the DMI board_name file. Defaults to DefaultBoardNamePath.
	BoardNamePath string
	// ModelPath is the device-tree model file. Defaults to DefaultModelPath.
	ModelPath string
}

var _ Prober = (*SysfsProber)(nil)

// NewSysfsProber returns a prober reading the real host filesystem.
func NewSysfsProber() *SysfsProber {
	return &SysfsProber{}
}

// Probe implements Prober.
func (p *SysfsProber) Probe() (Platform, error) {
	for _, rel := range []string{
		orDefault(p.BoardNamePath, DefaultBoardNamePath),
		orDefault(p.ModelPath, DefaultModelPath),
	} {
		path := paths.HostPath(p.Root, rel)
		data, err := fileutil.ReadFileLimit(path, maxIdentSize)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return UnknownPlatform, errors.Mark(errors.Wrapf(err, "reading %s", path), errors.ErrProbeFailed)
		}
		if platform := Classify(string(data)); platform != UnknownPlatform {
			return platform, nil
		}
	}
	return UnknownPlatform, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
