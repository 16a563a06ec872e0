package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/maa/internal/errors"
)

// AppName names the maa directories under the XDG base directories.
const AppName = "maa"

// Host locations that identify the board, relative to the filesystem root.
const (
	// DMIBoardName is the SMBIOS board name exported by the kernel.
	DMIBoardName = "sys/devices/virtual/dmi/id/board_name"
	// DeviceTreeModel is the flattened device-tree model string.
	DeviceTreeModel = "proc/device-tree/model"
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the XDG config home directory (~/.config on Linux).
func ConfigHome() string {
	return xdg.ConfigHome
}

// StateHome returns the XDG state home directory (~/.local/state on Linux).
func StateHome() string {
	return xdg.StateHome
}

// ConfigDir returns <ConfigHome>/maa.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns <ConfigHome>/maa/config.yaml.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LogDir returns <StateHome>/maa, the default location for --log-file.
func LogDir() string {
	return filepath.Join(StateHome(), AppName)
}

// LogFile resolves a --log-file value. A bare file name such as "maa.log"
// is placed in LogDir, which is created if needed. Anything with a
// directory component is returned unchanged.
func LogFile(name string) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return name, nil
	}
	dir := LogDir()
	if err := EnsureDir(dir, 0); err != nil {
		return "", errors.Wrapf(err, "creating log directory %s", dir)
	}
	return filepath.Join(dir, name), nil
}

// HostPath joins a host-relative location such as DMIBoardName onto root.
// An empty root means "/".
func HostPath(root, rel string) string {
	if root == "" {
		root = string(filepath.Separator)
	}
	return filepath.Join(root, rel)
}
