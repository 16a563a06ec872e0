// Package paths resolves the filesystem locations maa reads and writes.
//
// User-level locations follow the XDG Base Directory Specification through
// github.com/adrg/xdg:
//
//	paths.ConfigFile() // ~/.config/maa/config.yaml
//	paths.LogDir()     // ~/.local/state/maa
//
// Host locations identify the board and are relative to a filesystem root
// so tests can point them at a temporary tree:
//
//	paths.HostPath("/", paths.DMIBoardName)  // /sys/devices/virtual/dmi/id/board_name
//	paths.HostPath(dir, paths.DeviceTreeModel)
package paths
