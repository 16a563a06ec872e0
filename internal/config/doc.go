// Package config provides configuration management for the maa CLI.
//
// Configuration controls where the board probe reads from, the default
// real-time priority requested by "maa priority", and logging defaults.
//
// # Configuration File
//
// The default configuration file location is ~/.config/maa/config.yaml;
// a config.yaml in the working directory takes precedence:
//
//	version: 1
//	probe:
//	  root: /
//	  board_name_path: sys/devices/virtual/dmi/id/board_name
//	  model_path: proc/device-tree/model
//	priority:
//	  default: 99
//	log:
//	  level: info
//	  format: text
//
// # Environment
//
// Every key can be overridden with an MAA_ variable, dots replaced by
// underscores (MAA_PROBE_ROOT, MAA_PRIORITY_DEFAULT). [LoadDotEnv] reads
// a .env file into the environment first without clobbering variables
// that are already set.
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	ini := maa.NewInitializer(cfg.Prober())
//
// Loaded configurations are validated automatically; errors are marked
// with errors.ErrInvalidConfig.
package config
