// Package config loads daemon configuration from defaults, a YAML
// file, and MEMBERD_* environment overrides, and converts it into
// protocol settings.
package config
