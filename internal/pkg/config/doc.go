// Package config provides functionality for loading and managing application configuration.
//
// Settings are declared as structs with mapstructure tags, loaded from YAML
// files with environment variable overrides, and validated before use. The
// package also carries the parameter catalog declarations the REST service
// registers at startup.
package config
