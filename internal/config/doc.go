// Package config manages user-level settings stored at ~/.hft/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the games root and settings file location.
package config