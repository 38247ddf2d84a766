// Package settings loads the HFT runtime settings file: global manifest
// defaults, per-gameType defaults, and the table of installed runtime-API
// versions. The file is validated against an embedded JSON Schema before
// use, and the loaded value is immutable thereafter.
package settings
