// Package manifest validates and normalizes game package manifests.
// A manifest is the "hft" section embedded in a game's package.json; parsing
// applies cascading defaults from the runtime settings, checks required
// fields, resolves which installed runtime-API version the game runs against,
// and derives path fields. Recoverable problems are reported as typed
// rejections so discovery of other games can continue.
package manifest
