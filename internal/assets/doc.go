// Package assets checks a game's directory for presentation assets (icon,
// screenshot, controller page). It runs only after a manifest has been
// validated and never influences validation itself; missing assets are
// reported, not enforced.
package assets
