// Package hftdata resolves the on-disk locations of HFT user data: the
// games root and the runtime settings file. Each location can be overridden
// by an environment variable, then a config key, before falling back to the
// conventional path under ~/.hft.
package hftdata
