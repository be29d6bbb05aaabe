// Package config loads route.Params overrides from YAML, merged over
// embedded defaults.
//
// Grounded on pthm-soup's config.Load (_examples/pthm-soup/config/config.go):
// embedded defaults.yaml unmarshaled first, then an optional user file
// unmarshaled over the same struct so it only overwrites the fields it
// sets.
package config
