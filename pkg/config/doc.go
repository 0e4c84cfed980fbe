// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Configuration types declare their environment bindings with `env` struct
// tags (see github.com/caarlos0/env). Packages in this module that need
// runtime configuration (for example the feature flag fetcher) expose a
// Config struct meant to be loaded through this package.
package config
