// Package config loads environment-based configuration structs.
//
// Configuration is entirely environment-driven: each package declares a
// struct with `env` tags and loads it through Load or MustLoad. A local
// .env file is honored in development. Every configuration type is
// parsed once per process and cached.
package config
