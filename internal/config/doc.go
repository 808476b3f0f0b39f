// Package config handles configuration loading, parsing, and validation
// from environment variables, an optional .env file and an optional
// config.yaml. It provides type-safe access to the server, model, image
// service, storage, auth and sweeper settings.
package config
