// Package config holds the natscan configuration.
//
// The Config struct is populated from CLI flags and passed through the
// application by dependency injection rather than global state. An
// optional .natscan YAML file supplies the API key and saved query
// presets; it is searched for in the current directory and then in the
// user's home directory.
package config
