// Package config loads the tablerw command configuration.
//
// Values come from a config.yml file, an optional .env file and the process
// environment, in that order of precedence from lowest to highest. Environment
// keys map to nested config keys by splitting on underscores, so EXPORT_ROWS
// sets export.rows.
//
//	cfg, err := config.Load("tablerw", config.WithConfigFile("config.yml"))
package config
