// Package config loads service configuration with Viper.
//
// Values come from a YAML config file, an optional .env file loaded with
// godotenv, and the process environment, in increasing order of precedence.
// Environment keys map onto nested keys by underscores (LOGGING_LEVEL sets
// logging.level).
//
// # Usage
//
//	var cfg Config
//	err := config.LoadConfig("peopleq", &cfg, config.WithConfigFile(path))
package config
