// Package env provides an environment-variable DataFetcher for the config package.
//
// Variables sharing a prefix are turned into a YAML document, so they load through the
// same parser as configuration files and can be layered on top of them:
//
//	APP_LOG_LEVEL=debug       -> log_level: debug
//	APP_DB__PRIMARY__PORT=5433 -> db: {primary: {port: 5433}}
//
//	envFetcher, err := env.NewFetcher("APP")()
//	root, err := config.Load(yamlparser.NewParser(), fileFetcher, envFetcher)
package env
