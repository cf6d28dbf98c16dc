// Package config loads typed configuration from environment variables.
//
// Load reads optional .env files with godotenv (existing process variables
// take precedence) and then parses the target struct with caarlos0/env using
// its `env`, `envDefault` and `envSeparator` tags. Each package that needs
// configuration declares its own tagged struct and main loads them one by
// one:
//
//	var emailCfg email.Config
//	config.MustLoad(&emailCfg)
//
// Tests can bypass the process environment entirely:
//
//	err := config.Load(&cfg, config.WithEnvironment(map[string]string{"SITE_URL": "http://x"}))
package config
