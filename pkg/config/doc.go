// Package config loads typed configuration from environment variables using
// github.com/caarlos0/env struct tags. A ".env" file in the working directory
// is read once through github.com/joho/godotenv when present; explicit dotenv
// files can be requested with WithEnvFiles.
package config
