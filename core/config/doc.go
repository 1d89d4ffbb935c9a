// Package config provides configuration management for GameGestor.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port)
//   - Log: Logging level and format
//   - Database: MySQL/SQLite connection details
//   - Rawg: metadata provider base URL, API key and timeout
//   - Auth: JWT validation secret
//   - Storage: optional S3/MinIO settings for cover-art mirroring
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
