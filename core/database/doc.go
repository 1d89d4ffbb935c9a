// Package database manages the GORM database connection.
//
// It supports two drivers: MySQL for deployments and SQLite (including the
// ":memory:" database) for tests and local development. Connect applies
// pooling, a ping with timeout, and error translation so uniqueness
// violations are reported uniformly as gorm.ErrDuplicatedKey regardless of
// driver.
//
// # Usage
//
//	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
package database
