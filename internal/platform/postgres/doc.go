// Package postgres provides PostgreSQL implementations of the store
// interfaces, reached through the pgx database/sql driver.
package postgres
