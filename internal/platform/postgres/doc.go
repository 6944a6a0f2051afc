// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package, plus the embedded
// goose migrations that create the schema they rely on. Stores talk to the
// database through database/sql with the pgx stdlib driver and translate
// driver errors into store sentinels.
package postgres
