// Package sqlite provides the durable queue store backed by an embedded
// SQLite database. Both app variants share one database file; their records
// are isolated by namespace. The schema is managed through embedded SQL
// migrations applied on open.
package sqlite
