// Package domain contains the core business entities of packtrak:
// pending scans, app variants, and the domain error taxonomy.
// It has no dependencies on adapters or infrastructure.
package domain
