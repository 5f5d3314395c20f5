// Package driven defines the secondary ports: interfaces the core services
// depend on, implemented by adapters (storage, session, network).
package driven
