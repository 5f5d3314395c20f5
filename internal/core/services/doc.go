// Package services implements the packtrak use cases: scan capture and the
// offline queue sync driver. Services depend only on ports and domain types;
// adapters are injected at construction time.
package services
