// Package driving defines the primary ports: the use-case interfaces exposed
// to drivers such as the CLI and the spool watcher.
package driving
