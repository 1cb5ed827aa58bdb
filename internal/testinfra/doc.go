// Package testinfra starts throwaway dependencies for integration tests.
//
// Files in this package are built only with the integration tag:
//
//	go test -tags integration ./...
//
// Tests call SkipIfNoDocker first so they pass on machines without Docker.
package testinfra
