// Package integrations provides HTTP plumbing for package registry APIs.
//
// # Overview
//
// The shared [Client] performs GET requests, maps HTTP statuses onto the
// sentinel errors [ErrNotFound] and [ErrNetwork], and decodes JSON bodies
// (reporting failures as [ErrDecode]). Registry-specific clients live in
// subpackages:
//
//   - [npm]: Node Package Manager
//
// # Client Pattern
//
//	client := npm.NewClient(npm.Options{})
//	info, err := client.FetchPackage(ctx, "express")
//
// Every request is issued exactly once. There is no response cache and no
// retry: a failed request is the caller's failure.
//
// [npm]: github.com/matzehuels/rdtree/pkg/integrations/npm
package integrations
