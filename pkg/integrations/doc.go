// Package integrations provides HTTP clients for package registry APIs.
//
// # Overview
//
// This package contains low-level API clients for looking up the latest
// published version of a package. Each registry has its own subpackage:
//
//   - [npm]: Node Package Manager
//   - [pypi]: Python Package Index
//
// # Client Pattern
//
// All registry clients follow a consistent pattern:
//
//	client := npm.NewClient(integrations.Options{})
//	latest, err := client.LatestVersion(ctx, "left-pad")
//
// Clients handle:
//   - One HTTP GET per lookup, bounded by a request timeout
//   - Status mapping to [ErrNotFound] and [ErrNetwork]
//   - Conversion into the scan error taxonomy via [RegistryError]
//
// Responses are never cached and failed requests are never retried: a
// package that cannot be looked up is skipped by the caller.
//
// # Shared Infrastructure
//
// The [Client] type provides shared HTTP functionality used by all registry
// clients, including default headers and [observability.HTTPHooks] events.
//
// # Adding a New Registry
//
// To add support for a new package registry:
//
//  1. Create a subpackage: pkg/integrations/<registry>/
//  2. Define response structs matching the API schema
//  3. Implement a Client with a LatestVersion method
//  4. Use [NewClient] for HTTP
//  5. Wire into [deps] as a new language
//
// [npm]: github.com/matzehuels/depscan/pkg/integrations/npm
// [pypi]: github.com/matzehuels/depscan/pkg/integrations/pypi
// [deps]: github.com/matzehuels/depscan/pkg/deps
// [observability.HTTPHooks]: github.com/matzehuels/depscan/pkg/observability.HTTPHooks
package integrations
