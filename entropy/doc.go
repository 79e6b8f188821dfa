// Package entropy provides the search engine's random source: a
// long-period PCG generator that periodically reseeds itself from the
// platform's secure entropy.
//
// Overview:
//
//   - NewSource seeds a golang.org/x/exp/rand PCG generator with 8
//     bytes read from crypto/rand and fails if the platform source is
//     unavailable.
//   - Every ReseedInterval draws (default 10 000) the source pulls 8
//     fresh bytes and reseeds in place; a failed reseed keeps the
//     current stream rather than interrupting a search.
//
// The engine's plateau-escape perturbation is the only consumer. With
// the shipped configuration that path is dormant, so a Source
// typically performs a single blocking read at construction and none
// afterwards — which also keeps optimization runs deterministic.
//
// A Source is not safe for concurrent use.
package entropy
