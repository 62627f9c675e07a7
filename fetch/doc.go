// Package fetch downloads published PDF sets from statistics-bureau
// sites.
//
// Bureau servers are slow and intolerant of bursts, so the client is
// deliberately polite: one request at a time, a fixed delay between
// downloads, bounded retries with backoff, and a per-request timeout.
package fetch
