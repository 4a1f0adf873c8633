// Package docsurl builds the outbound links shown to users: versioned
// documentation URLs plus store and learn site links.
//
// Documentation lives under one channel per minor release line
// (https://www.metabase.com/docs/v0.45/) with "latest" tracking the
// development branch. ResolveChannel maps a release tag onto that layout and
// falls back to "latest" for anything it does not recognise, so resolving a
// link never fails.
//
// Every function in this package is pure; a Resolver is immutable after
// construction and may be shared freely.
package docsurl
