// Package main hosts the Marquee CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into catalog
// lookups against the remote metadata gateway and mutations of the local
// watchlist. It centralizes configuration resolution, data-directory locking,
// and structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
