// Package gateway shields the rest of the application from direct
// provider calls. Every operation is memoized in a TTL cache keyed by
// a canonical serialization of its parameters, and every cache miss
// waits for the shared pacer before touching the network. Without
// provider credentials the gateway answers from a bundled offline
// sample catalog instead of failing.
package gateway
