// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic. The studio persists only generated image
// blobs; sessions live in memory.
package store
