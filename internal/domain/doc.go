// Package domain contains the value types that flow through a content
// generation request: the request itself, the parsed post content, the
// per-slide image references and the stored image blobs. None of them
// depend on a specific model provider or delivery mechanism.
package domain
