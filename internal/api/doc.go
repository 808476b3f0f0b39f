// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It adapts the content studio and its sessions to
// JSON over HTTP and serves generated images.
package api
