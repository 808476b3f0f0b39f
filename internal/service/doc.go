// Package service provides the application-level content studio: one-shot
// generation through Studio and stateful, regenerable sessions through
// Session and SessionManager.
package service
