// Package api assembles the HTTP surface: middleware, health probes, the
// account endpoints and the session-gated todo endpoints. Every error,
// including unknown routes and auth gate rejections, is rendered with the
// handler package's JSON envelope.
package api
