// Package http implements the REST transport of the dashboard.
//
// It wires the chi routes, decodes JSON and multipart requests, and maps
// service errors to {"message": ...} responses. Bearer token checks, role
// gates, request tracing, access logging and Prometheus metrics run as
// middleware before a request reaches the service layer. Stored uploads are
// served read-only under /uploads.
package http
