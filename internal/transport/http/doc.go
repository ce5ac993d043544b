// Package http contains the chi HTTP handlers for the SalesPulse API.
// Handlers translate requests into service calls and render JSON responses;
// failures flow through the shared RFC 7807 error handler.
package http
