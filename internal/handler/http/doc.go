// Package http implements the HTTP transport layer of go-weather-keeper.
//
// It exposes the /weather routes, their request handlers and the middleware
// chain: panic recovery, request tracing, access logging, bearer token
// authentication and method checks. Handlers translate service errors into
// status codes through a single sentinel table.
package http
