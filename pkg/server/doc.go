// Package server serves the gallery over HTTP.
//
// # Routes
//
//	GET /                          room 1
//	GET /room?room=N               room N, falling back to room 1
//	GET /room/{room}               room page, falling back to room 1
//	GET /display/{id}              label, room and links as JSON
//	GET /display/{id}/view         display page with downloads and a way back
//	GET /display/{id}/image.png    full-size artwork
//	GET /display/{id}/preview.jpg  thumbnail
//	GET /display/{id}/details.txt  label download
//	GET /metrics                   Prometheus metrics, when configured
//	GET /healthz                   liveness
//
// Image routes run the generator on every request and share a token bucket
// limiter; requests over the limit get 429 with a Retry-After header.
//
// Everything served is a pure function of the path, so responses carry
// long-lived cache headers.
//
// # Errors
//
// Validation failures map to 400 with the user-facing message ("Invalid
// Display ID. Please use a number greater than 0."). Anything else maps to
// 500 with "Failed to load display content." and is logged.
package server
