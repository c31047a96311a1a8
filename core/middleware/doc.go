// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: tags every request with a unique id, stored in the request locals for
//     logger.WithRayID and echoed in the X-Ray-ID response header.
package middleware
