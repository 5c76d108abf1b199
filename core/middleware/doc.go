// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: assigns a unique request id, stores it in the context and echoes
//     it in the X-Ray-ID response header.
//   - RequestLog: logs method, path, status and latency of every request with
//     the ray id attached.
//   - CORS: writes Access-Control-Allow-Origin, -Methods and -Headers on every
//     response and answers OPTIONS preflights with 204.
//
// They are registered in that order by core/server.NewApp, ahead of any
// feature routes.
package middleware
