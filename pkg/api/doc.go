// Package api exposes schema validation over HTTP.
//
// Routes:
//
//	GET  /health                         liveness and readiness probe
//	GET  /schemas                        schemas of the registry with their fields
//	GET  /schemas/{name}                 a single schema
//	POST /schemas/{name}/validate        validate the JSON body against a schema
//
// The validate route accepts the optional query parameters strict and
// required, which override the schema policies for that call. Every JSON
// response uses the same envelope:
//
//	{"data": {...}}                                  success
//	{"error": {"code": "...", "message": "...",
//	           "details": {"field": ["message", ...]}}} failure
//
// An invalid payload answers 422 with the validation report in
// error.details. An unknown schema answers 404; malformed bodies answer 400,
// 413 or 415.
//
// Handler.SetRegistry replaces the served schemas without restarting the
// server; requests already running finish against the registry they started
// with.
package api
