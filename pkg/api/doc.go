// Package api exposes canvas conversion over HTTP.
//
// # Endpoints
//
//	POST /api/v1/render?format=svg|png&padding=20&style=rounded&scale=2
//	GET  /api/v1/palette
//	GET  /api/v1/version
//	GET  /healthz
//
// The render endpoint takes a canvas document as the request body and
// responds with the rendered bytes. Errors are JSON:
//
//	{"code": "DANGLING_EDGE_REFERENCE", "error": "edge e: toNode \"x\" not found"}
//
// Malformed bodies and invalid query options answer 400; documents that
// decode but cannot be converted answer 422.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	srv := &http.Server{Addr: ":8080", Handler: api.NewRouter(runner, logger)}
//	err := srv.ListenAndServe()
package api
