// Package httpapi adapts the simulation request/response protocol (§6)
// onto HTTP: POST /simulations accepts a simulation:start payload and
// streams simulation:progress/result/error as newline-delimited JSON;
// /metrics exposes the Prometheus registry. This is the only package
// that runs the Monte Carlo driver concurrently with request handling —
// the driver itself stays single-threaded (§5).
package httpapi
