// Package protocol implements the external wire shapes (§6): the
// simulation request/progress/result/error messages, the persisted
// export envelope, and the CSV report writer. It is the only package
// that knows the engine's JSON/CSV representations — computation
// packages never import it.
package protocol
