// Package static serves files from the document root.
//
// Request paths map onto files under the root. Directories answer with their
// index file, or with a generated listing when browsing is enabled. Paths that
// do not resolve to a file fall through to fiber's 404 handling. Traversal
// outside the root is prevented by the path normalisation of the underlying
// fasthttp file server. Files are reopened on every request so edits show up
// immediately.
package static
