// Package fetch retrieves documentation articles over HTTP and turns them
// into Documents. Failures are classified (invalid URL, transport, timeout,
// status) so callers can branch on kind instead of parsing error text.
package fetch
