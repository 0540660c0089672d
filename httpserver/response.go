// Package httpserver is the HTTP/1.1 serving core: a response writer, a
// per-connection handler built on requestutil and content, and an
// Acceptor wiring them to a workerpool.Pool.
//
// Grounded on the original handle_client/write_response (handlers.rs):
// bare '\n' line terminators, the exact always-present header set, and
// the 304 short-circuit that skips every other header.
package httpserver

import (
	"bufio"
	"fmt"
	"time"

	"github.com/sblundy/static2/content"
	"github.com/sblundy/static2/metrics"
)

// serverBanner is the literal Server header value, unchanged from the
// implementation this server's wire behavior is modeled on.
const serverBanner = "rust-http2-server"

const rfc2822 = "Mon, 02 Jan 2006 15:04:05 -0700"

// header is a single caller-supplied response header.
type header struct {
	Name  string
	Value string
}

// writeNotModified writes the terse 304 response: status line only, no
// Connection/Date/Server headers, no blank-line terminator. This mirrors
// the original's write! without the usual write_response call.
func writeNotModified(bw *bufio.Writer) error {
	metrics.ObserveStatus(304)
	_, err := bw.WriteString("HTTP/1.1 304 Not Modified\n")
	if err != nil {
		return err
	}
	return bw.Flush()
}

// writeResponse writes a full response: status line, Connection, Date,
// Server, then the caller's headers, a blank line, and finally body (if
// non-nil). On success it flushes before returning; on a write error it
// returns that error without flushing.
func writeResponse(bw *bufio.Writer, code int, reason string, headers []header, keepAlive bool, body content.Handle) error {
	metrics.ObserveStatus(code)
	if _, err := fmt.Fprintf(bw, "HTTP/1.1 %d %s\n", code, reason); err != nil {
		return err
	}

	if keepAlive {
		if _, err := bw.WriteString("Connection: keep-alive\n"); err != nil {
			return err
		}
	} else {
		if _, err := bw.WriteString("Connection: close\n"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(bw, "Date: %s\n", time.Now().UTC().Format(rfc2822)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "Server: %s\n", serverBanner); err != nil {
		return err
	}

	for _, h := range headers {
		if _, err := fmt.Fprintf(bw, "%s: %s\n", h.Name, h.Value); err != nil {
			return err
		}
	}

	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}

	if body != nil {
		if _, err := body.WriteTo(bw); err != nil {
			return err
		}
	}

	return bw.Flush()
}
