package httpserver

import (
	"bufio"
	"errors"
	"io"
	"net"
	"strconv"

	"github.com/sblundy/static2/content"
	"github.com/sblundy/static2/requestutil"
)

// Logger is the narrow logging capability the connection handler needs.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Errorf(template string, args ...interface{})
}

// HandleConnection runs the request/response loop for one accepted
// connection: parse a request, dispatch it, write a response, and
// continue only while the decided keep-alive policy says to. It closes
// conn before returning.
//
// Grounded on handle_client (handlers.rs): the loop wraps the raw
// connection in a single buffered reader/writer pair and runs until
// EndOfStream, a BadRequest, or a decided keep-alive of false.
func HandleConnection(conn net.Conn, source content.Source, log Logger) {
	defer conn.Close()

	br := bufio.NewReader(conn)
	bw := bufio.NewWriter(conn)

	for {
		keepAlive, err := handleOne(br, bw, source)
		if err != nil {
			if !errors.Is(err, requestutil.ErrEndOfStream) && !isClosedConnError(err) {
				log.Errorf("static2: connection error: %v", err)
			}
			return
		}
		if !keepAlive {
			return
		}
	}
}

func isClosedConnError(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed)
}

// handleOne parses and serves exactly one request, returning the
// keep-alive decision for the connection.
func handleOne(br *bufio.Reader, bw *bufio.Writer, source content.Source) (bool, error) {
	req, err := requestutil.Parse(br)
	if err != nil {
		var bad *requestutil.BadRequest
		if errors.As(err, &bad) {
			if werr := writeResponse(bw, bad.Code, bad.Reason, nil, false, nil); werr != nil {
				return false, werr
			}
			return false, nil
		}
		return false, err
	}

	switch req.Kind {
	case requestutil.KindGet:
		keepAlive := req.Headers.KeepAlive()
		return keepAlive, handleGet(bw, source, req, false, keepAlive)
	case requestutil.KindHead:
		keepAlive := req.Headers.KeepAlive()
		return keepAlive, handleGet(bw, source, req, true, keepAlive)
	case requestutil.KindOptions:
		return false, handleOptions(bw, source, req)
	}
	return false, writeResponse(bw, 400, "Request line not understood", nil, false, nil)
}

func handleGet(bw *bufio.Writer, source content.Source, req *requestutil.Request, suppressEntity, keepAlive bool) error {
	handle, ok := source.Find(req.URL, req.Headers.AcceptsGzip())
	if !ok {
		return writeResponse(bw, 404, "Not Found", nil, keepAlive, nil)
	}
	defer handle.Close()

	if t, ok := req.Headers.IfModifiedSince(); ok && handle.IsOlderOrEqual(t) {
		return writeNotModified(bw)
	}

	headers := []header{
		{Name: "Content-Length", Value: strconv.FormatInt(handle.Len(), 10)},
		{Name: "Last-Modified", Value: handle.ModTime().Format(rfc2822)},
	}
	if handle.Gzipped() {
		headers = append(headers, header{Name: "Content-Encoding", Value: "gzip"})
	}

	var body content.Handle
	if !suppressEntity {
		body = handle
	}
	return writeResponse(bw, 200, "OK", headers, keepAlive, body)
}

// handleOptions answers both the asterisk form (req.Asterisk) and a URL
// target. Connection policy is always close, matching the original.
func handleOptions(bw *bufio.Writer, source content.Source, req *requestutil.Request) error {
	if req.Asterisk {
		headers := []header{
			{Name: "Allow", Value: "OPTIONS, GET, HEAD"},
			{Name: "Content-Length", Value: "0"},
		}
		return writeResponse(bw, 200, "OK", headers, false, nil)
	}

	handle, ok := source.Find(req.URL, false)
	if !ok {
		return writeResponse(bw, 404, "Not Found", nil, false, nil)
	}
	handle.Close()

	headers := []header{
		{Name: "Allow", Value: "OPTIONS, GET, HEAD"},
		{Name: "Content-Length", Value: "0"},
	}
	return writeResponse(bw, 200, "OK", headers, false, nil)
}
