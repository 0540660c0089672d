package httpserver

import (
	"crypto/tls"
	"net"

	"github.com/sblundy/static2/content"
	"github.com/sblundy/static2/metrics"
	"github.com/sblundy/static2/workerpool"
)

// Acceptor binds a listener and hands each accepted connection to a
// worker pool as a job.
//
// Grounded on the original serve/serve_https (mod.rs) and start_server
// (lib.rs): one dedicated accept loop, each socket dispatched as a job
// rather than handled inline, with the TLS handshake (when configured)
// happening inside the job so a slow handshake ties up one worker, not
// the accept loop.
type Acceptor struct {
	Pool      *workerpool.Pool
	Source    content.Source
	TLSConfig *tls.Config // nil disables TLS
	Log       Logger
}

// Serve accepts connections from ln forever. Every accept error, transient
// or not, is logged and the loop continues; it never returns on its own.
// Closing ln does not stop it either: every later Accept fails, and the
// loop logs each failure and keeps looping, so callers that want a clean
// exit select on something else (e.g. a signal channel) alongside Serve.
func (a *Acceptor) Serve(ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			a.Log.Errorf("static2: accept error: %v", err)
			continue
		}

		metrics.ConnectionsAccepted.Inc()
		a.Pool.Execute(a.job(conn))
	}
}

func (a *Acceptor) job(conn net.Conn) func() {
	return func() {
		if a.TLSConfig != nil {
			tconn := tls.Server(conn, a.TLSConfig)
			if err := tconn.Handshake(); err != nil {
				a.Log.Errorf("static2: TLS handshake failed: %v", err)
				conn.Close()
				return
			}
			HandleConnection(tconn, a.Source, a.Log)
			return
		}
		HandleConnection(conn, a.Source, a.Log)
	}
}

// NewListener binds addr (host:port) for plain TCP.
func NewListener(addr string) (net.Listener, error) {
	return net.Listen("tcp", addr)
}
