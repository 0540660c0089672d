package main

import (
	"crypto/tls"

	"github.com/sblundy/static2/config"
)

// loadTLSConfig builds a tls.Config from a certificate/key pair on disk.
//
// Grounded on create_acceptor/load_cert (lib.rs), which builds an OpenSSL
// "mozilla_intermediate" acceptor from a PEM cert and key. Go's
// crypto/tls has no equivalent named profile; MinVersion TLS 1.2 plus the
// AEAD cipher suites is the closest idiomatic approximation and is noted
// as such in the design notes rather than silently treated as identical.
func loadTLSConfig(t config.TLS) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(t.CertPath, t.KeyPath)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
		CipherSuites: []uint16{
			tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
			tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
			tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305,
			tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305,
		},
	}, nil
}
