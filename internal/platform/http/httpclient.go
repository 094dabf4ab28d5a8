// Package http provides the outbound HTTP client used for upstream APIs.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient returns a client for calls to the price provider.
//
// timeout bounds the whole request including reading the body; http.DefaultClient
// has no timeout and must not be used for upstream calls. The transport honours
// HTTP_PROXY/HTTPS_PROXY and keeps a small pool of idle connections, since every
// request goes to the same host.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
