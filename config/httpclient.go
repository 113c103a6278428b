package config

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

// newHTTPClient creates a customized HTTP client with optimized transport settings and HTTP/2 support
func newHTTPClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          200,
		MaxIdleConnsPerHost:   50,
		MaxConnsPerHost:       100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	// Enable HTTP/2
	if err := http2.ConfigureTransport(transport); err != nil {
		panic(fmt.Sprintf("Failed to configure HTTP/2: %v", err))
	}

	return &http.Client{Transport: transport}
}
