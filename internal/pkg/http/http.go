package http

import pkghttp "github.com/klwxsrx/mastermind/pkg/http"

const RequestIDHeader = "X-Request-ID"

const (
	DestinationMastermindService pkghttp.Destination = "mastermind"
)
