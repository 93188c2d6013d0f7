package api

import (
	"context"
	"crypto/x509"
	"errors"
	"net"
	"net/http"
)

// ErrorKind classifies why a push failed. The sync engine treats every
// kind as retryable up to the retry limit; the kind exists for logging
// and for the user-facing status surface.
type ErrorKind string

const (
	ErrorKindNone            ErrorKind = ""
	ErrorKindNetworkTimeout  ErrorKind = "network_timeout"
	ErrorKindConnectionError ErrorKind = "connection_error"
	ErrorKindServerError     ErrorKind = "server_error"
	ErrorKindClientError     ErrorKind = "client_error"
	ErrorKindBadCertificate  ErrorKind = "bad_certificate"
	ErrorKindCancelled       ErrorKind = "cancelled"
	ErrorKindUnknown         ErrorKind = "unknown"
)

// Message returns a short human-readable description of the kind.
func (k ErrorKind) Message() string {
	switch k {
	case ErrorKindNetworkTimeout:
		return "request timed out"
	case ErrorKindConnectionError:
		return "could not reach server"
	case ErrorKindServerError:
		return "server error"
	case ErrorKindClientError:
		return "request rejected by server"
	case ErrorKindBadCertificate:
		return "server certificate not trusted"
	case ErrorKindCancelled:
		return "request cancelled"
	case ErrorKindUnknown:
		return "unexpected error"
	default:
		return ""
	}
}

// classifyError maps a transport error to an ErrorKind. Order matters:
// context cancellation and timeouts wrap lower-level net errors, so they
// are checked first.
func classifyError(err error) ErrorKind {
	if err == nil {
		return ErrorKindNone
	}

	if errors.Is(err, context.Canceled) {
		return ErrorKindCancelled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorKindNetworkTimeout
	}

	var certErr x509.CertificateInvalidError
	if errors.As(err, &certErr) {
		return ErrorKindBadCertificate
	}
	var unknownAuthErr x509.UnknownAuthorityError
	if errors.As(err, &unknownAuthErr) {
		return ErrorKindBadCertificate
	}
	var hostnameErr x509.HostnameError
	if errors.As(err, &hostnameErr) {
		return ErrorKindBadCertificate
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrorKindNetworkTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ErrorKindConnectionError
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ErrorKindConnectionError
	}

	return ErrorKindUnknown
}

// classifyStatus maps a non-2xx HTTP status code to an ErrorKind.
func classifyStatus(code int) ErrorKind {
	switch {
	case code >= http.StatusInternalServerError:
		return ErrorKindServerError
	case code >= http.StatusBadRequest:
		return ErrorKindClientError
	default:
		return ErrorKindUnknown
	}
}
