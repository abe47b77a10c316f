package domain

import (
	"context"
	"errors"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrSecretNotFound     = errors.New("secret not found")
	ErrInvalidSession     = errors.New("invalid session")
	ErrTransient          = errors.New("transient failure")
	ErrGatewayUnsupported = errors.New("operation not supported by gateway")
	ErrNotParticipant     = errors.New("user is not a participant")
)

type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindTransient
	KindFatal
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindTransient:
		return "transient"
	case KindFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// KindOf classifies err. Only ErrInvalidSession is fatal; everything else is retried on
// the next cycle.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidSession):
		return KindFatal
	default:
		return KindTransient
	}
}

func IsFatal(err error) bool {
	return KindOf(err) == KindFatal
}

func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
