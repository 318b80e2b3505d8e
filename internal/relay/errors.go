package relay

import (
	"errors"
	"fmt"
)

var (
	// ErrRejected is the umbrella for every scanned payload that must be
	// rejected without touching any state.
	ErrRejected = errors.New("payload rejected")

	ErrMalformedPayload    = fmt.Errorf("%w: malformed payload", ErrRejected)
	ErrUnsupportedProtocol = fmt.Errorf("%w: unsupported protocol", ErrRejected)
	ErrTransferMismatch    = fmt.Errorf("%w: chunk does not match transfer", ErrRejected)

	ErrInvalidChunkPolicy = errors.New("chunk policy limits must be positive")
)
