package mtproto

import (
	"errors"
	"fmt"

	"github.com/gotd/td/tgerr"

	"github.com/bnema/billion-tapper/internal/domain"
)

var (
	ErrMissingCredentials = errors.New("API_ID and API_HASH are required for the mtproto gateway")
	errNotConnected       = errors.New("gateway is not connected")
)

// invalidSessionErrors are RPC errors after which the stored session can never
// work again.
var invalidSessionErrors = []string{
	"AUTH_KEY_UNREGISTERED",
	"AUTH_KEY_INVALID",
	"AUTH_KEY_PERM_EMPTY",
	"SESSION_REVOKED",
	"SESSION_EXPIRED",
	"USER_DEACTIVATED",
	"USER_DEACTIVATED_BAN",
}

// classify wraps err with op and marks credential failures as invalid sessions.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if tgerr.Is(err, invalidSessionErrors...) || tgerr.IsCode(err, 401) {
		return fmt.Errorf("%w: %s: %w", domain.ErrInvalidSession, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
