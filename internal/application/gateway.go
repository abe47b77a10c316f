package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bnema/billion-tapper/internal/ports"
)

// withGateway connects gw when needed, runs fn and disconnects afterwards on every
// exit path. The disconnect uses a context that survives cancellation.
func withGateway(ctx context.Context, gw ports.Gateway, logger *zap.Logger, fn func(context.Context) error) error {
	if !gw.IsConnected() {
		if err := gw.Connect(ctx); err != nil {
			return fmt.Errorf("connect gateway: %w", err)
		}
	}
	defer func() {
		if err := gw.Disconnect(context.WithoutCancel(ctx)); err != nil {
			logger.Debug("Gateway disconnect failed", zap.Error(err))
		}
	}()

	return fn(ctx)
}
