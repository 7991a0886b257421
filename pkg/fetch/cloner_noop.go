package fetch

import (
	"context"

	"go.uber.org/zap"
)

// NoopCloner logs clone requests but does not touch the network or the
// filesystem. Useful for CI or dry validation of a configuration.
type NoopCloner struct{}

func NewNoopCloner() *NoopCloner { return &NoopCloner{} }

func (n *NoopCloner) Clone(_ context.Context, remoteURL, destPath string, depth int) error {
	logSink.Info("NOOP clone", zap.String("remote", remoteURL), zap.String("dest", destPath), zap.Int("depth", depth))
	return nil
}
