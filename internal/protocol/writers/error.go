package writers

import (
	"context"

	"github.com/defikit-labs/defikit/internal/platform/logger"
	"github.com/defikit-labs/defikit/internal/protocol"
)

// ErrorWriter returns the catch-all generator for unrecognized protocol
// identifiers. It logs a warning and resolves with empty output; it never
// fails, so an unsupported protocol does not abort a batch.
func ErrorWriter(log *logger.Logger) protocol.Generator {
	return func(ctx context.Context, targetDir, solverVersion string, network protocol.Network, spec protocol.ImportSpec) (*protocol.WriterResult, error) {
		log.Warn("unsupported protocol, skipping import",
			"protocol", spec.Protocol,
			"network", network)
		return &protocol.WriterResult{}, nil
	}
}
