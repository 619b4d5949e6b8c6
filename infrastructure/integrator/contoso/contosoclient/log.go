package contosoclient

import (
	"context"
	"time"

	"github.com/vfg2006/contoso-dashboard-client/pkg/log"
)

// logDatasetRead registra o resultado de uma leitura de dataset com os
// campos de rastreabilidade do cliente
func logDatasetRead(ctx context.Context, endpoint string, statusCode int, elapsed time.Duration, err error) {
	entry := log.ForContext(ctx).WithFields(log.Fields{
		"endpoint":    endpoint,
		"status_code": statusCode,
		"duration_ms": elapsed.Milliseconds(),
	})

	if err != nil {
		entry.WithError(err).Warn("contoso: leitura de dataset falhou")
		return
	}

	entry.Debug("contoso: leitura de dataset concluída")
}
