// Package store provides focused, single-concern data access stores
// for the fragmentor.
//
// Each store owns one domain (molecules, fragments, spectra) and embeds
// shared helpers (Pool, logger) via the Base struct. Stores never
// import each other; shared logic lives in this file or in scan.go.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spectrakit/fragmentor/internal/dbpool"

	"github.com/sirupsen/logrus"
)

const defaultQueryTimeout = 30 * time.Second

// Base contains shared dependencies for all stores.
// Embed this in each store struct.
type Base struct {
	Pool *dbpool.Pool
	Log  *logrus.Logger
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// notify sends a pg_notify on the mol_changes channel (best-effort,
// post-commit). The notify bridge forwards payloads to the event hub.
func (b *Base) notify(table, op, id string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload, _ := json.Marshal(map[string]any{ //nolint:errcheck // static keys, cannot fail.
		"table": table,
		"op":    op,
		"id":    id,
	})
	if _, err := b.Pool.Exec(ctx, "SELECT pg_notify('mol_changes', $1)", string(payload)); err != nil {
		b.Log.WithError(err).Warn("failed to send " + op + " " + table + " notification")
	}
}
