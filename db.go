// db.go
//
// Audit store selection.
//   - MEMORY_AUDIT_DB unset: records live in memory for the process lifetime.
//   - MEMORY_AUDIT_DB=/path/to/audit.db: SQLite file, created and migrated on open.

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/memory/internal/store"
)

func openStore(dsn string) (store.Store, error) {
	if dsn == "" {
		return store.NewMemoryStore(), nil
	}
	st, err := store.OpenSQLite(dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	log.Info().Str("dsn", dsn).Msg("audit log enabled")
	return st, nil
}
