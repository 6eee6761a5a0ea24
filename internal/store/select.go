package store

import (
	"go.uber.org/zap"

	"github.com/Ostroner/smartCarproject/internal/config"
)

// Select picks the backing store for the lifetime of the process. It probes
// MySQL once, before the server starts accepting requests; if the connection
// cannot be established it falls back to the volatile in-memory store. The
// decision is never re-evaluated.
func Select(cfg *config.Config, log *zap.SugaredLogger) (Store, error) {
	sqlStore, err := OpenSQL(cfg)
	if err != nil {
		log.Warnw("MySQL not available, using in-memory store (data is lost on restart)",
			"error", err)
		mem := NewMemoryStore()
		if err := Seed(mem); err != nil {
			return nil, err
		}
		return mem, nil
	}

	log.Infow("MySQL connected", "host", cfg.DBHost, "database", cfg.DBName)
	if err := Seed(sqlStore); err != nil {
		return nil, err
	}
	return sqlStore, nil
}
