package database

import (
	"context"
	"fmt"
	"time"
)

// PoolStats is a snapshot of the pgx pool counters.
type PoolStats struct {
	AcquireCount         int64
	AcquireDuration      time.Duration
	AcquiredConns        int32
	CanceledAcquireCount int64
	IdleConns            int32
	MaxConns             int32
	TotalConns           int32
}

func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		AcquireCount:         raw.AcquireCount(),
		AcquireDuration:      raw.AcquireDuration(),
		AcquiredConns:        raw.AcquiredConns(),
		CanceledAcquireCount: raw.CanceledAcquireCount(),
		IdleConns:            raw.IdleConns(),
		MaxConns:             raw.MaxConns(),
		TotalConns:           raw.TotalConns(),
	}, nil
}

func calculateAvgDuration(totalDuration time.Duration, count int64) time.Duration {
	if count == 0 {
		return 0
	}
	return totalDuration / time.Duration(count)
}

// warnings lists the pool conditions worth alerting on.
func (s *PoolStats) warnings() []string {
	var out []string

	if s.MaxConns > 0 {
		utilization := float64(s.AcquiredConns) / float64(s.MaxConns) * 100
		if utilization > 80 {
			out = append(out, fmt.Sprintf("high pool utilization: %.1f%% (%d/%d)", utilization, s.AcquiredConns, s.MaxConns))
		}
	}

	if avg := calculateAvgDuration(s.AcquireDuration, s.AcquireCount); avg > 100*time.Millisecond {
		out = append(out, fmt.Sprintf("high acquire latency: %v", avg))
	}

	if s.AcquireCount > 0 {
		cancelRate := float64(s.CanceledAcquireCount) / float64(s.AcquireCount) * 100
		if cancelRate > 5 {
			out = append(out, fmt.Sprintf("high cancel rate: %.1f%%", cancelRate))
		}
	}

	return out
}

// MonitorPoolHealth logs pool warnings every interval until ctx is done.
func (db *PostgresDB) MonitorPoolHealth(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats, err := db.Stats()
			if err != nil {
				db.log.Warn().Err(err).Msg("failed to get pool stats")
				continue
			}
			for _, w := range stats.warnings() {
				db.log.Warn().Int32("total_conns", stats.TotalConns).Int32("idle_conns", stats.IdleConns).Msg(w)
			}

		case <-ctx.Done():
			db.log.Info().Msg("stopping pool health monitoring")
			return
		}
	}
}
