package database

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
)

// poolBusyRatio is the share of open connections in use above which the pool counts as busy
const poolBusyRatio = 0.8

// ConnectionPoolMonitor samples sql.DBStats and warns when wallet and join transactions
// start queueing for connections
type ConnectionPoolMonitor struct {
	db       *Manager
	logger   coreport.Logger
	last     sql.DBStats
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(db *Manager, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:       db,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start takes a first sample and then samples every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	first, err := m.stats()
	if err != nil {
		return err
	}
	m.last = first

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.sample()
			case <-m.stopChan:
				return
			}
		}
	}()
	return nil
}

// Stop stops the monitoring. It is safe to call more than once.
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

func (m *ConnectionPoolMonitor) sample() {
	cur, err := m.stats()
	if err != nil {
		m.logger.Error("Failed to read connection pool stats", map[string]any{"error": err.Error()})
		return
	}
	if fields, busy := poolPressure(m.last, cur); busy {
		m.logger.Warn("Database connection pool under pressure", fields)
	}
	m.last = cur
}

func (m *ConnectionPoolMonitor) stats() (sql.DBStats, error) {
	sqlDB, err := m.db.DB().DB()
	if err != nil {
		return sql.DBStats{}, fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Stats(), nil
}

// poolPressure compares two samples. The pool is under pressure when most connections
// are in use or when requests had to wait for one since the previous sample.
func poolPressure(prev, cur sql.DBStats) (map[string]any, bool) {
	newWaits := cur.WaitCount - prev.WaitCount
	busy := cur.MaxOpenConnections > 0 &&
		float64(cur.InUse) > float64(cur.MaxOpenConnections)*poolBusyRatio

	if !busy && newWaits <= 0 {
		return nil, false
	}
	return map[string]any{
		"in_use":     cur.InUse,
		"idle":       cur.Idle,
		"max_open":   cur.MaxOpenConnections,
		"new_waits":  newWaits,
		"waited_for": (cur.WaitDuration - prev.WaitDuration).String(),
	}, true
}
