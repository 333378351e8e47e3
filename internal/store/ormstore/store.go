// Package ormstore implements the persistence backend on a relational
// database through GORM. Conflicting writes are serialized by the
// underlying engine; no application-level locking is added here.
package ormstore

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store is the GORM-backed persistence backend
type Store struct {
	db        *gorm.DB
	logger    *zap.Logger
	connected bool
}

// New creates a Store over an open GORM handle
func New(db *gorm.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Connect verifies the connection is usable. Safe to call repeatedly.
func (s *Store) Connect(ctx context.Context) error {
	if s.connected {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	s.connected = true
	s.logger.Info("relational backend connected")
	return nil
}

// Disconnect releases the connection pool. Safe to call repeatedly.
func (s *Store) Disconnect() error {
	if !s.connected {
		return nil
	}
	s.connected = false
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}
