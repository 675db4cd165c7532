package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	boltdb "github.com/andrew-solarstorm/bolt-db"
	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/akshatcoder-hash/lifi-lens/internal/domain"
)

const (
	StatusBucket = "statuses"

	DefaultDBPath = "./data/lens-cache.db"
)

// StoredStatus wraps a terminal transaction status for persistence.
// Terminal statuses never change, so no expiry is recorded.
type StoredStatus struct {
	TxHash   string                    `json:"txHash"`
	StoredAt int64                     `json:"storedAt"`
	Status   *domain.TransactionStatus `json:"status"`
}

// Storage persists upstream responses across restarts. Only terminal
// transaction statuses go to disk; everything else is memory-cached upstream.
type Storage struct {
	db     *boltdb.BoltDatabase
	dbPath string
}

func NewStorage(dbPath string) (*Storage, error) {
	if dbPath == "" {
		dbPath = DefaultDBPath
	}
	os.MkdirAll(filepath.Dir(dbPath), 0755)

	db := boltdb.NewBoltDatabase(dbPath)
	if db == nil {
		return nil, fmt.Errorf("failed to open database at %s", dbPath)
	}

	log.Info().Str("path", dbPath).Msg("[lensStorage] opened database")

	return &Storage{
		db:     db,
		dbPath: dbPath,
	}, nil
}

func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveStatus stores one terminal transaction status.
func (s *Storage) SaveStatus(stored *StoredStatus) error {
	data, err := sonic.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}
	return s.db.Set(StatusBucket, []byte(strings.ToLower(stored.TxHash)), data)
}

// SaveStatusBatch stores terminal statuses in one write transaction.
func (s *Storage) SaveStatusBatch(statuses []*StoredStatus) error {
	if len(statuses) == 0 {
		return nil
	}

	batch := s.db.NewBatch()
	for _, stored := range statuses {
		data, err := sonic.Marshal(stored)
		if err != nil {
			return fmt.Errorf("failed to marshal status %s: %w", stored.TxHash, err)
		}

		value := data
		op := &boltdb.WriteOperation{
			Bucket: []byte(StatusBucket),
			Key:    []byte(strings.ToLower(stored.TxHash)),
			Value:  &value,
			Op:     boltdb.OpSet,
		}
		if err := batch.Add(op); err != nil {
			return fmt.Errorf("failed to add status %s to batch: %w", stored.TxHash, err)
		}
	}

	if err := batch.Execute(); err != nil {
		log.Error().Err(err).Int("count", len(statuses)).Msg("[lensStorage] FAILED to execute batch")
		return err
	}

	log.Info().Int("count", len(statuses)).Msg("[lensStorage] saved status batch")
	return nil
}

// LoadAllStatuses reads every persisted status; corrupt records are skipped,
// not fatal.
func (s *Storage) LoadAllStatuses() (map[string]*domain.TransactionStatus, error) {
	data, err := s.db.List(StatusBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}

	statuses := make(map[string]*domain.TransactionStatus, len(data))
	failed := 0
	for txHash, value := range data {
		var stored StoredStatus
		if err := sonic.Unmarshal(value, &stored); err != nil {
			log.Error().Str("txHash", txHash).Err(err).Msg("[lensStorage] failed to unmarshal status, skipping")
			failed++
			continue
		}
		if stored.Status == nil {
			failed++
			continue
		}
		statuses[txHash] = stored.Status
	}

	if failed > 0 {
		log.Error().
			Int("total_in_db", len(data)).
			Int("loaded", len(statuses)).
			Int("failed", failed).
			Msg("[lensStorage] status loading completed with errors")
	} else {
		log.Info().
			Int("total_in_db", len(data)).
			Int("loaded", len(statuses)).
			Msg("[lensStorage] status loading completed successfully")
	}

	return statuses, nil
}

// StatusCount returns the number of persisted statuses.
func (s *Storage) StatusCount() (int, error) {
	data, err := s.db.List(StatusBucket)
	if err != nil {
		return 0, err
	}
	return len(data), nil
}
