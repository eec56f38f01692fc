package contract

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	lru "github.com/hashicorp/golang-lru"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/vena-network/vena-node/types"
	"github.com/vena-network/vena-node/validators"
)

// DefaultSnapshotCacheSize bounds the in-memory validator set cache.
const DefaultSnapshotCacheSize = 128

var snapshotKeyPrefix = []byte("validator-snapshot-")

// Store layers an in-memory LRU cache and an optional on-disk snapshot
// database over the Controller. Epochs are never cached: validator sets
// at a given block are immutable, the counter is not.
type Store struct {
	controller   *Controller
	contractAddr types.Address
	cache        *lru.Cache
	db           *leveldb.DB
	logger       hclog.Logger
}

// NewStore creates a store over the given controller. dbPath may be empty,
// in which case snapshots are cached in memory only.
func NewStore(
	controller *Controller,
	contractAddr types.Address,
	dbPath string,
	logger hclog.Logger,
) (*Store, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	cache, err := lru.New(DefaultSnapshotCacheSize)
	if err != nil {
		return nil, fmt.Errorf("unable to create snapshot cache: %w", err)
	}

	var db *leveldb.DB

	if dbPath != "" {
		db, err = leveldb.OpenFile(dbPath, nil)
		if err != nil {
			return nil, fmt.Errorf("unable to open snapshot db: %w", err)
		}
	}

	return &Store{
		controller:   controller,
		contractAddr: contractAddr,
		cache:        cache,
		db:           db,
		logger:       logger.Named("validator-store"),
	}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

// GetValidatorsAt returns the validator set at the given block, serving it
// from cache or disk when the block was fetched before. Failures are never
// cached.
func (s *Store) GetValidatorsAt(blockNumber uint64) (validators.Set, error) {
	if cached, ok := s.cache.Get(blockNumber); ok {
		return cached.(validators.Set).Copy(), nil
	}

	if set, ok := s.readSnapshot(blockNumber); ok {
		s.cache.Add(blockNumber, set)

		return set.Copy(), nil
	}

	fetched, err := s.controller.GetValidators(blockNumber, s.contractAddr)
	if err != nil {
		return nil, err
	}

	set := validators.NewSet(fetched...)

	s.cache.Add(blockNumber, set)
	s.writeSnapshot(blockNumber, set)

	return set.Copy(), nil
}

// GetEpochCounterAt returns the epoch counter at the given block, always
// fetched live.
func (s *Store) GetEpochCounterAt(blockNumber uint64) (uint64, error) {
	epoch, err := s.controller.GetEpochCounter(blockNumber, s.contractAddr)
	if err != nil {
		return 0, err
	}

	if !epoch.IsUint64() {
		return 0, fmt.Errorf("%s: %w: counter out of range", getEpochCounterFn.context, ErrCallFailed)
	}

	return epoch.Uint64(), nil
}

func (s *Store) readSnapshot(blockNumber uint64) (validators.Set, bool) {
	if s.db == nil {
		return nil, false
	}

	raw, err := s.db.Get(snapshotKey(blockNumber), nil)
	if err != nil {
		if !errors.Is(err, leveldb.ErrNotFound) {
			s.logger.Error("unable to read validator snapshot", "block", blockNumber, "err", err)
		}

		return nil, false
	}

	set, err := unmarshalSet(raw)
	if err != nil {
		s.logger.Error("corrupt validator snapshot", "block", blockNumber, "err", err)

		return nil, false
	}

	return set, true
}

func (s *Store) writeSnapshot(blockNumber uint64, set validators.Set) {
	if s.db == nil {
		return
	}

	batch := newSnapshotBatch(s.db)
	batch.Put(snapshotKey(blockNumber), marshalSet(set))

	if err := batch.Write(); err != nil {
		// persistence is an optimization; the fetched set is still returned
		s.logger.Error("unable to persist validator snapshot", "block", blockNumber, "err", err)
	}
}

func snapshotKey(blockNumber uint64) []byte {
	key := make([]byte, len(snapshotKeyPrefix)+8)
	copy(key, snapshotKeyPrefix)
	binary.BigEndian.PutUint64(key[len(snapshotKeyPrefix):], blockNumber)

	return key
}

// marshalSet packs the set as fixed width address bytes, order preserved.
func marshalSet(set validators.Set) []byte {
	raw := make([]byte, 0, len(set)*types.AddressLength)
	for _, addr := range set {
		raw = append(raw, addr.Bytes()...)
	}

	return raw
}

func unmarshalSet(raw []byte) (validators.Set, error) {
	if len(raw)%types.AddressLength != 0 {
		return nil, fmt.Errorf("snapshot length %d is not a multiple of %d", len(raw), types.AddressLength)
	}

	set := make(validators.Set, 0, len(raw)/types.AddressLength)
	for i := 0; i < len(raw); i += types.AddressLength {
		set = append(set, types.BytesToAddress(raw[i:i+types.AddressLength]))
	}

	return set, nil
}

type snapshotBatch struct {
	db *leveldb.DB
	b  *leveldb.Batch
}

func newSnapshotBatch(db *leveldb.DB) *snapshotBatch {
	return &snapshotBatch{
		db: db,
		b:  new(leveldb.Batch),
	}
}

func (b *snapshotBatch) Put(k, v []byte) {
	b.b.Put(k, v)
}

func (b *snapshotBatch) Write() error {
	return b.db.Write(b.b, nil)
}
