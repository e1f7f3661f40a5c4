package dataset

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"heartscope/domain/core"
	"heartscope/domain/table"
	"heartscope/internal/preprocess"
)

// Cache memoizes the loaded table and its preprocessed derivation, keyed on
// the file's content fingerprint. Repeated page renders share one in-memory
// copy; the file is re-read only when its fingerprint changes. First loads
// racing from concurrent requests collapse into a single read.
//
// Cached tables are shared across renders and must never be mutated by
// callers; every presentation routine is read-only by contract.
type Cache struct {
	reader *Reader
	log    *zap.Logger

	group singleflight.Group

	mu          sync.RWMutex
	fingerprint core.Fingerprint
	raw         *table.Table
	processed   *table.Table
}

// NewCache creates a cache over the dataset at path.
func NewCache(path string, log *zap.Logger) *Cache {
	return &Cache{reader: NewReader(path), log: log}
}

// Raw returns the loaded table as read from disk, unprocessed.
func (c *Cache) Raw() (*table.Table, error) {
	if err := c.revalidate(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.raw, nil
}

// Processed returns the preprocessed table: age groups attached and
// categorical columns tagged.
func (c *Cache) Processed() (*table.Table, error) {
	if err := c.revalidate(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.processed, nil
}

// Fingerprint returns the fingerprint of the currently cached revision,
// loading it if the cache is cold.
func (c *Cache) Fingerprint() (core.Fingerprint, error) {
	if err := c.revalidate(); err != nil {
		return "", err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fingerprint, nil
}

// revalidate loads the table if the cache is cold or the on-disk file
// changed since the cached read.
func (c *Cache) revalidate() error {
	current, err := c.reader.Fingerprint()
	if err != nil {
		return err
	}

	c.mu.RLock()
	fresh := c.raw != nil && c.fingerprint == current
	c.mu.RUnlock()
	if fresh {
		return nil
	}

	_, err, _ = c.group.Do(current.String(), func() (interface{}, error) {
		// Another request may have finished the load while this one waited.
		c.mu.RLock()
		done := c.raw != nil && c.fingerprint == current
		c.mu.RUnlock()
		if done {
			return nil, nil
		}

		raw, err := c.reader.Read()
		if err != nil {
			return nil, err
		}
		processed, err := preprocess.Apply(raw)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.fingerprint = raw.Source
		c.raw = raw
		c.processed = processed
		c.mu.Unlock()

		c.log.Info("dataset loaded",
			zap.String("fingerprint", raw.Source.Short()),
			zap.Int("rows", raw.RowCount()),
			zap.Int("columns", raw.ColumnCount()))
		return nil, nil
	})
	return err
}
