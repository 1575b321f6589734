package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-license-keeper/internal/logger"
	"github.com/MKhiriev/go-license-keeper/internal/utils"
	"github.com/MKhiriev/go-license-keeper/models"
)

// DefaultCacheTTL is used by Set when no positive ttl is given.
const DefaultCacheTTL = 24 * time.Hour

const cacheFilePerm = 0o600

// FileCache is a [Cache] keeping one JSON file per entry in a directory it
// owns. File names are derived from keys with [utils.CacheFileName].
type FileCache struct {
	dir        string
	defaultTTL time.Duration
	now        func() time.Time

	mu     sync.Mutex
	logger *logger.Logger
}

// NewFileCache creates dir if needed and returns a cache rooted there.
// A non-positive defaultTTL selects [DefaultCacheTTL].
func NewFileCache(dir string, defaultTTL time.Duration, log *logger.Logger) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("error creating cache directory: %w", err)
	}
	if defaultTTL <= 0 {
		defaultTTL = DefaultCacheTTL
	}

	return &FileCache{
		dir:        dir,
		defaultTTL: defaultTTL,
		now:        time.Now,
		logger:     log.WithComponent("cache"),
	}, nil
}

func (c *FileCache) Set(key string, value any, ttl time.Duration) error {
	if key == "" {
		return ErrEmptyCacheKey
	}
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding cache value: %w", err)
	}

	entry, err := json.Marshal(models.CacheEntry{
		ExpiresAt: expiryUnix(c.now().Add(ttl)),
		Data:      data,
	})
	if err != nil {
		return fmt.Errorf("error encoding cache entry: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err = utils.WriteFileAtomic(c.path(key), entry, cacheFilePerm); err != nil {
		return fmt.Errorf("error writing cache entry: %w", err)
	}
	return nil
}

func (c *FileCache) Get(key string, out any) (bool, error) {
	if key == "" {
		return false, ErrEmptyCacheKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	path := c.path(key)
	entry, ok := c.readEntry(path)
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(entry.Data, out); err != nil {
		c.logger.Warn().Err(err).Str("func", "FileCache.Get").Msg("cache entry does not match requested type, dropping")
		c.remove(path)
		return false, nil
	}

	return true, nil
}

func (c *FileCache) Delete(key string) error {
	if key == "" {
		return ErrEmptyCacheKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.Remove(c.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error deleting cache entry: %w", err)
	}
	return nil
}

func (c *FileCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	files, err := c.entryFiles()
	if err != nil {
		return err
	}

	for _, path := range files {
		if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error clearing cache: %w", err)
		}
	}
	return nil
}

func (c *FileCache) Prune() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	files, err := c.entryFiles()
	if err != nil {
		return 0, err
	}

	before := len(files)
	remaining := 0
	for _, path := range files {
		// readEntry drops expired and unreadable files
		if _, ok := c.readEntry(path); ok {
			remaining++
		}
	}

	removed := before - remaining
	c.logger.Debug().Str("func", "FileCache.Prune").Int("removed", removed).Msg("cache pruned")
	return removed, nil
}

// readEntry returns the live entry stored at path. Expired or unreadable
// entries are removed and reported as absent.
func (c *FileCache) readEntry(path string) (models.CacheEntry, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.Warn().Err(err).Str("func", "FileCache.readEntry").Str("path", path).Msg("unreadable cache entry, dropping")
			c.remove(path)
		}
		return models.CacheEntry{}, false
	}

	var entry models.CacheEntry
	if err = json.Unmarshal(data, &entry); err != nil {
		c.logger.Warn().Err(err).Str("func", "FileCache.readEntry").Str("path", path).Msg("corrupt cache entry, dropping")
		c.remove(path)
		return models.CacheEntry{}, false
	}

	if c.now().Unix() >= entry.ExpiresAt {
		c.remove(path)
		return models.CacheEntry{}, false
	}

	return entry, true
}

// expiryUnix rounds t up to whole seconds so an entry never expires before
// its ttl has elapsed.
func expiryUnix(t time.Time) int64 {
	sec := t.Unix()
	if t.Nanosecond() > 0 {
		sec++
	}
	return sec
}

func (c *FileCache) entryFiles() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("error listing cache directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(c.dir, e.Name()))
	}
	return files, nil
}

func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, utils.CacheFileName(key))
}

func (c *FileCache) remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		c.logger.Err(err).Str("func", "FileCache.remove").Str("path", path).Msg("cannot remove cache entry")
	}
}
