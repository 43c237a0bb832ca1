package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/hubdoc/hub"
	"github.com/erraggy/hubdoc/internal/options"
	"github.com/erraggy/hubdoc/loader"
)

// defaultContentPackage is the import path given to inline source.
const defaultContentPackage = "example.com/hubs"

// sourceInput represents the two ways hub packages can be provided to a tool.
// Exactly one of Dir or Content must be set.
type sourceInput struct {
	Dir      string   `json:"dir,omitempty"      jsonschema:"Directory of a Go module containing annotated hub packages"`
	Patterns []string `json:"patterns,omitempty" jsonschema:"Package patterns relative to dir (default ./...)"`
	Content  string   `json:"content,omitempty"  jsonschema:"Inline Go source of one hub package. It may import only the standard library."`
	Package  string   `json:"package,omitempty"  jsonschema:"Import path for inline content (default example.com/hubs)"`
}

// cacheEntry holds loaded modules with LRU ordering and TTL expiry.
type cacheEntry struct {
	modules   []hub.Module
	insertAt  time.Time
	expiresAt time.Time
}

// moduleCacheStore provides a session-scoped cache for loaded hub modules.
// Directory inputs are keyed by (absoluteDir, patterns, newest .go mtime).
// Content inputs are keyed by a SHA-256 hash of package path and source.
type moduleCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var moduleCache = &moduleCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns cached modules. Expired entries are lazily removed.
func (c *moduleCacheStore) get(key string) ([]hub.Module, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	// Touch entry for LRU.
	e.insertAt = time.Now()
	return e.modules, true
}

// putWithTTL stores modules with a specific TTL, evicting the oldest entry if at capacity.
func (c *moduleCacheStore) putWithTTL(key string, modules []hub.Module, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{modules: modules, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *moduleCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes expired entries.
// Only the first call spawns a sweeper. It stops when ctx is cancelled.
func (c *moduleCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *moduleCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *moduleCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (s sourceInput) patterns() []string {
	if len(s.Patterns) == 0 {
		return []string{"./..."}
	}
	return s.Patterns
}

func (s sourceInput) contentPackage() string {
	if s.Package == "" {
		return defaultContentPackage
	}
	return s.Package
}

// makeCacheKey creates a cache key for the given source input, or "" when
// the input cannot be keyed.
func makeCacheKey(s sourceInput) string {
	switch {
	case s.Content != "":
		h := sha256.New()
		h.Write([]byte(s.contentPackage()))
		h.Write([]byte{0})
		h.Write([]byte(s.Content))
		return "content:" + hex.EncodeToString(h.Sum(nil))
	case s.Dir != "":
		absDir, err := filepath.Abs(s.Dir)
		if err != nil {
			return ""
		}
		mod, err := newestGoFile(absDir)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("dir:%s:%s:%d", absDir, strings.Join(s.patterns(), ","), mod.UnixNano())
	default:
		return ""
	}
}

// newestGoFile returns the latest modification time of any .go, go.mod or
// go.sum file under dir, skipping hidden directories and vendor.
func newestGoFile(dir string) (time.Time, error) {
	var newest time.Time
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if p != dir && (strings.HasPrefix(name, ".") || name == "vendor") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".go") && name != "go.mod" && name != "go.sum" {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.ModTime().After(newest) {
			newest = info.ModTime()
		}
		return nil
	})
	return newest, err
}

// resolve loads hub modules from whichever input was provided, using the
// cache for both directory and content inputs.
func (s sourceInput) resolve(ctx context.Context) ([]hub.Module, error) {
	if err := options.ExactlyOne("source",
		options.Source{Name: "dir", Set: s.Dir != ""},
		options.Source{Name: "content", Set: s.Content != ""},
	); err != nil {
		return nil, err
	}

	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use dir input instead, or set %sMAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize, envPrefix)
	}

	var key string
	ttl := cfg.CacheContentTTL
	if cfg.CacheEnabled {
		key = makeCacheKey(s)
		if s.Dir != "" {
			ttl = cfg.CacheDirTTL
		}
	}
	if key != "" {
		if cached, ok := moduleCache.get(key); ok {
			return cached, nil
		}
	}

	modules, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if key != "" {
		moduleCache.putWithTTL(key, modules, ttl)
	}
	return modules, nil
}

func (s sourceInput) load(ctx context.Context) ([]hub.Module, error) {
	if s.Content != "" {
		pkg := s.contentPackage()
		parsed, err := loader.ParseSource(pkg, map[string]string{path.Base(pkg) + ".go": s.Content})
		if err != nil {
			return nil, err
		}
		m, err := loader.FromPackage(parsed)
		if err != nil {
			return nil, err
		}
		return []hub.Module{m}, nil
	}

	if _, err := os.Stat(s.Dir); err != nil {
		return nil, err
	}
	return loader.Load(ctx, loader.Config{Dir: s.Dir}, s.patterns()...)
}
