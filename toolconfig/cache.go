package toolconfig

import (
	"time"

	"github.com/sirupsen/logrus"
)

const (
	cacheTtl        = time.Minute * 120
	maxCacheEntries = 1024
)

type ResultCacheEntry struct {
	Input     string
	Output    string
	FetchedAt time.Time
}

func (p *PipelineConfig) ProbeCache(input string) (*ResultCacheEntry, bool) {
	if p.NoCache {
		return nil, false
	}
	p.cacheMu.Lock()
	defer p.cacheMu.Unlock()

	entry, ok := p.cache[input]
	if ok && time.Since(entry.FetchedAt) > cacheTtl {
		delete(p.cache, input)
		ok = false
	}
	if ok {
		logrus.WithFields(p.LogrusFieldsWithAction("probe_cache")).Debug("Returned from cache")
	}
	return entry, ok
}

func (p *PipelineConfig) MbSaveToCache(input, output string) {
	if p.NoCache {
		return
	}
	p.cacheMu.Lock()
	defer p.cacheMu.Unlock()

	if _, ok := p.cache[input]; !ok && len(p.cache) >= maxCacheEntries {
		p.evictLocked()
	}

	p.cache[input] = &ResultCacheEntry{
		Input:     input,
		Output:    output,
		FetchedAt: time.Now(),
	}

	logrus.WithFields(p.LogrusFieldsWithAction("save_to_cache")).Debug("Saved to cache")
}

// evictLocked drops expired entries, or the oldest one if none expired.
func (p *PipelineConfig) evictLocked() {
	var oldestKey string
	var oldest time.Time
	removed := 0
	for k, entry := range p.cache {
		if time.Since(entry.FetchedAt) > cacheTtl {
			delete(p.cache, k)
			removed++
			continue
		}
		if oldest.IsZero() || entry.FetchedAt.Before(oldest) {
			oldest = entry.FetchedAt
			oldestKey = k
		}
	}
	if removed == 0 && !oldest.IsZero() {
		delete(p.cache, oldestKey)
	}
}

func (p *PipelineConfig) CacheSize() int {
	p.cacheMu.Lock()
	defer p.cacheMu.Unlock()
	return len(p.cache)
}
