package state

import (
	"sync"
	"time"

	"hypnosis-landing/internal/content"
)

// ServerState holds the catalog currently being served
type ServerState struct {
	catalog   *content.Catalog
	source    string
	updatedAt time.Time
	mutex     sync.RWMutex
}

var globalState = &ServerState{
	catalog:   content.Default(),
	source:    "built-in",
	updatedAt: time.Now(),
}

// GetCatalog returns the catalog currently served. Callers must not modify it.
func GetCatalog() *content.Catalog {
	globalState.mutex.RLock()
	defer globalState.mutex.RUnlock()
	return globalState.catalog
}

// SetCatalog swaps in a new catalog; source names where it was loaded from
func SetCatalog(c *content.Catalog, source string) {
	globalState.mutex.Lock()
	defer globalState.mutex.Unlock()
	globalState.catalog = c
	globalState.source = source
	globalState.updatedAt = time.Now()
}

// GetContentInfo returns where the current catalog came from and when it was set
func GetContentInfo() (string, time.Time) {
	globalState.mutex.RLock()
	defer globalState.mutex.RUnlock()
	return globalState.source, globalState.updatedAt
}
