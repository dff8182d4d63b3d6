// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"context"
	"sync"
)

// MemoryRepository keeps progress in process memory. Everything is lost
// when the process exits.
type MemoryRepository struct {
	mu      sync.RWMutex
	byManga map[string]ReadingProgress
	order   []string
}

// NewMemoryRepository creates an empty in-memory store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byManga: make(map[string]ReadingProgress)}
}

// Find implements [Repository].
func (repository *MemoryRepository) Find(_ context.Context, mangaID string) (*ReadingProgress, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	progress, ok := repository.byManga[mangaID]
	if !ok {
		return nil, ErrProgressNotFound
	}
	return &progress, nil
}

// FindMany implements [Repository].
func (repository *MemoryRepository) FindMany(_ context.Context, mangaIDs []string) (map[string]*ReadingProgress, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	result := make(map[string]*ReadingProgress)
	for _, mangaID := range mangaIDs {
		if progress, ok := repository.byManga[mangaID]; ok {
			result[mangaID] = &progress
		}
	}
	return result, nil
}

// Upsert implements [Repository].
func (repository *MemoryRepository) Upsert(_ context.Context, progress *ReadingProgress) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.byManga[progress.MangaID]; !exists {
		repository.order = append(repository.order, progress.MangaID)
	}
	repository.byManga[progress.MangaID] = *progress
	return nil
}

// List implements [Repository].
func (repository *MemoryRepository) List(_ context.Context) ([]*ReadingProgress, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	result := make([]*ReadingProgress, 0, len(repository.order))
	for _, mangaID := range repository.order {
		progress := repository.byManga[mangaID]
		result = append(result, &progress)
	}
	return result, nil
}

// Ping implements [Repository]. Memory is always reachable.
func (repository *MemoryRepository) Ping(context.Context) error {
	return nil
}
