package storage

import (
	"context"
	"fmt"
	"sync"

	"colonists/game"
	"colonists/result"
)

type Memory struct {
	mu     sync.RWMutex
	worlds map[string]game.World
}

func NewMemory() *Memory {
	return &Memory{worlds: map[string]game.World{}}
}

func (m *Memory) GetWorld(ctx context.Context, id string) result.Result[game.World] {
	if err := ctx.Err(); err != nil {
		return result.FailWith[game.World](err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.worlds[id]
	if !ok {
		return result.FailWith[game.World](fmt.Errorf("%w: %s", ErrNotFound, id))
	}
	return result.Success(w.Copy())
}

func (m *Memory) CreateGame(ctx context.Context, id string, w game.World) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.worlds[id]; ok {
		return fmt.Errorf("%w: %s", ErrExists, id)
	}
	m.worlds[id] = w.Copy()
	return nil
}

func (m *Memory) UpdateGame(ctx context.Context, id string, w game.World) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.worlds[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	m.worlds[id] = w.Copy()
	return nil
}

func (m *Memory) Close() error {
	return nil
}
