package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/klauspost/compress/zstd"

	"colonists/game"
	"colonists/result"
)

var validID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FileStore keeps one zstd compressed JSON snapshot per game in a directory.
type FileStore struct {
	dir string
	mu  sync.RWMutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(id string) (string, error) {
	if !validID.MatchString(id) {
		return "", fmt.Errorf("invalid game id %q", id)
	}
	return filepath.Join(s.dir, id+".json.zst"), nil
}

func (s *FileStore) GetWorld(ctx context.Context, id string) result.Result[game.World] {
	if err := ctx.Err(); err != nil {
		return result.FailWith[game.World](err)
	}
	path, err := s.path(id)
	if err != nil {
		return result.FailWith[game.World](err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, err := ReadSnapshot(path)
	if errors.Is(err, fs.ErrNotExist) {
		return result.FailWith[game.World](fmt.Errorf("%w: %s", ErrNotFound, id))
	}
	if err != nil {
		return result.FailWith[game.World](fmt.Errorf("load game %s: %w", id, err))
	}
	return result.Success(w)
}

func (s *FileStore) CreateGame(ctx context.Context, id string, w game.World) error {
	return s.write(ctx, id, w, false)
}

func (s *FileStore) UpdateGame(ctx context.Context, id string, w game.World) error {
	return s.write(ctx, id, w, true)
}

func (s *FileStore) write(ctx context.Context, id string, w game.World, exists bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = os.Stat(path)
	switch {
	case exists && errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	case !exists && err == nil:
		return fmt.Errorf("%w: %s", ErrExists, id)
	}
	// Write next to the target and rename so readers never see half a file.
	tmp := path + ".tmp"
	if err := WriteSnapshot(tmp, w); err != nil {
		return fmt.Errorf("write game %s: %w", id, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write game %s: %w", id, err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}

// WriteSnapshot writes w to path as zstd compressed JSON.
func WriteSnapshot(path string, w game.World) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(enc)
	if err := json.NewEncoder(bw).Encode(w); err != nil {
		enc.Close()
		return fmt.Errorf("json encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return f.Sync()
}

// ReadSnapshot reads a World written by WriteSnapshot.
func ReadSnapshot(path string) (game.World, error) {
	var w game.World
	f, err := os.Open(path)
	if err != nil {
		return w, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return w, err
	}
	defer dec.Close()

	if err := json.NewDecoder(bufio.NewReader(dec)).Decode(&w); err != nil {
		return w, fmt.Errorf("json decode: %w", err)
	}
	return w, nil
}
