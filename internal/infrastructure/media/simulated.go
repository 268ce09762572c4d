package media

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SimulatedStore stands in for object storage during local development. It
// sleeps for a fixed duration to model the network transfer and hands back a
// stable-looking URL without retaining the bytes.
type SimulatedStore struct {
	delay time.Duration
	log   zerolog.Logger
}

// NewSimulatedStore creates a SimulatedStore with the given per-upload delay.
func NewSimulatedStore(delay time.Duration, log zerolog.Logger) *SimulatedStore {
	return &SimulatedStore{delay: delay, log: log}
}

func (s *SimulatedStore) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	url := fmt.Sprintf("https://storage.ondohomes.example/photos/%s%s", uuid.NewString(), filepath.Ext(filename))
	s.log.Debug().Str("filename", filename).Int("size_bytes", len(data)).Msg("simulated photo upload")
	return url, nil
}
