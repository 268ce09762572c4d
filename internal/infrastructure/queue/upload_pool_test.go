package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ondohomes/marketplace/internal/core/ports"
)

type stubMedia struct {
	mu  sync.Mutex
	err error
	n   int
}

func (m *stubMedia) Upload(_ context.Context, filename string, _ []byte) (string, error) {
	m.mu.Lock()
	m.n++
	m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	return "https://cdn.example.com/" + filename, nil
}

func TestUploadPool_DeliversResultToCallback(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	media := &stubMedia{}
	pool := NewUploadPool(2, media, zerolog.Nop())
	pool.Start(ctx)

	done := make(chan string, 1)
	pool.Enqueue(ports.UploadJob{
		Name: "a.jpg",
		Done: func(url string, err error) {
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			done <- url
		},
	})

	select {
	case url := <-done:
		if url != "https://cdn.example.com/a.jpg" {
			t.Errorf("unexpected url %q", url)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("upload never completed")
	}
}

func TestUploadPool_PropagatesUploadError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	media := &stubMedia{err: errors.New("bucket gone")}
	pool := NewUploadPool(1, media, zerolog.Nop())
	pool.Start(ctx)

	done := make(chan error, 1)
	pool.Enqueue(ports.UploadJob{
		Name: "b.jpg",
		Done: func(_ string, err error) { done <- err },
	})

	select {
	case err := <-done:
		if err == nil {
			t.Error("expected the upload error, got nil")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("callback never ran")
	}
}

func TestUploadPool_ProcessesAllJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	media := &stubMedia{}
	pool := NewUploadPool(3, media, zerolog.Nop())
	pool.Start(ctx)

	const jobs = 10
	var wg sync.WaitGroup
	wg.Add(jobs)
	for i := 0; i < jobs; i++ {
		pool.Enqueue(ports.UploadJob{
			Name: "photo.jpg",
			Done: func(string, error) { wg.Done() },
		})
	}

	finished := make(chan struct{})
	go func() { wg.Wait(); close(finished) }()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("pool did not drain the queue")
	}

	media.mu.Lock()
	defer media.mu.Unlock()
	if media.n != jobs {
		t.Errorf("expected %d uploads, got %d", jobs, media.n)
	}
}
