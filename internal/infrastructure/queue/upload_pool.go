package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ondohomes/marketplace/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// UploadPool pushes photo uploads through a fixed set of workers over one
// shared queue. Jobs finish in whatever order the uploads complete; callers
// that care about sequencing handle it in their Done callback.
type UploadPool struct {
	jobs    chan ports.UploadJob
	media   ports.MediaStore
	workers int
	log     zerolog.Logger
}

// NewUploadPool creates an UploadPool with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewUploadPool(numWorkers int, media ports.MediaStore, log zerolog.Logger) *UploadPool {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &UploadPool{
		jobs:    make(chan ports.UploadJob, channelBuffer),
		media:   media,
		workers: numWorkers,
		log:     log,
	}
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (p *UploadPool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		go p.runWorker(ctx, i)
	}
}

// Enqueue hands a job to the pool. The call is non-blocking up to
// channelBuffer capacity.
func (p *UploadPool) Enqueue(job ports.UploadJob) {
	p.jobs <- job
}

func (p *UploadPool) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			url, err := p.media.Upload(ctx, job.Name, job.Data)
			if err != nil {
				p.log.Error().Err(err).
					Str("filename", job.Name).
					Int("worker_id", id).
					Msg("photo upload failed")
			}
			if job.Done != nil {
				job.Done(url, err)
			}
		}
	}
}
