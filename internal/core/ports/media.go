package ports

import "context"

// MediaStore uploads listing photos and returns a stable reference. Once an
// upload starts it cannot be aborted; callers may only stop observing it.
type MediaStore interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

// UploadJob is one queued photo upload. Done is invoked exactly once from a
// worker goroutine with the resulting reference or the upload error.
type UploadJob struct {
	Name string
	Data []byte
	Done func(url string, err error)
}

// UploadQueue accepts upload jobs for asynchronous processing. Jobs complete
// in no particular order.
type UploadQueue interface {
	Enqueue(job UploadJob)
}
