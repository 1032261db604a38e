package storages

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/sitetools/ops-core/schedjobs"
)

// URLLease - scoped signed-URL holder. The lease re-signs the object URL
// every RefreshCycle while held; Release must be called on view teardown
// so no refresh job leaks.
type URLLease struct {
	store     Store
	scheduler *schedjobs.Scheduler
	jobID     string
	bucketID  string
	object    string

	mu  sync.RWMutex
	url string
}

// WatchSignedURL signs the object URL now and keeps it fresh in the
// background until Release.
func WatchSignedURL(
	ctx context.Context,
	store Store,
	scheduler *schedjobs.Scheduler,
	bucketID string,
	objectName string,
) (*URLLease, error) {
	url, err := store.GetSignedURL(ctx, bucketID, objectName, DefaultSignTTL)
	if err != nil {
		return nil, err
	}
	l := &URLLease{
		store:     store,
		scheduler: scheduler,
		jobID:     fmt.Sprintf("signed-url:%s/%s", bucketID, objectName),
		bucketID:  bucketID,
		object:    objectName,
		url:       url,
	}
	err = scheduler.AddIntervalJob(&schedjobs.IntervalJob{
		ID:    l.jobID,
		Every: RefreshCycle,
		Task:  l.refresh,
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (l *URLLease) refresh() error {
	// background refresh is not tied to any request context
	url, err := l.store.GetSignedURL(context.Background(), l.bucketID, l.object, DefaultSignTTL)
	if err != nil {
		// keep the previous URL; it stays valid until its own TTL runs out
		log.Printf("[WARN] signed url refresh failed for %s/%s: %v", l.bucketID, l.object, err)
		return err
	}
	l.mu.Lock()
	l.url = url
	l.mu.Unlock()
	return nil
}

// URL - the currently valid signed URL.
func (l *URLLease) URL() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.url
}

// Release stops the refresh job. Required on teardown.
func (l *URLLease) Release() {
	l.scheduler.DeleteIntervalJob(l.jobID)
}
