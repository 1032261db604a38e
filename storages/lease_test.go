package storages

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitetools/ops-core/schedjobs"
)

type fakeStore struct {
	signCount int
}

func (f *fakeStore) Init() error { return nil }

func (f *fakeStore) ListObjects(ctx context.Context, bucketID string) ([]ObjectRef, error) {
	return nil, nil
}

func (f *fakeStore) GetSignedURL(ctx context.Context, bucketID, objectName string, ttl time.Duration) (string, error) {
	f.signCount++
	return fmt.Sprintf("https://signed.example/%s/%s?v=%d", bucketID, objectName, f.signCount), nil
}

func (f *fakeStore) Upload(ctx context.Context, bucketID, objectName string, data []byte, contentType string) error {
	return nil
}

func (f *fakeStore) Remove(ctx context.Context, bucketID, objectName string) error { return nil }

func (f *fakeStore) Download(ctx context.Context, bucketID, objectName string) ([]byte, error) {
	return nil, nil
}

func TestWatchSignedURLRefreshes(t *testing.T) {
	store := &fakeStore{}
	scheduler := schedjobs.NewScheduler(context.Background())

	lease, err := WatchSignedURL(context.Background(), store, scheduler, "logos", "acme.png")
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example/logos/acme.png?v=1", lease.URL())

	// refresh fires once the cycle elapses
	scheduler.RunDue(time.Now().Add(RefreshCycle + time.Second))
	assert.Eventually(t, func() bool {
		return lease.URL() == "https://signed.example/logos/acme.png?v=2"
	}, time.Second, 10*time.Millisecond)
}

func TestLeaseReleaseStopsRefresh(t *testing.T) {
	store := &fakeStore{}
	scheduler := schedjobs.NewScheduler(context.Background())

	lease, err := WatchSignedURL(context.Background(), store, scheduler, "docs", "r-0001.pdf")
	require.NoError(t, err)
	require.Len(t, scheduler.IntervalJobIDs(), 1)

	lease.Release()
	assert.Empty(t, scheduler.IntervalJobIDs())

	before := lease.URL()
	scheduler.RunDue(time.Now().Add(2 * RefreshCycle))
	assert.Equal(t, before, lease.URL())
}
