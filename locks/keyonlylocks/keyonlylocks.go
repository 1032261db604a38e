package keyonlylocks

import "sync"

// KeyLocks - in-process, non-blocking, key-based locks. Used by the
// submit handlers to reject a duplicate submission of the same report
// while the first one is still being written.
type KeyLocks struct {
	store sync.Map
}

// Acquire takes all keys atomically. On any conflict it rolls back the
// keys it already took and reports false.
func (kl *KeyLocks) Acquire(keys ...string) bool {
	var acquired []string
	for _, key := range keys {
		_, taken := kl.store.LoadOrStore(key, struct{}{})
		if taken {
			for _, k := range acquired {
				kl.store.Delete(k)
			}
			return false
		}
		acquired = append(acquired, key)
	}
	return true
}

// Release drops the given keys.
// Wrap in a deferred call so locks clear even if the handler panics.
func (kl *KeyLocks) Release(keys ...string) {
	for _, key := range keys {
		kl.store.Delete(key)
	}
}
