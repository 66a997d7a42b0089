package auth

import "sync"

// Revocations tracks tokens invalidated by logout. The set lives only in
// process memory: a restart forgets it, and with it every session the
// tokens belonged to, so nothing is ever auto-restored.
type Revocations struct {
	mu      sync.RWMutex
	revoked map[string]struct{}
}

// NewRevocations builds an empty revocation set.
func NewRevocations() *Revocations {
	return &Revocations{revoked: make(map[string]struct{})}
}

// Revoke marks a token id as dead. Revoking the same id twice is fine.
func (r *Revocations) Revoke(tokenID string) {
	if tokenID == "" {
		return
	}
	r.mu.Lock()
	r.revoked[tokenID] = struct{}{}
	r.mu.Unlock()
}

// IsRevoked reports whether the token id has been logged out.
func (r *Revocations) IsRevoked(tokenID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.revoked[tokenID]
	return ok
}
