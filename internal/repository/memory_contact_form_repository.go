package repository

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/autodrive/catalogo-api/internal/models"
)

// MemoryContactFormRepository stores lead submissions in process memory.
// The submission sequence is owned by the store and never reset. Recent
// submissions are tracked in a last-seen index keyed by source IP so the
// duplicate-window check does not scan the full history.
type MemoryContactFormRepository struct {
	mu       sync.RWMutex
	forms    map[int]models.ContactForm
	lastSeen map[string]time.Time
	seq      int64

	// pruneWindow bounds the lastSeen index; entries older than this are
	// dropped opportunistically on write.
	pruneWindow time.Duration
}

// NewMemoryContactFormRepository constructs an empty store. pruneWindow
// should be at least the duplicate-check window; zero disables pruning.
func NewMemoryContactFormRepository(pruneWindow time.Duration) *MemoryContactFormRepository {
	return &MemoryContactFormRepository{
		forms:       make(map[int]models.ContactForm),
		lastSeen:    make(map[string]time.Time),
		pruneWindow: pruneWindow,
	}
}

// NextID reserves the next value of the store-owned submission sequence.
func (r *MemoryContactFormRepository) NextID(ctx context.Context) (int, error) {
	return int(atomic.AddInt64(&r.seq, 1)), nil
}

// HasRecentFromIP reports whether any submission from ip carries a creation
// timestamp at or after cutoff. The boundary is inclusive: a record created
// exactly at cutoff still counts as recent.
func (r *MemoryContactFormRepository) HasRecentFromIP(ctx context.Context, ip string, cutoff time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	last, ok := r.lastSeen[ip]
	if !ok {
		return false, nil
	}
	return !last.Before(cutoff), nil
}

// Create appends a fully populated submission record. The caller assigns the
// identifier obtained from NextID.
func (r *MemoryContactFormRepository) Create(ctx context.Context, form *models.ContactForm) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forms[form.ID] = *form
	r.lastSeen[form.IPUsuario] = form.DateCreated
	r.prune(form.DateCreated)
	return nil
}

// List returns all stored submissions ordered by identifier.
func (r *MemoryContactFormRepository) List(ctx context.Context) ([]models.ContactForm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	forms := make([]models.ContactForm, 0, len(r.forms))
	for _, f := range r.forms {
		forms = append(forms, f)
	}
	sort.Slice(forms, func(i, j int) bool { return forms[i].ID < forms[j].ID })
	return forms, nil
}

// prune drops last-seen entries that can no longer fall inside any
// duplicate window. Caller holds the write lock.
func (r *MemoryContactFormRepository) prune(now time.Time) {
	if r.pruneWindow <= 0 {
		return
	}
	horizon := now.Add(-r.pruneWindow)
	for ip, seen := range r.lastSeen {
		if seen.Before(horizon) {
			delete(r.lastSeen, ip)
		}
	}
}
