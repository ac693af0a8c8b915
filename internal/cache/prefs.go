// Package cache provides RAM-first caches backed by asynchronous sqlite
// persistence.
package cache

import (
	"context"

	"github.com/quarterdeckhq/quarterdeck/internal/cache/generic"
	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
)

//go:generate mockgen -source=prefs.go -destination=mocks/prefs.go -package=mocks

// PrefQuerier defines the storage queries required by the preference cache.
// Kept narrow so tests can substitute a gomock implementation.
type PrefQuerier interface {
	// ListSessionPrefs loads every stored preference record.
	ListSessionPrefs(ctx context.Context) ([]*entity.SessionPref, error)

	// UpsertSessionPref inserts or updates a preference record.
	UpsertSessionPref(ctx context.Context, pref *entity.SessionPref) error

	// DeleteSessionPref removes the record for a client.
	DeleteSessionPref(ctx context.Context, clientID string) error
}

// PrefDBOperations implements DatabaseOperations for session preferences.
type PrefDBOperations struct {
	queries PrefQuerier
}

// NewPrefDBOperations creates a new PrefDBOperations instance.
func NewPrefDBOperations(queries PrefQuerier) *PrefDBOperations {
	return &PrefDBOperations{
		queries: queries,
	}
}

// LoadAll loads all preference records from the database.
// Returns a map of client ID -> preference record.
func (p *PrefDBOperations) LoadAll(ctx context.Context) (map[string]*entity.SessionPref, error) {
	prefs, err := p.queries.ListSessionPrefs(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string]*entity.SessionPref, len(prefs))
	for _, pref := range prefs {
		result[pref.ClientID] = pref
	}

	return result, nil
}

// Persist saves a preference record to the database.
func (p *PrefDBOperations) Persist(ctx context.Context, clientID string, pref *entity.SessionPref) error {
	return p.queries.UpsertSessionPref(ctx, pref)
}

// Delete removes a preference record from the database.
func (p *PrefDBOperations) Delete(ctx context.Context, clientID string) error {
	return p.queries.DeleteSessionPref(ctx, clientID)
}

// PrefCache is a specialized cache for per-client console preferences.
// It wraps GenericCache with domain-specific helper methods.
type PrefCache struct {
	*generic.GenericCache[string, *entity.SessionPref]
}

// NewPrefCache creates a new preference cache.
func NewPrefCache(ctx context.Context, queries PrefQuerier) *PrefCache {
	dbOps := NewPrefDBOperations(queries)
	return &PrefCache{
		GenericCache: generic.NewGenericCache(ctx, dbOps),
	}
}

// LastView returns the view the client had active on its previous session.
func (c *PrefCache) LastView(clientID string) (string, bool) {
	pref, ok := c.Get(clientID)
	if !ok || pref == nil {
		return "", false
	}
	return pref.LastView, true
}

// SetLastView remembers the client's active view, creating the record on
// first use.
func (c *PrefCache) SetLastView(clientID, view string) error {
	pref, ok := c.Get(clientID)
	if !ok || pref == nil {
		return c.Set(clientID, entity.NewSessionPref(clientID, view))
	}

	updated := *pref
	updated.Touch(view)
	return c.Set(clientID, &updated)
}

// ForgetClient drops the stored preferences for a client.
func (c *PrefCache) ForgetClient(clientID string) error {
	return c.Delete(clientID)
}
