// Package music resolves a track for a mood: an optional Deezer
// lookup with the curated catalog as fallback. Resolution failures are
// soft; the caller degrades to an apologetic chat message.
package music

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"

	"github.com/capycare/capycare/backend/internal/model/mood"
	musicmodel "github.com/capycare/capycare/backend/internal/model/music"
)

// ErrNoTrack reports that neither the lookup nor the catalog produced
// a playable track.
var ErrNoTrack = errors.New("no track available for mood")

// Lookup searches an external provider for mood-matched tracks.
type Lookup interface {
	Search(ctx context.Context, query string) ([]musicmodel.Track, error)
}

// Resolver picks tracks for moods.
type Resolver struct {
	mu      sync.Mutex
	rand    *rand.Rand
	lookup  Lookup // nil disables the external provider
	catalog map[mood.Mood][]musicmodel.Track
}

// NewResolver returns a Resolver over the curated catalog, optionally
// backed by an external lookup.
func NewResolver(lookup Lookup, seed int64) *Resolver {
	return &Resolver{
		rand:    rand.New(rand.NewSource(seed)),
		lookup:  lookup,
		catalog: musicmodel.Catalog(),
	}
}

// Resolve returns a track for the mood. The external lookup is tried
// first when configured; any failure falls back to the catalog.
// Unknown moods use the happy table.
func (r *Resolver) Resolve(ctx context.Context, m mood.Mood) (musicmodel.Track, error) {
	if r.lookup != nil {
		tracks, err := r.lookup.Search(ctx, string(m)+" vibe")
		if err != nil {
			log.Printf("[music] lookup failed for mood=%s, using catalog: %v", m, err)
		} else if len(tracks) > 0 {
			return tracks[r.intn(len(tracks))], nil
		}
	}

	tracks, ok := r.catalog[m]
	if !ok || len(tracks) == 0 {
		tracks = r.catalog[mood.Happy]
	}
	if len(tracks) == 0 {
		return musicmodel.Track{}, ErrNoTrack
	}
	return tracks[r.intn(len(tracks))], nil
}

func (r *Resolver) intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}
