// Package worker provides background processing for jobs that must not
// slow down the request path.
package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ewilliams-labs/segue/internal/core/ports"
)

// jobTimeout bounds one job; a stuck upstream call must not pin a worker.
const jobTimeout = 30 * time.Second

// JobKind names the work a Job carries.
type JobKind string

const (
	// TrendingWarmup refreshes the trending list so the first reader
	// after startup (or cache expiry) does not pay for it.
	TrendingWarmup JobKind = "trending_warmup"
	// ProfileRecompute re-canonicalizes a stored listening profile
	// against the catalog and stamps it as fresh.
	ProfileRecompute JobKind = "profile_recompute"
)

// Job represents a background task.
type Job struct {
	Kind   JobKind
	UserID string // ProfileRecompute only
}

// Pool manages background workers for async jobs.
type Pool struct {
	catalog  ports.Catalog
	profiles ports.ProfileStore
	jobs     chan Job
	wg       sync.WaitGroup
	log      zerolog.Logger
}

// NewPool creates a worker pool with the given queue size.
func NewPool(catalog ports.Catalog, profiles ports.ProfileStore, queueSize int, log zerolog.Logger) *Pool {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Pool{
		catalog:  catalog,
		profiles: profiles,
		jobs:     make(chan Job, queueSize),
		log:      log.With().Str("component", "worker").Logger(),
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start(workers int) {
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.process(job)
			}
		}()
	}
}

// Stop closes the queue and waits for in-flight jobs to finish. No
// Submit may follow Stop.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// Submit queues a job without blocking. A full queue drops the job.
func (p *Pool) Submit(job Job) {
	select {
	case p.jobs <- job:
	default:
		p.log.Warn().Str("kind", string(job.Kind)).Str("user_id", job.UserID).Msg("queue full, dropping job")
	}
}

func (p *Pool) process(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	switch job.Kind {
	case TrendingWarmup:
		songs, _, err := p.catalog.Trending(ctx)
		if err != nil {
			p.log.Warn().Err(err).Msg("trending warmup failed")
			return
		}
		p.log.Debug().Int("songs", len(songs)).Msg("trending list warmed")
	case ProfileRecompute:
		p.recomputeProfile(ctx, job.UserID)
	default:
		p.log.Warn().Str("kind", string(job.Kind)).Msg("unknown job kind")
	}
}

// recomputeProfile refreshes a stored profile in place: favorite artists
// are re-resolved to their catalog casing and the profile is re-stamped.
// A missing profile is not an error; there is simply nothing to do.
func (p *Pool) recomputeProfile(ctx context.Context, userID string) {
	profile, err := p.profiles.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, ports.ErrProfileNotFound) {
			p.log.Warn().Err(err).Str("user_id", userID).Msg("profile load failed")
		}
		return
	}

	for i, name := range profile.FavoriteArtists {
		match, err := p.catalog.FindArtist(ctx, name)
		if err != nil || match == nil {
			continue
		}
		if match.Name != name {
			profile.FavoriteArtists[i] = match.Name
		}
	}

	profile.UpdatedAt = time.Now()
	if err := p.profiles.Put(ctx, *profile); err != nil {
		p.log.Warn().Err(err).Str("user_id", userID).Msg("profile save failed")
		return
	}
	p.log.Debug().Str("user_id", userID).Msg("profile recomputed")
}
