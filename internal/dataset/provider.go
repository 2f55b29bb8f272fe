package dataset

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

// Provider lazily generates a snapshot on first use and keeps it until
// Regenerate swaps in a new one. Readers never observe a partial snapshot.
type Provider struct {
	mu      sync.Mutex
	opts    Options
	current atomic.Pointer[Dataset]
}

func NewProvider(opts Options) *Provider {
	opts.Rand = nil
	return &Provider{opts: opts}
}

// NewStaticProvider serves a prebuilt snapshot, typically a test fixture.
func NewStaticProvider(ds *Dataset) *Provider {
	p := &Provider{}
	p.current.Store(ds)
	return p
}

func (p *Provider) Get() *Dataset {
	if ds := p.current.Load(); ds != nil {
		return ds
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if ds := p.current.Load(); ds != nil {
		return ds
	}

	ds := Generate(p.opts)
	p.current.Store(ds)
	log.Info().
		Str("dataset_id", ds.ID()).
		Uint64("seed", ds.Seed()).
		Interface("counts", ds.Counts()).
		Msg("dataset initialised")
	return ds
}

// Regenerate replaces the snapshot with one built from seed.
func (p *Provider) Regenerate(seed uint64) *Dataset {
	p.mu.Lock()
	defer p.mu.Unlock()

	opts := p.opts
	opts.Seed = seed
	ds := Generate(opts)
	p.opts.Seed = seed
	p.current.Store(ds)

	log.Info().
		Str("dataset_id", ds.ID()).
		Uint64("seed", seed).
		Msg("dataset regenerated")
	return ds
}
