package mutation

import (
	"context"
	"log"

	"github.com/TheAdijagtap/erpx/internal/readmodel"
)

// Command is one optimistic mutation: a forward patch applied to the
// read model immediately, a remote write against the persistent store,
// and an inverse patch that undoes the forward patch if the write fails.
type Command struct {
	Name    string
	Forward readmodel.Patch
	Inverse readmodel.Patch
	Remote  func(ctx context.Context) error
}

// Loader produces a complete fresh snapshot from the persistent store.
type Loader interface {
	Load(ctx context.Context) (*readmodel.Snapshot, error)
}

// Pipeline runs optimistic mutations against a read model store and
// refreshes it from a loader.
type Pipeline struct {
	store  *readmodel.Store
	loader Loader
}

// NewPipeline creates a mutation pipeline over the given store and loader.
func NewPipeline(store *readmodel.Store, loader Loader) *Pipeline {
	return &Pipeline{store: store, loader: loader}
}

// Store exposes the underlying read model store.
func (p *Pipeline) Store() *readmodel.Store {
	return p.store
}

// Run executes a command: apply the forward patch, attempt the remote
// write, and on failure roll the read model back with the inverse patch
// before returning the error. Readers between the forward patch and a
// rollback may observe the optimistic state; that window is the price of
// responsive reads.
func (p *Pipeline) Run(ctx context.Context, cmd Command) error {
	if cmd.Forward != nil {
		p.store.Apply(cmd.Forward)
	}

	if cmd.Remote == nil {
		return nil
	}

	if err := cmd.Remote(ctx); err != nil {
		if cmd.Inverse != nil {
			p.store.Apply(cmd.Inverse)
		}
		log.Printf("mutation %s failed, rolled back: %v", cmd.Name, err)
		return err
	}
	return nil
}

// Reload fetches a complete snapshot and swaps it in. The current
// snapshot keeps serving reads while the load is in flight; on failure
// it is kept untouched rather than partially overwritten.
func (p *Pipeline) Reload(ctx context.Context) error {
	p.store.SetLoading(true)
	defer p.store.SetLoading(false)

	snap, err := p.loader.Load(ctx)
	if err != nil {
		log.Printf("snapshot reload failed, keeping previous state: %v", err)
		return err
	}
	p.store.ReplaceAll(snap)
	return nil
}
