package vault

import (
	"context"
	"errors"
	"sync"
)

// memRepo is an in-memory Repository that can be told to fail.
type memRepo struct {
	mu      sync.Mutex
	doc     *Document
	saves   int
	saveErr error
	loadErr error
}

func (r *memRepo) Load(context.Context) (*Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.doc == nil {
		return NewDocument(), nil
	}
	return r.doc.Clone(), nil
}

func (r *memRepo) Save(_ context.Context, d *Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.doc = d.Clone()
	return nil
}

func (r *memRepo) fail(err error) {
	r.mu.Lock()
	r.saveErr = err
	r.mu.Unlock()
}

var errDiskFull = errors.New("disk full")
