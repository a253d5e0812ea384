// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a backend. It returns an error wrapping ErrUnavailable
// when the backend cannot run here, for example without a GPU.
type Factory func() (Backend, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[Kind]Factory)
)

// Register makes a backend kind available to New. It is meant to be called
// from init in backend packages. Register panics if factory is nil or the
// kind is already registered.
func Register(kind Kind, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("render: Register factory is nil")
	}
	if _, dup := factories[kind]; dup {
		panic("render: Register called twice for " + kind.String())
	}
	factories[kind] = factory
}

// Unregister removes a backend kind. It is mostly useful in tests.
func Unregister(kind Kind) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, kind)
}

// New creates a backend of the given kind.
func New(kind Kind) (Backend, error) {
	registryMu.RLock()
	factory, ok := factories[kind]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s not registered (forgotten import?)", ErrUnavailable, kind)
	}
	b, err := factory()
	if err != nil {
		return nil, fmt.Errorf("render: %s: %w", kind, err)
	}
	return b, nil
}

// Kinds returns the registered kinds in ascending order.
func Kinds() []Kind {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]Kind, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// IsRegistered reports whether kind has a registered factory.
func IsRegistered(kind Kind) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[kind]
	return ok
}
