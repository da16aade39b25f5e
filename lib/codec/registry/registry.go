// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

// Package registry looks up DevEvent codecs by format name. It sits
// apart from lib/codec so the wire packages can depend on the codec
// contract without depending on each other.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/nada-devrapid/devrapid/lib/codec"
	"github.com/nada-devrapid/devrapid/lib/codec/avrowire"
	"github.com/nada-devrapid/devrapid/lib/codec/cborwire"
	"github.com/nada-devrapid/devrapid/lib/codec/jsonwire"
)

// Registry maps format names to codecs. Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]codec.Codec
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{codecs: make(map[string]codec.Codec)}
}

// NewRegistry returns a registry holding the built-in codecs: avro,
// json, and cbor.
func NewRegistry() *Registry {
	registry := New()
	for _, c := range []codec.Codec{avrowire.New(), jsonwire.New(), cborwire.New()} {
		if err := registry.Register(c); err != nil {
			panic("registry: " + err.Error())
		}
	}
	return registry
}

// Register adds c under c.Name(). Names are case-sensitive and must be
// unique.
func (r *Registry) Register(c codec.Codec) error {
	name := c.Name()
	if name == "" {
		return fmt.Errorf("codec %T has an empty name", c)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.codecs[name]; exists {
		return fmt.Errorf("codec %q is already registered", name)
	}
	r.codecs[name] = c
	return nil
}

// Replace adds or overwrites the codec registered under c.Name(). The
// CLI uses it to swap in an indented JSON codec.
func (r *Registry) Replace(c codec.Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codecs[c.Name()] = c
}

// Get returns the codec registered under name. The error lists the
// known names.
func (r *Registry) Get(name string) (codec.Codec, error) {
	r.mu.RLock()
	c, ok := r.codecs[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown format %q (known: %s)", name, strings.Join(r.Names(), ", "))
	}
	return c, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.codecs[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
