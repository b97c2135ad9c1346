// Package testutil provides shared fixtures for registry, resolver, and
// app tests.
package testutil

import (
	"bytes"
	"sync"

	"github.com/jgrey4296/dejavu/internal/plugins"
	"github.com/jgrey4296/dejavu/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SampleTable returns a plugin table with the groups most tests need.
func SampleTable() plugins.Table {
	return plugins.Table{
		"codegen": {
			{Name: "gantt", Value: "dejavu.tex:Gantt"},
			{Name: "draw", Value: "dejavu.geom:DefaultDrawSettings"},
		},
		plugins.MixinGroup: {
			{Name: "tikz", Value: "dejavu.tex:Tikz"},
			{Name: "figure", Value: "dejavu.tex:Figure"},
		},
		plugins.ShortcutGroup: {
			{Name: "r", Value: "resolve"},
			{Name: "a", Value: "aliases"},
			{Name: "s", Value: "shortcuts"},
		},
	}
}

// CountingModule registers a lazy namespace whose init function counts how
// many times it ran, standing in for an import side-effect sentinel.
type CountingModule struct {
	Module  string
	Symbols map[string]any
	Loads   int
}

// Register implements registry.Module.
func (m *CountingModule) Register(r *registry.Registry) {
	r.RegisterLazy(m.Module, func() (map[string]any, error) {
		m.Loads++
		return m.Symbols, nil
	})
}

// StaticEntryPoint is a canned coderef.EntryPoint.
type StaticEntryPoint struct {
	EPName string
	Target any
	Err    error
}

// Name implements coderef.EntryPoint.
func (e *StaticEntryPoint) Name() string { return e.EPName }

// Load implements coderef.EntryPoint.
func (e *StaticEntryPoint) Load() (any, error) {
	if e.Err != nil {
		return nil, e.Err
	}
	return e.Target, nil
}
