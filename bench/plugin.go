package bench

import (
	"plugin"

	"github.com/sirupsen/logrus"
)

// Algorithm plugins are native Go shared libraries (buildmode=plugin)
// exporting a versioned table function. The table types are aliases to
// unnamed struct types so a plugin can declare the identical shape without
// importing this package.
//
// v1 entries sort 32-bit signed integer buffers only. v2 entries carry one
// independently-nil-able callable per representation; a nil callable means
// the entry does not support that representation and is skipped, never an
// error.

// AlgoV1 is one v1 plugin table entry.
type AlgoV1 = struct {
	Name   string
	RunI32 func([]int32)
}

// AlgoV2 is one v2 plugin table entry.
type AlgoV2 = struct {
	Name   string
	RunI32 func([]int32)
	RunU32 func([]uint32)
	RunI64 func([]int64)
	RunU64 func([]uint64)
	RunF32 func([]float32)
	RunF64 func([]float64)
}

// Exported symbol names, fixed and versioned.
const (
	SymbolAlgorithmsV1 = "SortbenchAlgorithmsV1"
	SymbolAlgorithmsV2 = "SortbenchAlgorithmsV2"
)

// Plugin is a loaded library handle. It owns the entries it contributed and
// is released exactly once, no later than run completion.
type Plugin interface {
	Path() string
	// Entries returns the plugin's table, v2-normalized.
	Entries() []AlgoV2
	// Close releases the handle's entries. Idempotent; the Go runtime keeps
	// the mapped code resident, so release is a handle-level contract.
	Close()
}

type loadedPlugin struct {
	path   string
	v2     []AlgoV2
	v1     []AlgoV1
	closed bool
}

func (p *loadedPlugin) Path() string { return p.path }

func (p *loadedPlugin) Entries() []AlgoV2 {
	if p.closed {
		return nil
	}
	if len(p.v2) > 0 {
		return p.v2
	}
	out := make([]AlgoV2, 0, len(p.v1))
	for _, a := range p.v1 {
		out = append(out, AlgoV2{Name: a.Name, RunI32: a.RunI32})
	}
	return out
}

func (p *loadedPlugin) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.v2, p.v1 = nil, nil
	logrus.Debugf("closed plugin handle %s", p.path)
}

// openPlugin loads one library and reads its exported tables. Any malformed
// export (missing symbol, wrong type, empty table) leaves the corresponding
// table empty, never an error beyond the advisory log.
func openPlugin(path string) *loadedPlugin {
	lib, err := plugin.Open(path)
	if err != nil {
		logrus.Warnf("plugin %s: open failed: %v", path, err)
		return nil
	}
	p := &loadedPlugin{path: path}

	if sym, err := lib.Lookup(SymbolAlgorithmsV2); err == nil {
		if fn, ok := sym.(func() []AlgoV2); ok {
			p.v2 = fn()
		} else {
			logrus.Warnf("plugin %s: %s has unexpected type", path, SymbolAlgorithmsV2)
		}
	}
	if sym, err := lib.Lookup(SymbolAlgorithmsV1); err == nil {
		if fn, ok := sym.(func() []AlgoV1); ok {
			p.v1 = fn()
		} else {
			logrus.Warnf("plugin %s: %s has unexpected type", path, SymbolAlgorithmsV1)
		}
	}
	return p
}

// entryFor returns the entry's callable for the active representation, or
// nil when the entry does not support it.
func entryFor[T Element](a AlgoV2) SortFunc[T] {
	var zero T
	switch any(zero).(type) {
	case int32:
		if a.RunI32 != nil {
			run := a.RunI32
			return func(v []T) { run(any(v).([]int32)) }
		}
	case uint32:
		if a.RunU32 != nil {
			run := a.RunU32
			return func(v []T) { run(any(v).([]uint32)) }
		}
	case int64:
		if a.RunI64 != nil {
			run := a.RunI64
			return func(v []T) { run(any(v).([]int64)) }
		}
	case uint64:
		if a.RunU64 != nil {
			run := a.RunU64
			return func(v []T) { run(any(v).([]uint64)) }
		}
	case float32:
		if a.RunF32 != nil {
			run := a.RunF32
			return func(v []T) { run(any(v).([]float32)) }
		}
	case float64:
		if a.RunF64 != nil {
			run := a.RunF64
			return func(v []T) { run(any(v).([]float64)) }
		}
	}
	return nil
}

// contributeEntries appends every usable entry for the active representation
// to the registry: v2 entries first, then the v1 table (i32 only) when no
// usable v2 entry was found. Returns how many entries were added.
func contributeEntries[T Element](p *loadedPlugin, regs *[]Algorithm[T]) int {
	added := 0
	for _, a := range p.v2 {
		if a.Name == "" {
			continue
		}
		if run := entryFor[T](a); run != nil {
			*regs = append(*regs, Algorithm[T]{Name: a.Name, Run: run})
			added++
		}
	}
	if added > 0 {
		return added
	}
	for _, a := range p.v1 {
		if a.Name == "" || a.RunI32 == nil {
			continue
		}
		if run := entryFor[T](AlgoV2{Name: a.Name, RunI32: a.RunI32}); run != nil {
			*regs = append(*regs, Algorithm[T]{Name: a.Name, Run: run})
			added++
		}
	}
	return added
}

// loadPluginsInto loads each library and appends its entries for the active
// representation. Handles that contributed at least one entry are returned
// for the caller to retain until run end; the rest are closed immediately.
// Load failures contribute nothing and are never fatal.
func loadPluginsInto[T Element](paths []string, regs *[]Algorithm[T]) []*loadedPlugin {
	var handles []*loadedPlugin
	for _, path := range paths {
		p := openPlugin(path)
		if p == nil {
			continue
		}
		if contributeEntries(p, regs) > 0 {
			handles = append(handles, p)
		} else {
			p.Close()
		}
	}
	return handles
}

func closePlugins(handles []*loadedPlugin) {
	for _, p := range handles {
		p.Close()
	}
}
