package tagbridge

import (
	"sort"
	"sync"

	"github.com/deluan/tagbridge/tagfile"
)

// Named opener registry. Backend packages register themselves during
// initialization so tools can select a tag library by name without linking
// decisions in this package.

var (
	openersMu sync.RWMutex
	openers   = make(map[string]tagfile.Opener)
)

// RegisterOpener registers a named tag-library backend. Registering the
// same name twice overwrites the earlier entry.
func RegisterOpener(name string, o tagfile.Opener) {
	openersMu.Lock()
	defer openersMu.Unlock()
	openers[name] = o
}

// Opener returns the backend registered under name, or nil.
func Opener(name string) tagfile.Opener {
	openersMu.RLock()
	defer openersMu.RUnlock()
	return openers[name]
}

// Openers returns the registered backend names, sorted.
func Openers() []string {
	openersMu.RLock()
	defer openersMu.RUnlock()
	names := make([]string, 0, len(openers))
	for name := range openers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
