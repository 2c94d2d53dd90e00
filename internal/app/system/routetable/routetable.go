// Package routetable declares the static mapping from URL paths to views.
//
// A Table is built once at startup from a list of entries and never changes
// afterwards. Paths and names are unique within a table; paths are matched
// by exact string comparison.
package routetable

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Table construction and lookup errors.
var (
	ErrEmptyPath     = errors.New("route path is empty")
	ErrInvalidPath   = errors.New("route path must start with /")
	ErrDuplicatePath = errors.New("duplicate route path")
	ErrEmptyName     = errors.New("route name is empty")
	ErrDuplicateName = errors.New("duplicate route name")
	ErrNilView       = errors.New("route view is nil")
	ErrUnknownRoute  = errors.New("unknown route name")
)

// View renders a page for a route.
//
// Page writes the complete document. Fragment writes only the content region
// and is used when the browser swaps views in place during history navigation.
type View interface {
	Page(w http.ResponseWriter, r *http.Request)
	Fragment(w http.ResponseWriter, r *http.Request)
}

// Entry associates a URL path and a unique name with a view.
// The table holds the view for dispatch only.
type Entry struct {
	Path string
	Name string
	View View
}

// Table is an immutable, validated set of route entries.
type Table struct {
	entries []Entry
	byPath  map[string]int
	byName  map[string]int
}

// New validates entries and returns a frozen Table.
// Entries keep their declaration order.
func New(entries ...Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		byPath:  make(map[string]int, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		if err := validate(e); err != nil {
			return nil, err
		}
		if _, dup := t.byPath[e.Path]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePath, e.Path)
		}
		if _, dup := t.byName[e.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}

		t.byPath[e.Path] = len(t.entries)
		t.byName[e.Name] = len(t.entries)
		t.entries = append(t.entries, e)
	}

	return t, nil
}

// MustNew is like New but panics on an invalid table.
// Use it only for tables declared in code.
func MustNew(entries ...Entry) *Table {
	t, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

func validate(e Entry) error {
	switch {
	case e.Path == "":
		return fmt.Errorf("%w (name %q)", ErrEmptyPath, e.Name)
	case !strings.HasPrefix(e.Path, "/"):
		return fmt.Errorf("%w: %q", ErrInvalidPath, e.Path)
	case strings.TrimSpace(e.Name) == "":
		return fmt.Errorf("%w (path %q)", ErrEmptyName, e.Path)
	case e.View == nil:
		return fmt.Errorf("%w: %q", ErrNilView, e.Name)
	}
	return nil
}

// Lookup returns the entry whose path equals path exactly.
func (t *Table) Lookup(path string) (Entry, bool) {
	i, ok := t.byPath[path]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// ByName returns the entry registered under name.
func (t *Table) ByName(name string) (Entry, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// URLFor returns the path of the named route.
func (t *Table) URLFor(name string) (string, error) {
	e, ok := t.ByName(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}
	return e.Path, nil
}

// Entries returns a copy of the entries in declaration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len reports the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}
