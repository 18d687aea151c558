package predeploys

import (
	"bytes"
	"encoding/json"
	"fmt"

	iradix "github.com/hashicorp/go-immutable-radix"
	"github.com/selendra/selendra/types"
)

// Entry binds a name to its predeployed address
type Entry struct {
	Name     Name
	Hex      string
	Address  types.Address
	Category Category
}

var entries, index = mustLoad(declared)

// mustLoad validates the declared literals and indexes them by name.
// A malformed literal is a transcription error and aborts package load.
func mustLoad(decl []Entry) ([]Entry, *iradix.Tree) {
	if err := validate(decl); err != nil {
		panic(fmt.Sprintf("predeploys: %v", err))
	}

	loaded := make([]Entry, len(decl))
	txn := iradix.New().Txn()

	for i, e := range decl {
		e.Address = types.StringToAddress(e.Hex)
		e.Category = e.Name.Category()

		loaded[i] = e
		txn.Insert([]byte(e.Name), i)
	}

	return loaded, txn.Commit()
}

// Lookup returns the address registered under name
func Lookup(name string) (types.Address, bool) {
	e, ok := get(name)
	if !ok {
		return types.ZeroAddress, false
	}

	return e.Address, true
}

// LookupEntry is Lookup returning the full entry
func LookupEntry(name string) (Entry, bool) {
	return get(name)
}

// MustLookup returns the address of a registered name. It panics when
// name is not one of the Name constants.
func MustLookup(name Name) types.Address {
	e, ok := get(string(name))
	if !ok {
		panic(fmt.Sprintf("predeploys: unknown name %q", name))
	}

	return e.Address
}

// Hex returns the address literal of name as declared, or an empty
// string for an unknown name
func Hex(name Name) string {
	e, ok := get(string(name))
	if !ok {
		return ""
	}

	return e.Hex
}

// Len returns the number of registered names
func Len() int {
	return index.Len()
}

// Names returns every registered name in declaration order
func Names() []Name {
	names := make([]Name, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	return names
}

// Entries returns a copy of every entry in declaration order
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	return out
}

// ByCategory returns the entries of one category in declaration order
func ByCategory(c Category) []Entry {
	var out []Entry

	for _, e := range entries {
		if e.Category == c {
			out = append(out, e)
		}
	}

	return out
}

// WithPrefix returns the entries whose name starts with prefix, sorted
// by name
func WithPrefix(prefix string) []Entry {
	var out []Entry

	index.Root().WalkPrefix([]byte(prefix), func(_ []byte, v interface{}) bool {
		out = append(out, entries[v.(int)])

		return false
	})

	return out
}

func get(name string) (Entry, bool) {
	v, ok := index.Get([]byte(name))
	if !ok {
		return Entry{}, false
	}

	return entries[v.(int)], true
}

// Table is the name to address export handed to deployment and test
// scripts. It marshals to a JSON object in declaration order.
type Table []Entry

// Export returns the full registry as a Table
func Export() Table {
	return Table(Entries())
}

// Map returns the table keyed by name
func (t Table) Map() map[Name]types.Address {
	m := make(map[Name]types.Address, len(t))
	for _, e := range t {
		m[e.Name] = e.Address
	}

	return m
}

func (t Table) MarshalJSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte('{')

	for i, e := range t {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(string(e.Name))
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(e.Hex)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
