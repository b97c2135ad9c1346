package plugins

// Well-known group names.
const (
	// MixinGroup is the fixed group mixin aliases are looked up in.
	MixinGroup = "mixins"
	// ShortcutGroup holds the REPL shortcut bindings.
	ShortcutGroup = "shortcuts"
)

// Record binds a short alias name to a full reference string.
type Record struct {
	Name  string `toml:"name" yaml:"name"`
	Value string `toml:"value" yaml:"value"`
}

// Table maps group names to ordered record sequences.
type Table map[string][]Record

// Group returns the records of a group and whether the group exists.
func (t Table) Group(group string) ([]Record, bool) {
	recs, ok := t[group]
	return recs, ok
}

// Find returns the first record in a group whose name matches.
func (t Table) Find(group, name string) (Record, bool) {
	for _, rec := range t[group] {
		if rec.Name == name {
			return rec, true
		}
	}
	return Record{}, false
}

// FindByValue returns the first record in a group whose value matches.
func (t Table) FindByValue(group, value string) (Record, bool) {
	for _, rec := range t[group] {
		if rec.Value == value {
			return rec, true
		}
	}
	return Record{}, false
}

// Add appends a record to a group, creating the group if needed.
func (t Table) Add(group string, rec Record) {
	t[group] = append(t[group], rec)
}

// Merge appends all records from other into the receiver, preserving the
// order of both tables. Later sources extend groups rather than replacing
// them.
func (t Table) Merge(other Table) {
	for group, recs := range other {
		t[group] = append(t[group], recs...)
	}
}
