// Package contacts implements the in-memory address book: validated phone
// numbers and birthdays, contact records, and the upcoming-birthday report.
package contacts

// AddressBook stores Records keyed by name. Iteration follows the order in
// which keys were first added; overwriting a key keeps its position.
//
// It is not safe for concurrent use; callers must synchronize externally
// or confine access to a single goroutine (e.g., the shell read loop).
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord stores r under r.Name(), replacing any record with that name.
func (b *AddressBook) AddRecord(r *Record) {
	if _, ok := b.records[r.name]; !ok {
		b.order = append(b.order, r.name)
	}
	b.records[r.name] = r
}

// Find returns the record stored under name, or nil and false on miss.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Lookup is Find with a *NotFoundError on miss.
func (b *AddressBook) Lookup(name string) (*Record, error) {
	r, ok := b.records[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return r, nil
}

// Delete removes the record stored under name. Deleting a missing name is
// a no-op.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, k := range b.order {
		if k == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of stored records.
func (b *AddressBook) Len() int { return len(b.records) }

// Records returns the stored records in iteration order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, b.records[k])
	}
	return out
}
