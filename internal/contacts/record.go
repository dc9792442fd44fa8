package contacts

import (
	"strings"
)

// Record is a single contact: a name, its phone numbers in insertion
// order, and an optional birthday. A Record is not safe for concurrent use.
type Record struct {
	name     string
	phones   []Phone
	birthday Birthday
}

// NewRecord creates an empty Record. The name is stored as given; callers
// that want case-insensitive keys must fold it first.
func NewRecord(name string) (*Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Value: name, Err: ErrEmptyName}
	}
	return &Record{name: name}, nil
}

// Name returns the key the record is stored under.
func (r *Record) Name() string { return r.name }

// Phones returns a copy of the record's phones in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// AddPhone validates raw and appends it. Duplicates are allowed.
func (r *Record) AddPhone(raw string) error {
	p, err := ParsePhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to value. It is a no-op when
// no phone matches.
func (r *Record) RemovePhone(value string) {
	if i := r.indexOf(value); i >= 0 {
		r.phones = append(r.phones[:i], r.phones[i+1:]...)
	}
}

// EditPhone replaces old with updated. updated is validated first, so an
// invalid value leaves the record untouched. A missing old phone is not an
// error; updated is still appended.
func (r *Record) EditPhone(old, updated string) error {
	p, err := ParsePhone(updated)
	if err != nil {
		return err
	}
	r.RemovePhone(old)
	r.phones = append(r.phones, p)
	return nil
}

// FindPhone returns the first phone equal to value.
func (r *Record) FindPhone(value string) (Phone, bool) {
	if i := r.indexOf(value); i >= 0 {
		return r.phones[i], true
	}
	return "", false
}

// SetBirthday replaces the record's birthday. The zero Birthday is
// rejected with ErrInvalidDate.
func (r *Record) SetBirthday(b Birthday) error {
	if b.IsZero() {
		return &ValidationError{Field: "birthday", Value: "", Err: ErrInvalidDate}
	}
	r.birthday = b
	return nil
}

// Birthday returns the record's birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	return r.birthday, !r.birthday.IsZero()
}

// String describes the record for listings, e.g.
// "Contact name: john, phones: 1234567890, birthday: 1990-12-19".
func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString("Contact name: ")
	sb.WriteString(r.name)
	sb.WriteString(", phones: ")
	for i, p := range r.phones {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(p))
	}
	if b, ok := r.Birthday(); ok {
		sb.WriteString(", birthday: ")
		sb.WriteString(b.String())
	}
	return sb.String()
}

func (r *Record) indexOf(value string) int {
	for i, p := range r.phones {
		if string(p) == value {
			return i
		}
	}
	return -1
}
