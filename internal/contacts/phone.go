package contacts

// phoneDigits is the exact length of a valid phone number.
const phoneDigits = 10

// Phone is a validated phone number of exactly ten decimal digits.
type Phone string

// ParsePhone validates raw and returns it as a Phone.
// No normalization is applied: separators, spaces, and a leading "+"
// are all rejected.
func ParsePhone(raw string) (Phone, error) {
	if len(raw) != phoneDigits {
		return "", &ValidationError{Field: "phone", Value: raw, Err: ErrInvalidPhone}
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return "", &ValidationError{Field: "phone", Value: raw, Err: ErrInvalidPhone}
		}
	}
	return Phone(raw), nil
}

func (p Phone) String() string { return string(p) }
