package biguint

// Cmp compares u and v, returning -1, 0, or +1 as u is less than, equal to,
// or greater than v. Comparison is first by length (both are canonical, so
// the longer value is greater), with ties broken by most-significant-word-
// first lexicographic digit comparison.
func (u BigUint) Cmp(v BigUint) int {
	if len(u.digits) != len(v.digits) {
		if len(u.digits) < len(v.digits) {
			return -1
		}
		return 1
	}
	for i := len(u.digits) - 1; i >= 0; i-- {
		a, b := u.digits[i], v.digits[i]
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Eq reports whether u equals v.
func (u BigUint) Eq(v BigUint) bool { return u.Cmp(v) == 0 }

// Lt reports whether u is strictly less than v.
func (u BigUint) Lt(v BigUint) bool { return u.Cmp(v) < 0 }

// Le reports whether u is less than or equal to v.
func (u BigUint) Le(v BigUint) bool { return u.Cmp(v) <= 0 }

// Gt reports whether u is strictly greater than v.
func (u BigUint) Gt(v BigUint) bool { return u.Cmp(v) > 0 }

// Ge reports whether u is greater than or equal to v.
func (u BigUint) Ge(v BigUint) bool { return u.Cmp(v) >= 0 }
