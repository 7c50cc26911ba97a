package service

// ValidIBAN reports whether iban passes the ISO 13616 mod-97 checksum
func ValidIBAN(iban string) bool {
	if len(iban) < 5 || len(iban) > 34 {
		return false
	}
	return mod97(iban[4:]+iban[:4]) == 1
}

// ValidCreditorID reports whether id is a checksum-valid SEPA creditor
// identifier. The three-character creditor business code (positions 5-7) is
// excluded from the check digit calculation.
func ValidCreditorID(id string) bool {
	if len(id) < 8 {
		return false
	}
	return mod97(id[7:]+id[:4]) == 1
}

// mod97 computes the ISO 7064 remainder of s with letters expanded to their
// two-digit values. Any character outside [0-9A-Z] makes the input invalid.
func mod97(s string) int {
	remainder := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			remainder = (remainder*10 + int(r-'0')) % 97
		case r >= 'A' && r <= 'Z':
			remainder = (remainder*100 + int(r-'A') + 10) % 97
		default:
			return -1
		}
	}
	return remainder
}
