package validate

import "strings"

func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Email checks the general shape of an address: exactly one @ separating a
// non-empty local part from a domain that contains at least one dot.
func Email(value string) bool {
	value = strings.TrimSpace(value)
	at := strings.Index(value, "@")
	if at <= 0 || at != strings.LastIndex(value, "@") {
		return false
	}

	domain := value[at+1:]
	if domain == "" || strings.Contains(value, " ") {
		return false
	}

	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// Phone accepts an optional leading + followed by 8 to 15 digits; spaces
// and dashes between digit groups are ignored.
func Phone(value string) bool {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "+") {
		value = value[1:]
	}
	if value == "" {
		return false
	}

	digits := 0
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-':
		default:
			return false
		}
	}

	return digits >= 8 && digits <= 15
}
