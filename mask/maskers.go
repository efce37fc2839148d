package mask

import (
	"fmt"
	"net/netip"
	"strings"
	"unicode"
)

// MaskType names a known data format with masking rules.
type MaskType string

const (
	MaskSSN   MaskType = "ssn"   // 123-45-6789 -> ***-**-6789
	MaskEmail MaskType = "email" // alice@example.com -> a***@example.com
	MaskPhone MaskType = "phone" // (555) 123-4567 -> (***) ***-4567
	MaskCard  MaskType = "card"  // 4111111111111111 -> ************1111
	MaskIP    MaskType = "ip"    // 192.168.1.100 -> 192.168.xxx.xxx
	MaskUUID  MaskType = "uuid"  // 550e8400-e29b-41d4-a716-446655440000 -> 550e8400-****-****-****-************
	MaskIBAN  MaskType = "iban"  // GB82WEST12345698765432 -> GB82**************5432
	MaskName  MaskType = "name"  // John Smith -> J*** S****
)

// Masker applies content-aware masking.
type Masker interface {
	// Mask returns the masked form of value.
	Mask(value string) string
}

// MaskerFunc adapts a function to Masker.
type MaskerFunc func(value string) string

func (f MaskerFunc) Mask(value string) string { return f(value) }

func stars(s string) string {
	return strings.Repeat("*", len(s))
}

func digitsOf(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// SSNMasker keeps the last four digits of a Social Security Number.
func SSNMasker() Masker {
	return MaskerFunc(func(value string) string {
		d := digitsOf(value)
		if len(d) < 4 {
			return stars(value)
		}
		return "***-**-" + d[len(d)-4:]
	})
}

// EmailMasker keeps the first character of the local part and the domain.
func EmailMasker() Masker {
	return MaskerFunc(func(value string) string {
		at := strings.LastIndex(value, "@")
		if at < 1 {
			return stars(value)
		}
		return value[:1] + "***" + value[at:]
	})
}

// PhoneMasker keeps the last four digits of a phone number.
func PhoneMasker() Masker {
	return MaskerFunc(func(value string) string {
		d := digitsOf(value)
		if len(d) < 4 {
			return stars(value)
		}
		last4 := d[len(d)-4:]
		switch {
		case strings.HasPrefix(value, "(") && len(d) >= 10:
			return "(***) ***-" + last4
		case len(d) >= 10:
			return "***-***-" + last4
		}
		return "***-" + last4
	})
}

// CardMasker keeps the last four digits of a card number and its grouping.
func CardMasker() Masker {
	return MaskerFunc(func(value string) string {
		d := digitsOf(value)
		if len(d) < 4 {
			return stars(value)
		}
		last4 := d[len(d)-4:]
		sep := ""
		switch {
		case strings.Contains(value, " "):
			sep = " "
		case strings.Contains(value, "-"):
			sep = "-"
		default:
			return strings.Repeat("*", len(d)-4) + last4
		}
		groups := make([]string, (len(d)-1)/4, (len(d)-1)/4+1)
		for i := range groups {
			groups[i] = "****"
		}
		return strings.Join(append(groups, last4), sep)
	})
}

// IPMasker keeps the network half of an address: the first two IPv4 octets
// or the first four IPv6 groups, written in full form.
func IPMasker() Masker {
	return MaskerFunc(func(value string) string {
		addr, err := netip.ParseAddr(value)
		if err != nil {
			return stars(value)
		}
		if addr.Is4() {
			b := addr.As4()
			return fmt.Sprintf("%d.%d.xxx.xxx", b[0], b[1])
		}
		b := addr.As16()
		return fmt.Sprintf("%02x%02x:%02x%02x:%02x%02x:%02x%02x:xxxx:xxxx:xxxx:xxxx",
			b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7])
	})
}

// UUIDMasker keeps the first segment of a UUID.
func UUIDMasker() Masker {
	return MaskerFunc(func(value string) string {
		first, _, ok := strings.Cut(value, "-")
		if !ok || strings.Count(value, "-") != 4 {
			return stars(value)
		}
		return first + "-****-****-****-************"
	})
}

// IBANMasker keeps the country code, check digits and last four characters.
func IBANMasker() Masker {
	return MaskerFunc(func(value string) string {
		if len(value) <= 8 {
			return stars(value)
		}
		return value[:4] + strings.Repeat("*", len(value)-8) + value[len(value)-4:]
	})
}

// NameMasker keeps the first letter of each word.
func NameMasker() Masker {
	return MaskerFunc(func(value string) string {
		words := strings.Fields(value)
		for i, w := range words {
			r := []rune(w)
			words[i] = string(r[0]) + strings.Repeat("*", len(r)-1)
		}
		return strings.Join(words, " ")
	})
}

// builtinMaskers returns the default masker registry.
func builtinMaskers() map[MaskType]Masker {
	return map[MaskType]Masker{
		MaskSSN:   SSNMasker(),
		MaskEmail: EmailMasker(),
		MaskPhone: PhoneMasker(),
		MaskCard:  CardMasker(),
		MaskIP:    IPMasker(),
		MaskUUID:  UUIDMasker(),
		MaskIBAN:  IBANMasker(),
		MaskName:  NameMasker(),
	}
}
