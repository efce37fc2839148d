package mask

import (
	"testing"
)

func TestMaskers(t *testing.T) {
	tests := []struct {
		name     string
		masker   Masker
		input    string
		expected string
	}{
		{"ssn", SSNMasker(), "123-45-6789", "***-**-6789"},
		{"ssn digits", SSNMasker(), "123456789", "***-**-6789"},
		{"ssn short", SSNMasker(), "123", "***"},
		{"email", EmailMasker(), "alice@example.com", "a***@example.com"},
		{"email single", EmailMasker(), "a@b.com", "a***@b.com"},
		{"email no at", EmailMasker(), "noatsign", "********"},
		{"phone parens", PhoneMasker(), "(555) 123-4567", "(***) ***-4567"},
		{"phone dashed", PhoneMasker(), "555-123-4567", "***-***-4567"},
		{"phone short", PhoneMasker(), "123-4567", "***-4567"},
		{"phone too short", PhoneMasker(), "123", "***"},
		{"card", CardMasker(), "4111111111111111", "************1111"},
		{"card spaced", CardMasker(), "4111 1111 1111 1111", "**** **** **** 1111"},
		{"card dashed", CardMasker(), "4111-1111-1111-1111", "****-****-****-1111"},
		{"card short", CardMasker(), "123", "***"},
		{"ipv4", IPMasker(), "192.168.1.100", "192.168.xxx.xxx"},
		{"ipv6 full", IPMasker(), "2001:0db8:85a3:0000:0000:8a2e:0370:7334", "2001:0db8:85a3:0000:xxxx:xxxx:xxxx:xxxx"},
		{"ipv6 compressed", IPMasker(), "2001:db8:85a3::8a2e:370:7334", "2001:0db8:85a3:0000:xxxx:xxxx:xxxx:xxxx"},
		{"ipv6 loopback", IPMasker(), "::1", "0000:0000:0000:0000:xxxx:xxxx:xxxx:xxxx"},
		{"ip invalid", IPMasker(), "invalid", "*******"},
		{"uuid", UUIDMasker(), "550e8400-e29b-41d4-a716-446655440000", "550e8400-****-****-****-************"},
		{"uuid invalid", UUIDMasker(), "invalid", "*******"},
		{"iban", IBANMasker(), "GB82WEST12345698765432", "GB82**************5432"},
		{"iban short", IBANMasker(), "SHORT", "*****"},
		{"name", NameMasker(), "John Smith", "J*** S****"},
		{"name three", NameMasker(), "Bob Jones Jr", "B** J**** J*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.masker.Mask(tt.input); got != tt.expected {
				t.Errorf("Mask(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBuiltinMaskers(t *testing.T) {
	maskers := builtinMaskers()

	expectedTypes := []MaskType{
		MaskSSN, MaskEmail, MaskPhone, MaskCard,
		MaskIP, MaskUUID, MaskIBAN, MaskName,
	}

	for _, mt := range expectedTypes {
		if _, ok := maskers[mt]; !ok {
			t.Errorf("builtinMaskers missing %q", mt)
		}
	}
}
