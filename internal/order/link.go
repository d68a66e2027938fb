package order

import "strings"

const whatsAppBaseURL = "https://wa.me/"

// WhatsAppLink builds a click-to-chat link to number prefilled with text
func WhatsAppLink(number, text string) string {
	return whatsAppBaseURL + number + "?text=" + EncodeURIComponent(text)
}

// EncodeURIComponent percent-encodes s the way browsers do for a URI
// component: only letters, digits and -_.!~*'() are left as is, and spaces
// become %20 rather than "+".
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
