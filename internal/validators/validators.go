package validators

import (
	"net"
	"regexp"
	"strings"
)

var mobileRe = regexp.MustCompile(`^\d{10}$`)

func IsMobile(mobile string) bool {
	return mobileRe.MatchString(mobile)
}

var pincodeRe = regexp.MustCompile(`^\d{4,6}$`)

func IsPincode(pincode string) bool {
	return pincodeRe.MatchString(pincode)
}

// IsEmailDomainValid checks that the email's domain resolves. Format
// validation is the binding layer's job; this catches typo domains at
// registration time.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
