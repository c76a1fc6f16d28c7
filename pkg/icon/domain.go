package icon

import (
	"net"
	"strings"
)

// twoLabelTLDs lists registries where the effective TLD spans two labels,
// so the registrable domain keeps three
var twoLabelTLDs = map[string]struct{}{
	"co.uk": {}, "org.uk": {}, "me.uk": {}, "gov.uk": {}, "ac.uk": {},
	"co.jp": {}, "or.jp": {}, "ne.jp": {}, "ac.jp": {}, "go.jp": {},
	"com.au": {}, "net.au": {}, "org.au": {}, "edu.au": {}, "gov.au": {},
	"co.nz": {}, "org.nz": {}, "net.nz": {},
	"com.br": {}, "net.br": {}, "org.br": {},
	"co.in": {}, "net.in": {}, "org.in": {},
	"co.za": {}, "org.za": {},
	"com.mx": {}, "org.mx": {},
	"co.kr": {}, "or.kr": {},
	"com.tw": {}, "org.tw": {},
	"com.cn": {}, "net.cn": {}, "org.cn": {},
	"com.hk": {}, "com.sg": {}, "com.my": {}, "com.ar": {}, "com.tr": {},
	"co.il": {}, "co.th": {}, "co.id": {},
}

// StripDomain reduces a hostname to its registrable domain: two labels
// normally, three when the TLD itself is two labels (co.uk and friends).
// IP literals pass through unchanged.
func StripDomain(host string) string {
	host = strings.ToLower(strings.TrimSuffix(host, "."))

	if net.ParseIP(host) != nil {
		return host
	}

	labels := strings.Split(host, ".")
	if len(labels) <= 2 {
		return host
	}

	tld := strings.Join(labels[len(labels)-2:], ".")
	if _, ok := twoLabelTLDs[tld]; ok {
		return strings.Join(labels[len(labels)-3:], ".")
	}
	return strings.Join(labels[len(labels)-2:], ".")
}
