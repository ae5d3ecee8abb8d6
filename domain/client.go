package domain

import "strings"

// ClientType is the role a client declares at connect time.
// It is advisory only: the relay never trusts it for delivery decisions.
type ClientType string

const (
	ClientMobile    ClientType = "mobile"
	ClientRaspberry ClientType = "raspberry"
	ClientUnknown   ClientType = "unknown"
)

func ParseClientType(s string) ClientType {
	switch ClientType(s) {
	case ClientMobile:
		return ClientMobile
	case ClientRaspberry:
		return ClientRaspberry
	default:
		return ClientUnknown
	}
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
