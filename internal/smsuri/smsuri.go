// Package smsuri builds sms: URIs that prefill recipients and body text in
// the device's messaging app.
package smsuri

import (
	"strings"

	"github.com/aniladanir/qr-sms-service/internal/codec"
	"github.com/aniladanir/qr-sms-service/internal/domain"
)

// BuildAll returns a single URI addressed to every phone number.
// Only iOS needs the addresses= form for multiple recipients.
func BuildAll(phones domain.PhoneList, msg string, platform domain.Platform) string {
	all := strings.Join(phones, ",")
	body := codec.Quote(msg)

	if platform == domain.PlatformIOS {
		return "sms:/open?addresses=" + all + "&body=" + body
	}
	return "sms:" + all + "?body=" + body
}

// BuildOne returns the URI for a single recipient. The shape is the same on
// every platform.
func BuildOne(phone, msg string) string {
	return "sms:" + phone + "?body=" + codec.Quote(msg)
}

// DetectPlatform guesses the platform from a User-Agent header. Anything that
// does not identify as an iPhone gets the Android URI shape.
func DetectPlatform(userAgent string) domain.Platform {
	if strings.Contains(strings.ToLower(userAgent), "iphone") {
		return domain.PlatformIOS
	}
	return domain.PlatformAndroid
}

// BuildRecipients returns one numbered entry per phone, preserving order.
func BuildRecipients(phones domain.PhoneList, msg string) []domain.Recipient {
	out := make([]domain.Recipient, 0, len(phones))
	for i, p := range phones {
		out = append(out, domain.Recipient{
			Index: i + 1,
			Phone: p,
			URI:   BuildOne(p, msg),
		})
	}
	return out
}
