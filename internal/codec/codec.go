// Package codec converts a phone list and message into the p/m query
// parameters of a share link and back.
package codec

import (
	"encoding/base64"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/aniladanir/qr-sms-service/internal/domain"
)

const (
	ParamPhones  = "p"
	ParamMessage = "m"

	phoneSeparator = ","
)

// Encode builds the transport payload. Phone numbers are joined with a comma
// and are not escaped individually, so a number containing a comma will not
// survive the round trip. Validate rejects such numbers beforehand.
func Encode(phones domain.PhoneList, msg string) domain.Payload {
	joined := strings.Join(phones, phoneSeparator)
	b64 := base64.StdEncoding.EncodeToString([]byte(msg))

	return domain.Payload{
		Phones:  Quote(joined),
		Message: Quote(b64),
	}
}

// Decode recovers the phone list and message from query values that have
// already been percent-decoded once by the query parser.
func Decode(phones, msg string) (domain.PhoneList, string, error) {
	list := splitPhones(phones)
	if len(list) == 0 {
		return nil, "", &domain.DecodeError{Param: ParamPhones, Err: domain.ErrNoPhones}
	}

	// form-style query parsing turns a literal '+' into a space
	msg = strings.ReplaceAll(msg, " ", "+")

	raw, err := base64.StdEncoding.DecodeString(msg)
	if err != nil {
		return nil, "", &domain.DecodeError{Param: ParamMessage, Err: domain.ErrInvalidBase64}
	}
	if !utf8.Valid(raw) {
		return nil, "", &domain.DecodeError{Param: ParamMessage, Err: domain.ErrInvalidUTF8}
	}

	return list, string(raw), nil
}

// DecodePayload percent-decodes both payload values once and decodes them.
func DecodePayload(p domain.Payload) (domain.PhoneList, string, error) {
	phones, err := Unquote(p.Phones)
	if err != nil {
		return nil, "", &domain.DecodeError{Param: ParamPhones, Err: err}
	}
	msg, err := Unquote(p.Message)
	if err != nil {
		return nil, "", &domain.DecodeError{Param: ParamMessage, Err: err}
	}
	return Decode(phones, msg)
}

// ParsePhones splits textarea input into one phone number per line,
// trimming whitespace and dropping blank lines.
func ParsePhones(input string) domain.PhoneList {
	var phones domain.PhoneList
	for _, line := range strings.Split(input, "\n") {
		if p := strings.TrimSpace(line); p != "" {
			phones = append(phones, p)
		}
	}
	return phones
}

// Validate checks compose input before it is encoded.
func Validate(phones domain.PhoneList, msg string) error {
	if strings.TrimSpace(msg) == "" {
		return &domain.ValidationError{Field: "message", Err: domain.ErrNoMessage}
	}
	if len(phones) == 0 {
		return &domain.ValidationError{Field: "phones", Err: domain.ErrNoPhones}
	}
	for _, p := range phones {
		if strings.TrimSpace(p) == "" {
			return &domain.ValidationError{Field: "phones", Err: domain.ErrBlankPhone}
		}
		if strings.Contains(p, phoneSeparator) {
			return &domain.ValidationError{Field: "phones", Err: domain.ErrCommaInPhone}
		}
	}
	return nil
}

// SelectMode returns dispatch mode only when both parameters are present.
func SelectMode(hasPhones, hasMessage bool) domain.Mode {
	if hasPhones && hasMessage {
		return domain.ModeDispatch
	}
	return domain.ModeCompose
}

// ModeOf selects the mode from the query of a request.
func ModeOf(q url.Values) domain.Mode {
	return SelectMode(q.Has(ParamPhones), q.Has(ParamMessage))
}

func splitPhones(s string) domain.PhoneList {
	var list domain.PhoneList
	for _, p := range strings.Split(s, phoneSeparator) {
		if p != "" {
			list = append(list, p)
		}
	}
	return list
}
