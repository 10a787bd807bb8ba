package domain

import (
	"time"
)

// PhoneList is an ordered list of phone number tokens exactly as entered.
type PhoneList []string

type Platform int

const (
	PlatformAndroid Platform = iota
	PlatformIOS
)

func (p Platform) String() string {
	if p == PlatformIOS {
		return "ios"
	}
	return "android"
}

type Mode int

const (
	ModeCompose Mode = iota
	ModeDispatch
)

func (m Mode) String() string {
	if m == ModeDispatch {
		return "dispatch"
	}
	return "compose"
}

// Payload carries a phone list and message between compose and dispatch mode.
// Both values are percent-encoded and ready to be placed into a query string.
type Payload struct {
	Phones  string `json:"p"`
	Message string `json:"m"`
}

// Query renders the payload as the query string of a share link.
func (p Payload) Query() string {
	return "p=" + p.Phones + "&m=" + p.Message
}

type ShareLink struct {
	URL        string  `json:"url"`
	QRPath     string  `json:"qr_path"`
	Payload    Payload `json:"payload"`
	Recipients int     `json:"recipients"`
}

type Recipient struct {
	Index int    `json:"index"`
	Phone string `json:"phone"`
	URI   string `json:"uri"`
}

type Dispatch struct {
	LinkID     string      `json:"link_id"`
	Platform   string      `json:"platform"`
	Message    string      `json:"message"`
	AllURI     string      `json:"all_uri"`
	Recipients []Recipient `json:"recipients"`
}

// DispatchVisit records that a share link was opened in dispatch mode.
// Neither phone numbers nor message text are stored.
type DispatchVisit struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	LinkID     string    `gorm:"type:varchar(16);not null;index" json:"link_id"`
	Platform   string    `gorm:"type:varchar(16);not null" json:"platform"`
	Recipients int       `gorm:"type:int;not null" json:"recipients"`
	CreatedAt  time.Time `json:"created_at"`
}

type PlatformStats struct {
	Platform   string `json:"platform"`
	Visits     int64  `json:"visits"`
	Recipients int64  `json:"recipients"`
}
