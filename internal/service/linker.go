package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"strings"

	"github.com/aniladanir/qr-sms-service/internal/codec"
	"github.com/aniladanir/qr-sms-service/internal/domain"
	"github.com/aniladanir/qr-sms-service/internal/qr"
	visitRepo "github.com/aniladanir/qr-sms-service/internal/repository/visit"
	"github.com/aniladanir/qr-sms-service/internal/smsuri"
)

const (
	qrPath       = "/qr.png"
	linkIDLength = 16
)

var ErrStatsDisabled = errors.New("visit statistics are disabled")

type SMSLinker interface {
	Compose(ctx context.Context, phonesInput, message string) (*domain.ShareLink, error)
	ComposeList(ctx context.Context, phones domain.PhoneList, message string) (*domain.ShareLink, error)
	QRCode(ctx context.Context, phones, message string) ([]byte, error)
	Dispatch(ctx context.Context, phones, message, userAgent string) (*domain.Dispatch, error)
	Stats(ctx context.Context) ([]domain.PlatformStats, error)
}

type service struct {
	baseURL   string
	renderer  qr.Renderer
	visitRepo visitRepo.Repository
	logger    *slog.Logger
}

// NewSMSLinkerService creates the link service. visits may be nil, in which
// case dispatch visits are not recorded.
func NewSMSLinkerService(baseURL string, renderer qr.Renderer, visits visitRepo.Repository, logger *slog.Logger) SMSLinker {
	return &service{
		baseURL:   baseURL,
		renderer:  renderer,
		visitRepo: visits,
		logger:    logger,
	}
}

// Compose parses newline separated phone numbers and builds a share link
func (s *service) Compose(ctx context.Context, phonesInput, message string) (*domain.ShareLink, error) {
	return s.ComposeList(ctx, codec.ParsePhones(phonesInput), message)
}

func (s *service) ComposeList(_ context.Context, phones domain.PhoneList, message string) (*domain.ShareLink, error) {
	if err := codec.Validate(phones, message); err != nil {
		return nil, err
	}

	payload := codec.Encode(phones, message)

	s.logger.Info("share link composed", "recipients", len(phones))

	return &domain.ShareLink{
		URL:        s.shareURL(payload),
		QRPath:     qrPath + "?" + payload.Query(),
		Payload:    payload,
		Recipients: len(phones),
	}, nil
}

// QRCode renders the share link of already decoded query values as PNG
func (s *service) QRCode(ctx context.Context, phones, message string) ([]byte, error) {
	list, msg, err := codec.Decode(phones, message)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(ctx, s.shareURL(codec.Encode(list, msg)))
}

// Dispatch decodes query values and builds the sms: links for the platform
// identified by userAgent
func (s *service) Dispatch(ctx context.Context, phones, message, userAgent string) (*domain.Dispatch, error) {
	list, msg, err := codec.Decode(phones, message)
	if err != nil {
		s.logger.Warn("failed to decode dispatch parameters", "error", err.Error())
		return nil, err
	}

	platform := smsuri.DetectPlatform(userAgent)
	dispatch := &domain.Dispatch{
		LinkID:     LinkID(codec.Encode(list, msg)),
		Platform:   platform.String(),
		Message:    msg,
		AllURI:     smsuri.BuildAll(list, msg, platform),
		Recipients: smsuri.BuildRecipients(list, msg),
	}

	if s.visitRepo != nil {
		visit := &domain.DispatchVisit{
			LinkID:     dispatch.LinkID,
			Platform:   dispatch.Platform,
			Recipients: len(list),
		}
		if err := s.visitRepo.Record(ctx, visit); err != nil {
			s.logger.Error("failed to record dispatch visit", "linkId", dispatch.LinkID, "error", err.Error())
		}
	}

	return dispatch, nil
}

// Stats returns dispatch visit totals per platform
func (s *service) Stats(ctx context.Context) ([]domain.PlatformStats, error) {
	if s.visitRepo == nil {
		return nil, ErrStatsDisabled
	}
	return s.visitRepo.Stats(ctx)
}

func (s *service) shareURL(p domain.Payload) string {
	sep := "?"
	if strings.Contains(s.baseURL, "?") {
		sep = "&"
	}
	return s.baseURL + sep + p.Query()
}

// LinkID is a short stable digest of a payload, used to group visits
// without storing its content.
func LinkID(p domain.Payload) string {
	sum := sha256.Sum256([]byte(p.Query()))
	return hex.EncodeToString(sum[:])[:linkIDLength]
}
