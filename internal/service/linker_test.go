package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aniladanir/qr-sms-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	content string
}

func (f *fakeRenderer) Render(_ context.Context, content string) ([]byte, error) {
	f.content = content
	return []byte("png"), nil
}

type fakeRepo struct {
	visits    []domain.DispatchVisit
	recordErr error
	stats     []domain.PlatformStats
}

func (f *fakeRepo) Record(_ context.Context, v *domain.DispatchVisit) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.visits = append(f.visits, *v)
	return nil
}

func (f *fakeRepo) Stats(context.Context) ([]domain.PlatformStats, error) {
	return f.stats, nil
}

func newTestService(repo *fakeRepo) (SMSLinker, *fakeRenderer) {
	renderer := &fakeRenderer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if repo == nil {
		return NewSMSLinkerService("https://sms.example.com/", renderer, nil, logger), renderer
	}
	return NewSMSLinkerService("https://sms.example.com/", renderer, repo, logger), renderer
}

func TestCompose(t *testing.T) {
	svc, _ := newTestService(nil)

	link, err := svc.Compose(context.Background(), "010111\n  010222 \n\n", "hi")
	require.NoError(t, err)

	assert.Equal(t, "https://sms.example.com/?p=010111%2C010222&m=aGk%3D", link.URL)
	assert.Equal(t, "/qr.png?p=010111%2C010222&m=aGk%3D", link.QRPath)
	assert.Equal(t, 2, link.Recipients)
}

func TestComposeBaseURLWithQuery(t *testing.T) {
	svc := NewSMSLinkerService("https://sms.example.com/?lang=ko", &fakeRenderer{}, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	link, err := svc.ComposeList(context.Background(), domain.PhoneList{"010111"}, "hi")
	require.NoError(t, err)
	assert.Equal(t, "https://sms.example.com/?lang=ko&p=010111&m=aGk%3D", link.URL)
}

func TestComposeValidation(t *testing.T) {
	svc, _ := newTestService(nil)

	tests := []struct {
		name    string
		phones  string
		msg     string
		wantErr error
	}{
		{name: "empty message", phones: "010111", msg: "  ", wantErr: domain.ErrNoMessage},
		{name: "no phones", phones: "\n \n", msg: "hi", wantErr: domain.ErrNoPhones},
		{name: "comma", phones: "010,111", msg: "hi", wantErr: domain.ErrCommaInPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Compose(context.Background(), tt.phones, tt.msg)
			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDispatch(t *testing.T) {
	repo := &fakeRepo{}
	svc, _ := newTestService(repo)

	d, err := svc.Dispatch(context.Background(), "010111,010222", "aGk=", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)")
	require.NoError(t, err)

	assert.Equal(t, "ios", d.Platform)
	assert.Equal(t, "hi", d.Message)
	assert.Equal(t, "sms:/open?addresses=010111,010222&body=hi", d.AllURI)
	require.Len(t, d.Recipients, 2)
	assert.Equal(t, "sms:010222?body=hi", d.Recipients[1].URI)
	assert.Equal(t, 2, d.Recipients[1].Index)

	require.Len(t, repo.visits, 1)
	assert.Equal(t, d.LinkID, repo.visits[0].LinkID)
	assert.Equal(t, "ios", repo.visits[0].Platform)
	assert.Equal(t, 2, repo.visits[0].Recipients)
}

func TestDispatchAndroid(t *testing.T) {
	svc, _ := newTestService(nil)

	d, err := svc.Dispatch(context.Background(), "010111,010222", "aGk=", "Mozilla/5.0 (Linux; Android 14)")
	require.NoError(t, err)
	assert.Equal(t, "android", d.Platform)
	assert.Equal(t, "sms:010111,010222?body=hi", d.AllURI)
}

func TestDispatchDecodeError(t *testing.T) {
	repo := &fakeRepo{}
	svc, _ := newTestService(repo)

	_, err := svc.Dispatch(context.Background(), "010111", "not-base64!!", "")

	var decodeErr *domain.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Empty(t, repo.visits)
}

func TestDispatchRecordFailureIsNotFatal(t *testing.T) {
	svc, _ := newTestService(&fakeRepo{recordErr: errors.New("db down")})

	d, err := svc.Dispatch(context.Background(), "010111", "aGk=", "")
	require.NoError(t, err)
	assert.Equal(t, "sms:010111?body=hi", d.AllURI)
}

func TestQRCode(t *testing.T) {
	svc, renderer := newTestService(nil)

	png, err := svc.QRCode(context.Background(), "010111,010222", "aGk=")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
	assert.Equal(t, "https://sms.example.com/?p=010111%2C010222&m=aGk%3D", renderer.content)

	_, err = svc.QRCode(context.Background(), "010111", "%%%")
	var decodeErr *domain.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestStats(t *testing.T) {
	svc, _ := newTestService(nil)
	_, err := svc.Stats(context.Background())
	assert.ErrorIs(t, err, ErrStatsDisabled)

	want := []domain.PlatformStats{{Platform: "android", Visits: 3, Recipients: 7}}
	svc, _ = newTestService(&fakeRepo{stats: want})
	got, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLinkIDIsStable(t *testing.T) {
	p := domain.Payload{Phones: "010111", Message: "aGk%3D"}
	assert.Equal(t, LinkID(p), LinkID(p))
	assert.Len(t, LinkID(p), linkIDLength)
	assert.NotEqual(t, LinkID(p), LinkID(domain.Payload{Phones: "010222", Message: "aGk%3D"}))
}
