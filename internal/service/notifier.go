package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/LostaMasta45/biolink-sub000/internal/common"
	"github.com/LostaMasta45/biolink-sub000/internal/domain"
	pkglogger "github.com/LostaMasta45/biolink-sub000/pkg/logger"
)

// Notifier dispatches best-effort chat notifications for posting events.
// Delivery failures are logged and swallowed; they never block the caller.
type Notifier interface {
	PostingCreated(p *domain.Posting)
	PostingStatusChanged(p *domain.Posting, from, to domain.PostingStatus)
}

// RelayNotifier posts formatted messages to the internal chat-bot relay,
// which forwards them to Telegram with server-held credentials.
type RelayNotifier struct {
	client   *http.Client
	relayURL string
}

// NewRelayNotifier creates a RelayNotifier for the given relay endpoint
func NewRelayNotifier(relayURL string) *RelayNotifier {
	return &RelayNotifier{
		client:   &http.Client{Timeout: 10 * time.Second},
		relayURL: relayURL,
	}
}

type relayPayload struct {
	Text     string `json:"text"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// PostingCreated announces a newly queued posting
func (n *RelayNotifier) PostingCreated(p *domain.Posting) {
	text := fmt.Sprintf(
		"📋 Antrian baru: %s\n📅 Tayang: %s %s\n💰 %s\n📱 %s",
		p.CompanyName,
		p.ScheduledDate, p.ScheduledTime,
		common.FormatRupiah(p.TotalPrice),
		common.WhatsAppLink(p.WhatsAppNumber, ""),
	)
	n.send(text, firstPoster(p))
}

// PostingStatusChanged announces a status transition
func (n *RelayNotifier) PostingStatusChanged(p *domain.Posting, from, to domain.PostingStatus) {
	text := fmt.Sprintf(
		"🔄 %s: %s → %s\n📅 Tayang: %s %s",
		p.CompanyName, from, to,
		p.ScheduledDate, p.ScheduledTime,
	)
	n.send(text, firstPoster(p))
}

// send posts to the relay. If a photo send fails, it falls back once to a
// text-only message with the photo link embedded. Total failure is logged
// and dropped: notifications are telemetry, not business-critical.
func (n *RelayNotifier) send(text, photoURL string) {
	if err := n.post(relayPayload{Text: text, PhotoURL: photoURL}); err == nil {
		return
	} else if photoURL == "" {
		pkglogger.GetLogger().Warn().Err(err).Msg("notification relay failed")
		return
	}

	fallback := relayPayload{Text: text + "\n🖼 " + photoURL}
	if err := n.post(fallback); err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("notification relay failed after text-only fallback")
	}
}

func (n *RelayNotifier) post(payload relayPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := n.client.Post(n.relayURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("relay returned status %d", resp.StatusCode)
	}
	return nil
}

func firstPoster(p *domain.Posting) string {
	if posters := p.Posters(); len(posters) > 0 {
		return posters[0]
	}
	return ""
}

// NoopNotifier is used when the relay is not configured
type NoopNotifier struct{}

func (NoopNotifier) PostingCreated(*domain.Posting)                                        {}
func (NoopNotifier) PostingStatusChanged(*domain.Posting, domain.PostingStatus, domain.PostingStatus) {}
