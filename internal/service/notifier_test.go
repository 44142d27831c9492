package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LostaMasta45/biolink-sub000/internal/domain"
)

type relayRecorder struct {
	mu            sync.Mutex
	payloads      []relayPayload
	failWithPhoto bool
}

func (r *relayRecorder) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var p relayPayload
		if err := json.NewDecoder(req.Body).Decode(&p); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		r.mu.Lock()
		r.payloads = append(r.payloads, p)
		r.mu.Unlock()

		if r.failWithPhoto && p.PhotoURL != "" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func TestNotifierPostingCreated(t *testing.T) {
	rec := &relayRecorder{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	n := NewRelayNotifier(srv.URL)
	n.PostingCreated(&domain.Posting{
		CompanyName:    "Warung A",
		WhatsAppNumber: "6281234567890",
		ScheduledDate:  "2025-03-01",
		ScheduledTime:  "10:00",
		TotalPrice:     65000,
		Gallery:        []string{"poster.jpg"},
	})

	require.Len(t, rec.payloads, 1)
	assert.Contains(t, rec.payloads[0].Text, "Warung A")
	assert.Contains(t, rec.payloads[0].Text, "Rp 65.000")
	assert.Equal(t, "poster.jpg", rec.payloads[0].PhotoURL)
}

func TestNotifierPhotoFallbackToTextOnly(t *testing.T) {
	rec := &relayRecorder{failWithPhoto: true}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	n := NewRelayNotifier(srv.URL)
	n.PostingStatusChanged(&domain.Posting{
		CompanyName:   "Warung A",
		ScheduledDate: "2025-03-01",
		ScheduledTime: "10:00",
		PosterURL:     "poster.jpg",
	}, domain.StatusDraft, domain.StatusQueued)

	require.Len(t, rec.payloads, 2)
	assert.Equal(t, "poster.jpg", rec.payloads[0].PhotoURL)
	// fallback embeds the photo link into a text-only message
	assert.Empty(t, rec.payloads[1].PhotoURL)
	assert.Contains(t, rec.payloads[1].Text, "poster.jpg")
}

// Total relay failure must never propagate to the caller
func TestNotifierSwallowsTotalFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := NewRelayNotifier(srv.URL)
	n.PostingCreated(&domain.Posting{CompanyName: "Warung A"})
	n.PostingStatusChanged(&domain.Posting{CompanyName: "Warung A"}, domain.StatusDraft, domain.StatusQueued)
}
