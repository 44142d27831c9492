package domain

import "testing"

func TestNextStatus(t *testing.T) {
	tests := []struct {
		current  PostingStatus
		expected PostingStatus
	}{
		{StatusDraft, StatusQueued},
		{StatusQueued, StatusPosted},
		{StatusPosted, ""},
		{StatusCancelled, ""},
	}

	for _, tt := range tests {
		if got := NextStatus(tt.current); got != tt.expected {
			t.Errorf("NextStatus(%s) = %q, want %q", tt.current, got, tt.expected)
		}
	}
}

func TestPostingStatusValid(t *testing.T) {
	for _, s := range []PostingStatus{StatusDraft, StatusQueued, StatusPosted, StatusCancelled} {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	for _, s := range []PostingStatus{"", "pending", "DRAFT"} {
		if s.Valid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestPostingPosters(t *testing.T) {
	p := &Posting{Gallery: []string{"a.jpg", "b.jpg"}, PosterURL: "legacy.jpg"}
	if got := p.Posters(); len(got) != 2 || got[0] != "a.jpg" {
		t.Errorf("gallery should win over legacy poster_url, got %v", got)
	}

	p = &Posting{PosterURL: "legacy.jpg"}
	if got := p.Posters(); len(got) != 1 || got[0] != "legacy.jpg" {
		t.Errorf("legacy fallback expected, got %v", got)
	}

	p = &Posting{}
	if got := p.Posters(); got != nil {
		t.Errorf("expected nil for posting without images, got %v", got)
	}
}
