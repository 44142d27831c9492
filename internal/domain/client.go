package domain

import "sort"

// ClientTier is the ordinal client classification shown on the client list
type ClientTier string

// Client tiers, highest first
const (
	TierPlatinum ClientTier = "platinum"
	TierGold     ClientTier = "gold"
	TierSilver   ClientTier = "silver"
	TierBronze   ClientTier = "bronze"
)

// TierRule maps aggregate activity to a tier. A client qualifies for a rule
// when it meets BOTH minimums, which keeps the ranking monotonic in posting
// count and spend. Rules are evaluated highest tier first.
type TierRule struct {
	Tier        ClientTier `yaml:"tier" json:"tier"`
	MinPostings int        `yaml:"min_postings" json:"min_postings"`
	MinSpent    int64      `yaml:"min_spent" json:"min_spent"`
}

// DefaultTierRules returns the built-in thresholds, overridable via config
func DefaultTierRules() []TierRule {
	return []TierRule{
		{Tier: TierPlatinum, MinPostings: 10, MinSpent: 5000000},
		{Tier: TierGold, MinPostings: 5, MinSpent: 2500000},
		{Tier: TierSilver, MinPostings: 2, MinSpent: 1000000},
		{Tier: TierBronze, MinPostings: 0, MinSpent: 0},
	}
}

// ClassifyTier returns the highest tier whose thresholds are both met
func ClassifyTier(totalPostings int, totalSpent int64, rules []TierRule) ClientTier {
	for _, r := range rules {
		if totalPostings >= r.MinPostings && totalSpent >= r.MinSpent {
			return r.Tier
		}
	}
	return TierBronze
}

// AggregatedClient is the per-client rollup derived from the full posting
// collection. It is recomputed on every load and never persisted.
type AggregatedClient struct {
	WhatsAppNumber   string     `json:"whatsapp_number"`
	CompanyName      string     `json:"company_name"` // from the latest-scheduled posting
	Tier             ClientTier `json:"tier"`
	TotalPostings    int        `json:"total_postings"`
	TotalSpent       int64      `json:"total_spent"`
	FirstPostingDate string     `json:"first_posting_date"`
	LastPostingDate  string     `json:"last_posting_date"`
	PosterGallery    []string   `json:"poster_gallery"`
}

// ClientDetail is an AggregatedClient plus the client's full posting history.
// History is fetched per client on demand; the bulk list stays cheap.
type ClientDetail struct {
	AggregatedClient
	PostingHistory []PostingResponse `json:"posting_history"`
}

// AggregateClients groups postings by normalized WhatsApp number and derives
// one AggregatedClient per distinct number. All statuses count. The poster
// gallery is the union across the client's postings in chronological order,
// duplicates preserved. Output is sorted by last activity, newest first, so
// a given input set always yields the same ordering.
func AggregateClients(postings []*Posting, rules []TierRule) []*AggregatedClient {
	groups := make(map[string][]*Posting)
	var order []string
	for _, p := range postings {
		key := p.WhatsAppNumber
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], p)
	}

	clients := make([]*AggregatedClient, 0, len(groups))
	for _, key := range order {
		group := groups[key]

		// chronological by scheduled date (ISO dates sort lexicographically)
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].ScheduledDate < group[j].ScheduledDate
		})

		c := &AggregatedClient{
			WhatsAppNumber:   key,
			TotalPostings:    len(group),
			FirstPostingDate: group[0].ScheduledDate,
			LastPostingDate:  group[len(group)-1].ScheduledDate,
			CompanyName:      group[len(group)-1].CompanyName,
		}
		for _, p := range group {
			c.TotalSpent += p.TotalPrice
			c.PosterGallery = append(c.PosterGallery, p.Posters()...)
		}
		c.Tier = ClassifyTier(c.TotalPostings, c.TotalSpent, rules)
		clients = append(clients, c)
	}

	sort.SliceStable(clients, func(i, j int) bool {
		return clients[i].LastPostingDate > clients[j].LastPostingDate
	})
	return clients
}
