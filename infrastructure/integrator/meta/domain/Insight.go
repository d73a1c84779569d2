package domain

// Insight representa uma linha crua de insights da Graph API. Todos os campos
// numéricos chegam como string.
type Insight struct {
	CampaignID   string        `json:"campaign_id"`
	CampaignName string        `json:"campaign_name"`
	AdSetID      string        `json:"adset_id"`
	AdSetName    string        `json:"adset_name"`
	AdID         string        `json:"ad_id"`
	AdName       string        `json:"ad_name"`
	Impressions  string        `json:"impressions"`
	Clicks       string        `json:"clicks"`
	Spend        string        `json:"spend"`
	CTR          string        `json:"ctr"`
	CPM          string        `json:"cpm"`
	Frequency    string        `json:"frequency"`
	Reach        string        `json:"reach"`
	DateStart    string        `json:"date_start"`
	DateStop     string        `json:"date_stop"`
	PurchaseROAS []ActionValue `json:"purchase_roas"`
}

type ActionValue struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type InsightResponse struct {
	Data   []Insight `json:"data"`
	Paging *Paging   `json:"paging,omitempty"`
}

type Paging struct {
	Cursors *Cursors `json:"cursors,omitempty"`
	Next    string   `json:"next,omitempty"`
}

type Cursors struct {
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}
