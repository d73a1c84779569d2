package domain

// Campaign representa a campanha crua retornada pela Graph API.
type Campaign struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Objective   string `json:"objective"`
	DailyBudget string `json:"daily_budget"`
	CreatedTime string `json:"created_time"`
}

type CampaignResponse struct {
	Data   []Campaign `json:"data"`
	Paging *Paging    `json:"paging,omitempty"`
}

type AdSet struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Status           string    `json:"status"`
	CampaignID       string    `json:"campaign_id"`
	DailyBudget      string    `json:"daily_budget"`
	OptimizationGoal string    `json:"optimization_goal"`
	Targeting        Targeting `json:"targeting"`
}

type Targeting struct {
	AgeMin       int           `json:"age_min,omitempty"`
	AgeMax       int           `json:"age_max,omitempty"`
	GeoLocations *GeoLocations `json:"geo_locations,omitempty"`
}

type GeoLocations struct {
	Countries []string `json:"countries,omitempty"`
}

type AdSetResponse struct {
	Data   []AdSet `json:"data"`
	Paging *Paging `json:"paging,omitempty"`
}

type Ad struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	AdSetID  string    `json:"adset_id"`
	Creative *Creative `json:"creative,omitempty"`
}

type Creative struct {
	ID           string `json:"id"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

type AdResponse struct {
	Data   []Ad    `json:"data"`
	Paging *Paging `json:"paging,omitempty"`
}

// UpdateResponse é a resposta de mutações (ex.: pausa de campanha).
type UpdateResponse struct {
	Success bool `json:"success"`
}
