package metaclient

import (
	"fmt"
	"net/url"

	"github.com/pkg/errors"

	"github.com/vfg2006/campaign-guardian-api/infrastructure/integrator/meta/domain"
)

const insightFields = "campaign_id,campaign_name,adset_id,adset_name,ad_id,ad_name," +
	"impressions,clicks,spend,ctr,cpm,frequency,reach,purchase_roas,date_start,date_stop"

func (c *metaClient) GetInsights(accountID string, params InsightParams) (*domain.InsightResponse, error) {
	query := url.Values{}
	query.Set("fields", insightFields)
	query.Set("level", params.Level)
	query.Set("time_range", fmt.Sprintf(`{"since":"%s","until":"%s"}`, params.Since, params.Until))
	query.Set("limit", "500")

	var response domain.InsightResponse
	if err := c.get(fmt.Sprintf("act_%s/insights", accountID), query, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar os insights da conta")
	}

	return &response, nil
}
