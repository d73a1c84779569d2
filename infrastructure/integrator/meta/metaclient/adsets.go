package metaclient

import (
	"fmt"
	"net/url"

	"github.com/pkg/errors"

	"github.com/vfg2006/campaign-guardian-api/infrastructure/integrator/meta/domain"
)

func (c *metaClient) GetAdSets(campaignID string) (*domain.AdSetResponse, error) {
	query := url.Values{}
	query.Set("fields", "id,name,status,campaign_id,daily_budget,optimization_goal,targeting")
	query.Set("limit", "200")

	var response domain.AdSetResponse
	if err := c.get(fmt.Sprintf("%s/adsets", campaignID), query, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar os conjuntos de anúncios da campanha")
	}

	return &response, nil
}
