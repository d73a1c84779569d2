package metaclient

import (
	"fmt"
	"net/url"

	"github.com/pkg/errors"

	"github.com/vfg2006/campaign-guardian-api/infrastructure/integrator/meta/domain"
)

func (c *metaClient) GetCampaigns(accountID string, statusFilter []string) (*domain.CampaignResponse, error) {
	query := url.Values{}
	query.Set("fields", "id,name,status,objective,daily_budget,created_time")
	query.Set("limit", "200")

	if len(statusFilter) > 0 {
		filter, err := json.Marshal(statusFilter)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao montar o filtro de status")
		}

		query.Set("effective_status", string(filter))
	}

	var response domain.CampaignResponse
	if err := c.get(fmt.Sprintf("act_%s/campaigns", accountID), query, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar as campanhas da conta")
	}

	return &response, nil
}
