package metaclient

import (
	"net/url"

	"github.com/pkg/errors"

	"github.com/vfg2006/campaign-guardian-api/infrastructure/integrator/meta/domain"
)

func (c *metaClient) UpdateCampaignStatus(campaignID, status string) (*domain.UpdateResponse, error) {
	form := url.Values{}
	form.Set("status", status)

	var response domain.UpdateResponse
	if err := c.post(campaignID, form, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao atualizar o status da campanha")
	}

	if !response.Success {
		return nil, errors.Errorf("a Graph API recusou a mudança de status da campanha %s", campaignID)
	}

	return &response, nil
}
