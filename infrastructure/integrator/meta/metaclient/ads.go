package metaclient

import (
	"fmt"
	"net/url"

	"github.com/pkg/errors"

	"github.com/vfg2006/campaign-guardian-api/infrastructure/integrator/meta/domain"
)

func (c *metaClient) GetAds(adSetID string) (*domain.AdResponse, error) {
	query := url.Values{}
	query.Set("fields", "id,name,status,adset_id,creative{id,thumbnail_url}")
	query.Set("limit", "200")

	var response domain.AdResponse
	if err := c.get(fmt.Sprintf("%s/ads", adSetID), query, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar os anúncios do conjunto")
	}

	return &response, nil
}
