package metaclient

import (
	"fmt"
	"net/url"

	"github.com/pkg/errors"

	"github.com/vfg2006/campaign-guardian-api/infrastructure/integrator/meta/domain"
)

func (c *metaClient) GetAccountInfo(accountID string) (*domain.AccountInfoResponse, error) {
	query := url.Values{}
	query.Set("fields", "id,name,currency,account_status,balance,amount_spent,spend_cap")

	var response domain.AccountInfoResponse
	if err := c.get(fmt.Sprintf("act_%s", accountID), query, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar os dados da conta")
	}

	return &response, nil
}
