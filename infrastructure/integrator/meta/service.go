package meta

import (
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/campaign-guardian-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-guardian-api/internal/domain"
)

const dateLayout = "2006-01-02"

// Integrator expõe as operações da conta de anúncios já convertidas para os
// tipos do domínio. Implementa também approving.CampaignMutator.
type Integrator interface {
	AccountInfo(accountID string) (*domain.AccountInfo, error)
	Insights(accountID string, filters domain.InsightFilters) ([]domain.CampaignInsight, error)
	Campaigns(accountID string, statusFilter []string) ([]domain.Campaign, error)
	AdSets(campaignID string) ([]domain.AdSet, error)
	Ads(adSetID string) ([]domain.Ad, error)
	UpdateCampaignStatus(campaignID string, status domain.CampaignStatus) error
}

type service struct {
	client metaclient.Client
}

func NewService(client metaclient.Client) Integrator {
	return &service{client: client}
}

// withTokenRetry repete a operação uma única vez quando o cliente sinaliza
// que o token expirou e já foi renovado.
func withTokenRetry(fn func() error) error {
	err := fn()
	if errors.Is(err, metaclient.ErrTokenRenewed) {
		return fn()
	}

	return err
}

func (s *service) AccountInfo(accountID string) (*domain.AccountInfo, error) {
	var info *domain.AccountInfo

	err := withTokenRetry(func() error {
		response, err := s.client.GetAccountInfo(accountID)
		if err != nil {
			return err
		}

		info = NewAccountInfoFromResponse(response)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return info, nil
}

func (s *service) Insights(accountID string, filters domain.InsightFilters) ([]domain.CampaignInsight, error) {
	params := insightParams(filters)

	var insights []domain.CampaignInsight

	err := withTokenRetry(func() error {
		response, err := s.client.GetInsights(accountID, params)
		if err != nil {
			return err
		}

		insights = make([]domain.CampaignInsight, 0, len(response.Data))
		for _, raw := range response.Data {
			insights = append(insights, NewCampaignInsightFromResponse(raw))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return insights, nil
}

// insightParams aplica os padrões de consulta: últimos 7 dias e nível de
// campanha quando o filtro não informa.
func insightParams(filters domain.InsightFilters) metaclient.InsightParams {
	now := time.Now()

	since := now.AddDate(0, 0, -7)
	if filters.StartDate != nil {
		since = *filters.StartDate
	}

	until := now
	if filters.EndDate != nil {
		until = *filters.EndDate
	}

	level := filters.Level
	if level == "" {
		level = "campaign"
	}

	return metaclient.InsightParams{
		Since: since.Format(dateLayout),
		Until: until.Format(dateLayout),
		Level: level,
	}
}

func (s *service) Campaigns(accountID string, statusFilter []string) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign

	err := withTokenRetry(func() error {
		response, err := s.client.GetCampaigns(accountID, statusFilter)
		if err != nil {
			return err
		}

		campaigns = make([]domain.Campaign, 0, len(response.Data))
		for _, raw := range response.Data {
			campaigns = append(campaigns, NewCampaignFromResponse(raw))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return campaigns, nil
}

func (s *service) AdSets(campaignID string) ([]domain.AdSet, error) {
	var adSets []domain.AdSet

	err := withTokenRetry(func() error {
		response, err := s.client.GetAdSets(campaignID)
		if err != nil {
			return err
		}

		adSets = make([]domain.AdSet, 0, len(response.Data))
		for _, raw := range response.Data {
			adSets = append(adSets, NewAdSetFromResponse(raw))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return adSets, nil
}

func (s *service) Ads(adSetID string) ([]domain.Ad, error) {
	var ads []domain.Ad

	err := withTokenRetry(func() error {
		response, err := s.client.GetAds(adSetID)
		if err != nil {
			return err
		}

		ads = make([]domain.Ad, 0, len(response.Data))
		for _, raw := range response.Data {
			ads = append(ads, NewAdFromResponse(raw))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ads, nil
}

func (s *service) UpdateCampaignStatus(campaignID string, status domain.CampaignStatus) error {
	return withTokenRetry(func() error {
		if _, err := s.client.UpdateCampaignStatus(campaignID, string(status)); err != nil {
			return errors.Wrapf(err, "erro ao mudar a campanha %s para %s", campaignID, status)
		}

		return nil
	})
}
