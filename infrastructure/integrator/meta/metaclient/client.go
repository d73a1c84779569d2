package metaclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/campaign-guardian-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-guardian-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrTokenRenewed sinaliza que o token expirou durante a chamada e foi
// renovado. A operação pode ser repetida com segurança.
var ErrTokenRenewed = errors.New("token expirado e renovado, por favor tente novamente")

// Client encapsula as chamadas à Graph API da Meta.
type Client interface {
	GetAccountInfo(accountID string) (*domain.AccountInfoResponse, error)
	GetInsights(accountID string, params InsightParams) (*domain.InsightResponse, error)
	GetCampaigns(accountID string, statusFilter []string) (*domain.CampaignResponse, error)
	GetAdSets(campaignID string) (*domain.AdSetResponse, error)
	GetAds(adSetID string) (*domain.AdResponse, error)
	UpdateCampaignStatus(campaignID, status string) (*domain.UpdateResponse, error)
	StartTokenAutoRefresh()
	StopTokenAutoRefresh()
}

// InsightParams define o recorte temporal e o nível de agregação dos insights.
type InsightParams struct {
	Since string
	Until string
	Level string
}

type metaClient struct {
	cfg          config.Meta
	httpClient   *http.Client
	tokenManager *TokenManager
}

func New(cfg config.Meta) Client {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	return &metaClient{
		cfg:          cfg,
		httpClient:   httpClient,
		tokenManager: NewTokenManager(cfg, httpClient),
	}
}

// baseURL já inclui a versão da Graph API, montada em config.NewConfig.
func (c *metaClient) baseURL() string {
	return c.cfg.URL
}

// get executa uma chamada GET autenticada e decodifica a resposta em out.
// Em caso de token expirado, renova o token e devolve ErrTokenRenewed para
// que o chamador repita a operação.
func (c *metaClient) get(path string, query url.Values, out interface{}) error {
	token, err := c.tokenManager.EnsureValidToken()
	if err != nil {
		return errors.Wrap(err, "erro ao garantir token válido")
	}

	query.Set("access_token", token)

	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL(), path, query.Encode())

	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return errors.Wrap(err, "erro ao chamar a Graph API")
	}
	defer resp.Body.Close()

	return c.handleResponse(resp, out)
}

// post executa uma mutação autenticada via POST com corpo form-encoded.
func (c *metaClient) post(path string, form url.Values, out interface{}) error {
	token, err := c.tokenManager.EnsureValidToken()
	if err != nil {
		return errors.Wrap(err, "erro ao garantir token válido")
	}

	form.Set("access_token", token)

	endpoint := fmt.Sprintf("%s/%s", c.baseURL(), path)

	resp, err := c.httpClient.PostForm(endpoint, form)
	if err != nil {
		return errors.Wrap(err, "erro ao chamar a Graph API")
	}
	defer resp.Body.Close()

	return c.handleResponse(resp, out)
}

func (c *metaClient) handleResponse(resp *http.Response, out interface{}) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler o corpo da resposta")
	}

	if resp.StatusCode != http.StatusOK {
		var errResp domain.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			if errResp.IsTokenExpired() {
				logrus.Warn("Token expirado detectado na resposta, renovando")

				if refreshErr := c.tokenManager.RefreshToken(); refreshErr != nil {
					return errors.Wrap(refreshErr, "erro ao renovar token expirado")
				}

				return ErrTokenRenewed
			}

			return errors.Errorf(
				"erro da Graph API (%d/%d): %s",
				errResp.Error.Code, errResp.Error.ErrorSubcode, errResp.Error.Message,
			)
		}

		return errors.Errorf("resposta inesperada da Graph API: status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta da Graph API")
	}

	return nil
}

func (c *metaClient) StartTokenAutoRefresh() {
	c.tokenManager.StartAutoRefresh()
}

func (c *metaClient) StopTokenAutoRefresh() {
	c.tokenManager.StopAutoRefresh()
}
