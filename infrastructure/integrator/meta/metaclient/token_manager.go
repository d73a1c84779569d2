package metaclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/campaign-guardian-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-guardian-api/internal/config"
)

// refreshSafetyWindow antecipa a renovação para não usar um token prestes a
// expirar no meio de uma chamada.
const refreshSafetyWindow = time.Hour

// TokenManager mantém o token de longa duração da Meta válido, renovando-o
// sob demanda e em segundo plano.
type TokenManager struct {
	cfg        config.Meta
	httpClient *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time

	stopCh chan struct{}
	wg     sync.WaitGroup
}

func NewTokenManager(cfg config.Meta, httpClient *http.Client) *TokenManager {
	token := cfg.LongLivedToken
	if token == "" {
		token = cfg.AccessToken
	}

	return &TokenManager{
		cfg:        cfg,
		httpClient: httpClient,
		token:      token,
	}
}

// EnsureValidToken devolve um token utilizável, renovando-o quando expirado
// ou perto de expirar.
func (tm *TokenManager) EnsureValidToken() (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.token == "" {
		return "", errors.New("nenhum token de acesso configurado")
	}

	if tm.expiresAt.IsZero() {
		if err := tm.inspectToken(); err != nil {
			logrus.WithError(err).Warn("Não foi possível inspecionar o token, seguindo com o token atual")
			return tm.token, nil
		}
	}

	if !tm.expiresAt.IsZero() && time.Until(tm.expiresAt) < refreshSafetyWindow {
		if err := tm.refreshLocked(); err != nil {
			return "", err
		}
	}

	return tm.token, nil
}

// RefreshToken força a troca do token atual por um novo token de longa
// duração.
func (tm *TokenManager) RefreshToken() error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return tm.refreshLocked()
}

func (tm *TokenManager) refreshLocked() error {
	query := url.Values{}
	query.Set("grant_type", "fb_exchange_token")
	query.Set("client_id", tm.cfg.AppID)
	query.Set("client_secret", tm.cfg.AppSecret)
	query.Set("fb_exchange_token", tm.token)

	endpoint := fmt.Sprintf("%s/oauth/access_token?%s", tm.cfg.URL, query.Encode())

	resp, err := tm.httpClient.Get(endpoint)
	if err != nil {
		return errors.Wrap(err, "erro ao trocar o token de acesso")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler a resposta de troca de token")
	}

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("troca de token recusada: status %d", resp.StatusCode)
	}

	var tokenResp domain.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta de troca de token")
	}

	if tokenResp.AccessToken == "" {
		return errors.New("troca de token retornou token vazio")
	}

	tm.token = tokenResp.AccessToken
	tm.expiresAt = calculateExpiration(tokenResp.ExpiresIn)

	logrus.WithField("expires_at", tm.expiresAt.Format(time.RFC3339)).
		Info("Token de acesso renovado com sucesso")

	return nil
}

// inspectToken consulta o endpoint debug_token para descobrir a validade do
// token atual.
func (tm *TokenManager) inspectToken() error {
	query := url.Values{}
	query.Set("input_token", tm.token)
	query.Set("access_token", fmt.Sprintf("%s|%s", tm.cfg.AppID, tm.cfg.AppSecret))

	endpoint := fmt.Sprintf("%s/debug_token?%s", tm.cfg.URL, query.Encode())

	resp, err := tm.httpClient.Get(endpoint)
	if err != nil {
		return errors.Wrap(err, "erro ao inspecionar o token")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler a resposta de inspeção do token")
	}

	var debugResp domain.DebugTokenResponse
	if err := json.Unmarshal(body, &debugResp); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta de inspeção do token")
	}

	if !debugResp.Data.IsValid {
		return errors.New("token atual inválido segundo o debug_token")
	}

	if debugResp.Data.ExpiresAt > 0 {
		tm.expiresAt = time.Unix(debugResp.Data.ExpiresAt, 0)
	}

	return nil
}

// StartAutoRefresh renova o token periodicamente em segundo plano. Tokens de
// longa duração valem ~60 dias; renovar a cada 24h mantém folga ampla.
func (tm *TokenManager) StartAutoRefresh() {
	tm.mu.Lock()
	if tm.stopCh != nil {
		tm.mu.Unlock()
		return
	}
	tm.stopCh = make(chan struct{})
	stopCh := tm.stopCh
	tm.mu.Unlock()

	tm.wg.Add(1)

	go func() {
		defer tm.wg.Done()

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := tm.RefreshToken(); err != nil {
					logrus.WithError(err).Error("Erro na renovação automática do token")
				}
			case <-stopCh:
				return
			}
		}
	}()

	logrus.Info("Renovação automática de token iniciada")
}

func (tm *TokenManager) StopAutoRefresh() {
	tm.mu.Lock()
	if tm.stopCh == nil {
		tm.mu.Unlock()
		return
	}
	close(tm.stopCh)
	tm.stopCh = nil
	tm.mu.Unlock()

	tm.wg.Wait()
}

// calculateExpiration converte o expires_in relativo da Meta em um instante
// absoluto. Sem expires_in, assume o padrão de 60 dias dos tokens longos.
func calculateExpiration(expiresIn int64) time.Time {
	if expiresIn <= 0 {
		return time.Now().Add(60 * 24 * time.Hour)
	}

	return time.Now().Add(time.Duration(expiresIn) * time.Second)
}
