package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	integratorMocks "github.com/vfg2006/campaign-guardian-api/infrastructure/integrator/meta/mocks"
	repositoryMocks "github.com/vfg2006/campaign-guardian-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-guardian-api/internal/config"
	"github.com/vfg2006/campaign-guardian-api/internal/domain"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/detecting"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/notifying"
)

func testConfig() *config.Config {
	return &config.Config{
		Meta: config.Meta{AccountID: "act_default"},
		Analysis: config.Analysis{
			CTRCritical:       0.5,
			CTRAverage:        0.8,
			CTRGood:           1.5,
			CPMCritical:       75,
			CPMAverage:        50,
			FrequencyCritical: 7,
			FrequencyWarning:  5,
			ROASPoor:          1.5,
			ROASGood:          3,
			SpendAlert:        50,
			BudgetCap:         200,
		},
		Detection: config.Detection{
			CTRCrashPct: -30,
			CPMSpikePct: 50,
			CTRBoostPct: 50,
		},
	}
}

func doRequest(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(http.MethodPost, "/v1/tools/any", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	decoded := make(map[string]any)
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))

	return rec, decoded
}

func TestGetAccountInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := integratorMocks.NewMockIntegrator(ctrl)

	service.EXPECT().AccountInfo("act_123").Return(&domain.AccountInfo{
		ID:       "act_123",
		Name:     "Acme Store",
		Currency: "BRL",
		Status:   "ACTIVE",
	}, nil)

	rec, body := doRequest(t, GetAccountInfo(service, testConfig()), `{"account_id":"act_123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "act_123", body["id"])
	assert.Equal(t, "Acme Store", body["name"])
	assert.NotContains(t, body, "error")
}

func TestGetAccountInfoUsaContaPadrao(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := integratorMocks.NewMockIntegrator(ctrl)

	service.EXPECT().AccountInfo("act_default").Return(&domain.AccountInfo{ID: "act_default"}, nil)

	rec, body := doRequest(t, GetAccountInfo(service, testConfig()), `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "act_default", body["id"])
}

func TestFronteiraDeFerramentasDevolveErroComoDado(t *testing.T) {
	tests := []struct {
		name    string
		handler func(service *integratorMocks.MockIntegrator) http.Handler
		body    string
		tool    string
		errPart string
	}{
		{
			name: "falha do integrador",
			handler: func(service *integratorMocks.MockIntegrator) http.Handler {
				service.EXPECT().AccountInfo("act_123").Return(nil, errors.New("Graph API indisponível"))
				return GetAccountInfo(service, testConfig())
			},
			body:    `{"account_id":"act_123"}`,
			tool:    "get_account_info",
			errPart: "Graph API indisponível",
		},
		{
			name: "json mal formado",
			handler: func(service *integratorMocks.MockIntegrator) http.Handler {
				return GetAccountInfo(service, testConfig())
			},
			body:    `{"account_id":`,
			tool:    "get_account_info",
			errPart: "entrada inválida",
		},
		{
			name: "campaign_id obrigatório em get_adsets",
			handler: func(service *integratorMocks.MockIntegrator) http.Handler {
				return GetAdSets(service)
			},
			body:    `{}`,
			tool:    "get_adsets",
			errPart: "campaign_id é obrigatório",
		},
		{
			name: "data inválida em get_insights",
			handler: func(service *integratorMocks.MockIntegrator) http.Handler {
				return GetInsights(service, testConfig())
			},
			body:    `{"start_date":"01/06/2025"}`,
			tool:    "get_insights",
			errPart: "start_date inválida",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := integratorMocks.NewMockIntegrator(ctrl)

			rec, body := doRequest(t, tt.handler(service), tt.body)

			// Erro é sempre dado com status 200, nunca status HTTP de falha.
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.tool, body["tool"])
			assert.Contains(t, body["error"], tt.errPart)
		})
	}
}

func TestAnalyzeCampaignHealth(t *testing.T) {
	cfg := testConfig()
	ctrl := gomock.NewController(t)
	stateRepo := repositoryMocks.NewMockCampaignStateRepository(ctrl)

	analyzer := analyzing.NewService(cfg)
	detector := detecting.NewService(cfg, stateRepo)
	formatter := notifying.NewService()

	h := AnalyzeCampaignHealth(analyzer, detector, formatter)

	t.Run("metrics é obrigatório", func(t *testing.T) {
		rec, body := doRequest(t, h, `{}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "analyze_campaign_health", body["tool"])
		assert.Contains(t, body["error"], "metrics é obrigatório")
	})

	t.Run("métricas mal formadas valem zero", func(t *testing.T) {
		rec, body := doRequest(t, h, `{"metrics":{"ctr":"not-a-number","cpm":"30","spend":10}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, body, "error")

		analysis, ok := body["analysis"].(map[string]any)
		if assert.True(t, ok) {
			// CTR coagido para 0 cai na faixa crítica.
			assert.Contains(t, analysis["issues"], "Critical CTR: 0.00%")
		}
	})

	t.Run("com campaign_id roda também o detector", func(t *testing.T) {
		stateRepo.EXPECT().LoadAll().Return(nil, nil)
		stateRepo.EXPECT().Upsert("123", gomock.Any()).Return(nil)

		rec, body := doRequest(t, h, `{"campaign_id":"123","metrics":{"ctr":1.2,"cpm":30,"spend":20,"frequency":2}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "123", body["campaign_id"])
		assert.Contains(t, body, "change_events")
	})

	t.Run("format whatsapp devolve mensagem pronta", func(t *testing.T) {
		rec, body := doRequest(t, h, `{"campaign_name":"Campaign A","format":"whatsapp","metrics":{"ctr":1.2,"cpm":30,"spend":20,"frequency":2}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		message, ok := body["message"].(string)
		if assert.True(t, ok) {
			assert.Contains(t, message, "Performance summary — Campaign A")
		}
	})

	t.Run("format desconhecido é erro de validação", func(t *testing.T) {
		rec, body := doRequest(t, h, `{"format":"telegram","metrics":{"ctr":1.2}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, body["error"], "format inválido")
	})
}

func TestDetectCampaignChanges(t *testing.T) {
	cfg := testConfig()
	ctrl := gomock.NewController(t)
	stateRepo := repositoryMocks.NewMockCampaignStateRepository(ctrl)

	detector := detecting.NewService(cfg, stateRepo)
	h := DetectCampaignChanges(detector, notifying.NewService())

	t.Run("campaign_id é obrigatório", func(t *testing.T) {
		rec, body := doRequest(t, h, `{"metrics":{"ctr":1.0}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, body["error"], "campaign_id é obrigatório")
	})

	t.Run("crash com mensagem formatada", func(t *testing.T) {
		stateRepo.EXPECT().LoadAll().Return(map[string]domain.CampaignState{
			"123": {CTR: 1.0, CPM: 30},
		}, nil)
		stateRepo.EXPECT().Upsert("123", gomock.Any()).Return(nil)

		rec, body := doRequest(t, h, `{"campaign_id":"123","campaign_name":"Campaign A","format":"whatsapp","metrics":{"ctr":0.4,"cpm":30}}`)

		assert.Equal(t, http.StatusOK, rec.Code)

		events, ok := body["events"].([]any)
		if assert.True(t, ok) && assert.Len(t, events, 1) {
			event := events[0].(map[string]any)
			assert.Equal(t, "CTR_CRASH", event["type"])
		}

		message, ok := body["message"].(string)
		if assert.True(t, ok) {
			assert.Contains(t, message, "Campaign alert — Campaign A")
			assert.Contains(t, message, "CTR dropped 60.0%")
		}
	})
}
