package detecting

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/campaign-guardian-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-guardian-api/internal/config"
	"github.com/vfg2006/campaign-guardian-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Analysis: config.Analysis{
			CTRAverage: 0.8,
			CTRGood:    1.5,
			CPMAverage: 50,
		},
		Detection: config.Detection{
			CTRCrashPct: -30,
			CPMSpikePct: 50,
			CTRBoostPct: 50,
		},
	}
}

func newTestService(t *testing.T, stored map[string]domain.CampaignState) (*Service, *mocks.MockCampaignStateRepository) {
	ctrl := gomock.NewController(t)
	stateRepo := mocks.NewMockCampaignStateRepository(ctrl)
	stateRepo.EXPECT().LoadAll().Return(stored, nil)

	return NewService(testConfig(), stateRepo), stateRepo
}

func TestDetectChangesPrimeiraObservacao(t *testing.T) {
	service, stateRepo := newTestService(t, nil)

	stateRepo.EXPECT().Upsert("123", gomock.Any()).Return(nil)

	events := service.DetectChanges("123", domain.CampaignMetrics{CTR: 1.0, CPM: 30, Spend: 50, Frequency: 2})

	// A primeira observação é sempre linha de base: nenhum evento.
	assert.Nil(t, events)

	states := service.States()
	if assert.Contains(t, states, "123") {
		assert.Equal(t, 1.0, states["123"].CTR)
		assert.Equal(t, 30.0, states["123"].CPM)
		assert.Zero(t, states["123"].PreviousCTR)
	}
}

func TestDetectChanges(t *testing.T) {
	tests := []struct {
		name          string
		prior         domain.CampaignState
		current       domain.CampaignMetrics
		expectedTypes []domain.ChangeEventType
	}{
		{
			name:          "queda de ctr abaixo da média dispara ctr_crash",
			prior:         domain.CampaignState{CTR: 1.0, CPM: 30},
			current:       domain.CampaignMetrics{CTR: 0.5, CPM: 30},
			expectedTypes: []domain.ChangeEventType{domain.ChangeCTRCrash},
		},
		{
			name:          "queda de ctr que termina acima da média não dispara evento",
			prior:         domain.CampaignState{CTR: 2.0, CPM: 30},
			current:       domain.CampaignMetrics{CTR: 1.3, CPM: 30},
			expectedTypes: nil,
		},
		{
			name:          "salto de cpm acima da média dispara cpm_spike",
			prior:         domain.CampaignState{CTR: 1.0, CPM: 40},
			current:       domain.CampaignMetrics{CTR: 1.0, CPM: 70},
			expectedTypes: []domain.ChangeEventType{domain.ChangeCPMSpike},
		},
		{
			name:          "salto de cpm que fica abaixo da média não dispara evento",
			prior:         domain.CampaignState{CTR: 1.0, CPM: 20},
			current:       domain.CampaignMetrics{CTR: 1.0, CPM: 40},
			expectedTypes: nil,
		},
		{
			name:          "salto de ctr acima do bom dispara performance_boost",
			prior:         domain.CampaignState{CTR: 1.2, CPM: 30},
			current:       domain.CampaignMetrics{CTR: 2.0, CPM: 30},
			expectedTypes: []domain.ChangeEventType{domain.ChangePerformanceBoost},
		},
		{
			name:          "ctr zero anterior não tem linha de base e não dispara evento",
			prior:         domain.CampaignState{CTR: 0, CPM: 0},
			current:       domain.CampaignMetrics{CTR: 0.3, CPM: 100},
			expectedTypes: nil,
		},
		{
			name:          "crash de ctr e spike de cpm na mesma observação",
			prior:         domain.CampaignState{CTR: 1.0, CPM: 40},
			current:       domain.CampaignMetrics{CTR: 0.4, CPM: 80},
			expectedTypes: []domain.ChangeEventType{domain.ChangeCTRCrash, domain.ChangeCPMSpike},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, stateRepo := newTestService(t, map[string]domain.CampaignState{
				"123": tt.prior,
			})

			stateRepo.EXPECT().Upsert("123", gomock.Any()).Return(nil)

			events := service.DetectChanges("123", tt.current)

			if tt.expectedTypes == nil {
				assert.Nil(t, events)
			} else if assert.Len(t, events, len(tt.expectedTypes)) {
				for i, expectedType := range tt.expectedTypes {
					assert.Equal(t, expectedType, events[i].Type)
				}
			}

			// O estado é sempre sobrescrito, com os valores anteriores mantidos.
			state := service.States()["123"]
			assert.Equal(t, tt.current.CTR, state.CTR)
			assert.Equal(t, tt.current.CPM, state.CPM)
			assert.Equal(t, tt.prior.CTR, state.PreviousCTR)
			assert.Equal(t, tt.prior.CPM, state.PreviousCPM)
		})
	}
}

func TestDetectChangesFalhaDeCargaComecaVazio(t *testing.T) {
	ctrl := gomock.NewController(t)
	stateRepo := mocks.NewMockCampaignStateRepository(ctrl)
	stateRepo.EXPECT().LoadAll().Return(nil, errors.New("arquivo corrompido"))
	stateRepo.EXPECT().Upsert("123", gomock.Any()).Return(nil)

	service := NewService(testConfig(), stateRepo)

	// Falha de carga vira armazenamento vazio: a observação é linha de base.
	events := service.DetectChanges("123", domain.CampaignMetrics{CTR: 1.0, CPM: 30})
	assert.Nil(t, events)
}

func TestDetectChangesFalhaDePersistenciaNaoPropaga(t *testing.T) {
	service, stateRepo := newTestService(t, map[string]domain.CampaignState{
		"123": {CTR: 1.0, CPM: 40},
	})

	stateRepo.EXPECT().Upsert("123", gomock.Any()).Return(errors.New("conexão perdida"))

	events := service.DetectChanges("123", domain.CampaignMetrics{CTR: 0.4, CPM: 80})

	// A falha de escrita é registrada e engolida; os eventos saem normalmente
	// e o estado em memória segue atualizado.
	assert.Len(t, events, 2)
	assert.Equal(t, 0.4, service.States()["123"].CTR)
}

func TestDetectChangesIdempotenciaAposSobrescrita(t *testing.T) {
	service, stateRepo := newTestService(t, map[string]domain.CampaignState{
		"123": {CTR: 1.0, CPM: 30},
	})

	stateRepo.EXPECT().Upsert("123", gomock.Any()).Return(nil).Times(2)

	current := domain.CampaignMetrics{CTR: 0.5, CPM: 30}

	first := service.DetectChanges("123", current)
	assert.Len(t, first, 1)

	// Repetir as mesmas métricas não dispara de novo: a variação agora é zero.
	second := service.DetectChanges("123", current)
	assert.Nil(t, second)
}

func TestStatesDevolveCopia(t *testing.T) {
	service, stateRepo := newTestService(t, nil)
	stateRepo.EXPECT().Upsert("123", gomock.Any()).Return(nil)

	service.DetectChanges("123", domain.CampaignMetrics{CTR: 1.0})

	states := service.States()
	states["123"] = domain.CampaignState{CTR: 99}

	assert.Equal(t, 1.0, service.States()["123"].CTR)
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name        string
		prior       float64
		current     float64
		expectedPct float64
		expectedOK  bool
	}{
		{name: "variação negativa", prior: 2.0, current: 1.0, expectedPct: -50, expectedOK: true},
		{name: "variação positiva", prior: 1.0, current: 1.5, expectedPct: 50, expectedOK: true},
		{name: "sem linha de base anterior", prior: 0, current: 5, expectedPct: 0, expectedOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct, ok := percentChange(tt.prior, tt.current)
			assert.Equal(t, tt.expectedOK, ok)
			assert.InDelta(t, tt.expectedPct, pct, 0.0001)
		})
	}
}
