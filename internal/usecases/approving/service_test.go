package approving

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/campaign-guardian-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/campaign-guardian-api/internal/config"
	"github.com/vfg2006/campaign-guardian-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Approval: config.Approval{ExpiryHours: 2},
	}
}

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time { return c.current }

func (c *fakeClock) Advance(d time.Duration) { c.current = c.current.Add(d) }

func newTestService(t *testing.T) (*Service, *mocks.MockIntegrator, *fakeClock) {
	ctrl := gomock.NewController(t)
	mutator := mocks.NewMockIntegrator(ctrl)
	clock := &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	return NewService(testConfig(), mutator).WithClock(clock.Now), mutator, clock
}

func TestCreate(t *testing.T) {
	service, _, clock := newTestService(t)

	summary, err := service.Create(domain.ActionPauseCampaigns, domain.ApprovalPayload{
		CampaignIDs: []string{"123", "456"},
		AccountID:   "act_789",
		Reason:      "CTR crítico com gasto alto",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, summary.ID)
	assert.Equal(t, domain.ActionPauseCampaigns, summary.Action)
	assert.Equal(t, []string{"123", "456"}, summary.Payload.CampaignIDs)
	assert.Equal(t, clock.current.Add(2*time.Hour), summary.ExpiresAt)

	approvals := service.List()
	if assert.Len(t, approvals, 1) {
		assert.Equal(t, domain.ApprovalStatusPending, approvals[0].Status)
	}
}

func TestCreateValidacoes(t *testing.T) {
	tests := []struct {
		name        string
		action      domain.ActionTag
		payload     domain.ApprovalPayload
		expectedErr error
	}{
		{
			name:        "ação desconhecida é rejeitada",
			action:      domain.ActionTag("DELETE_ACCOUNT"),
			payload:     domain.ApprovalPayload{CampaignIDs: []string{"123"}},
			expectedErr: ErrUnknownAction,
		},
		{
			name:        "pausa sem campanhas é rejeitada",
			action:      domain.ActionPauseCampaigns,
			payload:     domain.ApprovalPayload{},
			expectedErr: ErrEmptyCampaignIDs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestService(t)

			summary, err := service.Create(tt.action, tt.payload)

			assert.Nil(t, summary)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestResolveAprovacaoExecutaPausas(t *testing.T) {
	service, mutator, _ := newTestService(t)

	summary, err := service.Create(domain.ActionPauseCampaigns, domain.ApprovalPayload{
		CampaignIDs: []string{"123", "456"},
	})
	assert.NoError(t, err)

	mutator.EXPECT().UpdateCampaignStatus("123", domain.CampaignStatusPaused).Return(nil)
	mutator.EXPECT().UpdateCampaignStatus("456", domain.CampaignStatusPaused).Return(nil)

	resolution, err := service.Resolve(summary.ID, domain.DecisionApprove)

	assert.NoError(t, err)
	assert.Equal(t, domain.ApprovalStatusApproved, resolution.Status)
	if assert.Len(t, resolution.Results, 2) {
		assert.True(t, resolution.Results[0].Success)
		assert.True(t, resolution.Results[1].Success)
	}
}

func TestResolveFalhaParcialNaoAbortaDemais(t *testing.T) {
	service, mutator, _ := newTestService(t)

	summary, err := service.Create(domain.ActionPauseCampaigns, domain.ApprovalPayload{
		CampaignIDs: []string{"123", "456", "789"},
	})
	assert.NoError(t, err)

	mutator.EXPECT().UpdateCampaignStatus("123", domain.CampaignStatusPaused).Return(nil)
	mutator.EXPECT().UpdateCampaignStatus("456", domain.CampaignStatusPaused).Return(errors.New("campanha não encontrada"))
	mutator.EXPECT().UpdateCampaignStatus("789", domain.CampaignStatusPaused).Return(nil)

	resolution, err := service.Resolve(summary.ID, domain.DecisionApprove)

	assert.NoError(t, err)
	if assert.Len(t, resolution.Results, 3) {
		assert.True(t, resolution.Results[0].Success)
		assert.False(t, resolution.Results[1].Success)
		assert.Equal(t, "campanha não encontrada", resolution.Results[1].Error)
		assert.True(t, resolution.Results[2].Success)
	}
}

func TestResolveRejeicaoNaoChamaExecutor(t *testing.T) {
	service, _, _ := newTestService(t)

	summary, err := service.Create(domain.ActionPauseCampaigns, domain.ApprovalPayload{
		CampaignIDs: []string{"123"},
	})
	assert.NoError(t, err)

	resolution, err := service.Resolve(summary.ID, domain.DecisionReject)

	assert.NoError(t, err)
	assert.Equal(t, domain.ApprovalStatusRejected, resolution.Status)
	assert.Empty(t, resolution.Results)
}

func TestResolveErros(t *testing.T) {
	t.Run("decisão inválida", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.Resolve("AP-123", domain.ApprovalDecision("MAYBE"))
		assert.ErrorIs(t, err, ErrInvalidDecision)
	})

	t.Run("aprovação inexistente", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.Resolve("AP-nao-existe", domain.DecisionApprove)
		assert.ErrorIs(t, err, ErrApprovalNotFound)
	})

	t.Run("aprovação já processada", func(t *testing.T) {
		service, _, _ := newTestService(t)

		summary, err := service.Create(domain.ActionPauseCampaigns, domain.ApprovalPayload{
			CampaignIDs: []string{"123"},
		})
		assert.NoError(t, err)

		_, err = service.Resolve(summary.ID, domain.DecisionReject)
		assert.NoError(t, err)

		_, err = service.Resolve(summary.ID, domain.DecisionApprove)
		assert.ErrorIs(t, err, ErrAlreadyProcessed)

		var approvalErr *ApprovalError
		if assert.ErrorAs(t, err, &approvalErr) {
			assert.Equal(t, domain.ApprovalStatusRejected, approvalErr.Status)
		}
	})
}

func TestResolveExpiracaoPreguicosa(t *testing.T) {
	service, _, clock := newTestService(t)

	summary, err := service.Create(domain.ActionPauseCampaigns, domain.ApprovalPayload{
		CampaignIDs: []string{"123"},
	})
	assert.NoError(t, err)

	clock.Advance(2*time.Hour + time.Minute)

	// Aprovação vencida só muda de status quando alguém tenta resolvê-la.
	_, err = service.Resolve(summary.ID, domain.DecisionApprove)
	assert.ErrorIs(t, err, ErrApprovalExpired)

	approvals := service.List()
	if assert.Len(t, approvals, 1) {
		assert.Equal(t, domain.ApprovalStatusExpired, approvals[0].Status)
	}

	// Resolver de novo agora cai em já processada, não em expirada.
	_, err = service.Resolve(summary.ID, domain.DecisionReject)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestListMantemVencidasComoPendentes(t *testing.T) {
	service, _, clock := newTestService(t)

	_, err := service.Create(domain.ActionPauseCampaigns, domain.ApprovalPayload{
		CampaignIDs: []string{"123"},
	})
	assert.NoError(t, err)

	clock.Advance(3 * time.Hour)

	// Listar não resolve: a entrada vencida continua pending até que alguém
	// tente resolvê-la ou a varredura rode.
	approvals := service.List()
	if assert.Len(t, approvals, 1) {
		assert.Equal(t, domain.ApprovalStatusPending, approvals[0].Status)
	}
}

func TestSweepExpired(t *testing.T) {
	service, _, clock := newTestService(t)

	rejected, err := service.Create(domain.ActionPauseCampaigns, domain.ApprovalPayload{
		CampaignIDs: []string{"123"},
	})
	assert.NoError(t, err)

	_, err = service.Resolve(rejected.ID, domain.DecisionReject)
	assert.NoError(t, err)

	_, err = service.Create(domain.ActionPauseCampaigns, domain.ApprovalPayload{
		CampaignIDs: []string{"456"},
	})
	assert.NoError(t, err)

	clock.Advance(90 * time.Minute)

	stillFresh, err := service.Create(domain.ActionPauseCampaigns, domain.ApprovalPayload{
		CampaignIDs: []string{"789"},
	})
	assert.NoError(t, err)

	clock.Advance(time.Hour)

	// Somente a pendente vencida é varrida: a rejeitada e a ainda válida ficam.
	assert.Equal(t, 1, service.SweepExpired())

	statuses := make(map[string]domain.ApprovalStatus)
	for _, approval := range service.List() {
		statuses[approval.ID] = approval.Status
	}

	assert.Equal(t, domain.ApprovalStatusRejected, statuses[rejected.ID])
	assert.Equal(t, domain.ApprovalStatusPending, statuses[stillFresh.ID])

	assert.Zero(t, service.SweepExpired())
}
