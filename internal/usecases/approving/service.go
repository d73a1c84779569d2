package approving

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-guardian-api/internal/config"
	"github.com/vfg2006/campaign-guardian-api/internal/domain"
	"github.com/vfg2006/campaign-guardian-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-guardian-api/pkg/utils"
)

// CampaignMutator é o colaborador externo que efetiva mutações em campanhas.
// Implementado pelo integrador do Meta; substituído por mock nos testes.
type CampaignMutator interface {
	UpdateCampaignStatus(campaignID string, status domain.CampaignStatus) error
}

// Approver gerencia o ciclo de vida das aprovações pendentes de ações
// destrutivas. Armazenamento em memória, restrito à vida do processo.
type Approver interface {
	Create(action domain.ActionTag, payload domain.ApprovalPayload) (*domain.ApprovalSummary, error)
	Resolve(id string, decision domain.ApprovalDecision) (*domain.ApprovalResolution, error)
	List() []domain.Approval
	SweepExpired() int
}

type Service struct {
	expiry  time.Duration
	mutator CampaignMutator
	now     func() time.Time

	mu        sync.RWMutex
	approvals map[string]*domain.Approval
}

func NewService(cfg *config.Config, mutator CampaignMutator) *Service {
	return &Service{
		expiry:    time.Duration(cfg.Approval.ExpiryHours) * time.Hour,
		mutator:   mutator,
		now:       time.Now,
		approvals: make(map[string]*domain.Approval),
	}
}

// WithClock troca a fonte de tempo. Usado nos testes para simular expiração.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create registra uma nova aprovação pendente e devolve o resumo com o ID e o
// prazo de expiração. O payload carrega apenas dados, nunca um callable.
func (s *Service) Create(action domain.ActionTag, payload domain.ApprovalPayload) (*domain.ApprovalSummary, error) {
	switch action {
	case domain.ActionPauseCampaigns, domain.ActionExecuteOptimizations:
	default:
		return nil, NewApprovalError(ErrUnknownAction, apiErrors.ErrInvalidRequest, string(action))
	}

	if action == domain.ActionPauseCampaigns && len(payload.CampaignIDs) == 0 {
		return nil, NewApprovalError(ErrEmptyCampaignIDs, apiErrors.ErrMissingRequiredData, "PAUSE_CAMPAIGNS requer ao menos uma campanha")
	}

	now := s.now()
	approval := &domain.Approval{
		ID:        utils.GenerateApprovalID(now),
		Action:    action,
		Payload:   payload,
		Status:    domain.ApprovalStatusPending,
		CreatedAt: now,
		ExpiresAt: now.Add(s.expiry),
	}

	s.mu.Lock()
	s.approvals[approval.ID] = approval
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"approval_id": approval.ID,
		"action":      approval.Action,
		"expires_at":  approval.ExpiresAt,
	}).Info("aprovação pendente criada")

	return &domain.ApprovalSummary{
		ID:        approval.ID,
		Action:    approval.Action,
		Payload:   approval.Payload,
		ExpiresAt: approval.ExpiresAt,
	}, nil
}

// Resolve aplica a decisão explícita sobre uma aprovação pendente. A expiração
// é verificada de forma preguiçosa aqui: uma aprovação vencida só muda para
// expired quando alguém tenta resolvê-la (ou quando a varredura opcional roda).
func (s *Service) Resolve(id string, decision domain.ApprovalDecision) (*domain.ApprovalResolution, error) {
	if decision != domain.DecisionApprove && decision != domain.DecisionReject {
		return nil, NewApprovalError(ErrInvalidDecision, apiErrors.ErrInvalidRequest, string(decision))
	}

	s.mu.Lock()
	approval, ok := s.approvals[id]
	if !ok {
		s.mu.Unlock()
		return nil, NewApprovalErrorWithID(ErrApprovalNotFound, apiErrors.ErrApprovalNotFound, id, "")
	}

	if approval.Status != domain.ApprovalStatusPending {
		status := approval.Status
		s.mu.Unlock()
		return nil, NewApprovalErrorWithID(ErrAlreadyProcessed, apiErrors.ErrApprovalProcessed, id, status)
	}

	if s.now().After(approval.ExpiresAt) {
		approval.Status = domain.ApprovalStatusExpired
		s.mu.Unlock()

		logrus.WithField("approval_id", id).Warn("aprovação expirada no momento da resolução")
		return nil, NewApprovalErrorWithID(ErrApprovalExpired, apiErrors.ErrApprovalExpired, id, domain.ApprovalStatusExpired)
	}

	if decision == domain.DecisionReject {
		approval.Status = domain.ApprovalStatusRejected
		s.mu.Unlock()

		logrus.WithField("approval_id", id).Info("aprovação rejeitada")
		return &domain.ApprovalResolution{ID: id, Status: domain.ApprovalStatusRejected}, nil
	}

	// A transição para approved acontece antes de liberar o lock; a execução
	// dos efeitos roda fora dele para não segurar o mapa durante chamadas à
	// API externa.
	approval.Status = domain.ApprovalStatusApproved
	action := approval.Action
	payload := approval.Payload
	s.mu.Unlock()

	results := s.execute(action, payload)

	logrus.WithFields(logrus.Fields{
		"approval_id": id,
		"action":      action,
		"items":       len(results),
	}).Info("aprovação executada")

	return &domain.ApprovalResolution{
		ID:      id,
		Status:  domain.ApprovalStatusApproved,
		Results: results,
	}, nil
}

// execute despacha a ação aprovada para o executor específico. Falha em um
// item não aborta os demais: o resultado é reportado item a item.
func (s *Service) execute(action domain.ActionTag, payload domain.ApprovalPayload) []domain.CampaignActionResult {
	if action != domain.ActionPauseCampaigns {
		return nil
	}

	results := make([]domain.CampaignActionResult, 0, len(payload.CampaignIDs))
	for _, campaignID := range payload.CampaignIDs {
		result := domain.CampaignActionResult{CampaignID: campaignID, Success: true}

		if err := s.mutator.UpdateCampaignStatus(campaignID, domain.CampaignStatusPaused); err != nil {
			result.Success = false
			result.Error = err.Error()

			logrus.WithFields(logrus.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("erro ao pausar campanha durante execução de aprovação")
		}

		results = append(results, result)
	}

	return results
}

// List devolve as aprovações como estão armazenadas. Entradas vencidas mas
// nunca resolvidas ainda aparecem como pending: a verificação de expiração é
// preguiçosa por contrato.
func (s *Service) List() []domain.Approval {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Approval, 0, len(s.approvals))
	for _, approval := range s.approvals {
		out = append(out, *approval)
	}
	return out
}

// SweepExpired marca como expiradas as aprovações pendentes já vencidas.
// Melhoria estrita sobre o contrato preguiçoso; a verificação no Resolve
// continua sendo a garantia de correção.
func (s *Service) SweepExpired() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	swept := 0
	for _, approval := range s.approvals {
		if approval.Status == domain.ApprovalStatusPending && now.After(approval.ExpiresAt) {
			approval.Status = domain.ApprovalStatusExpired
			swept++
		}
	}

	if swept > 0 {
		logrus.WithField("swept", swept).Info("aprovações pendentes expiradas pela varredura")
	}

	return swept
}
