package detecting

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-guardian-api/infrastructure/repository"
	"github.com/vfg2006/campaign-guardian-api/internal/config"
	"github.com/vfg2006/campaign-guardian-api/internal/domain"
)

// Detector compara as métricas atuais de uma campanha com a última observação
// registrada e emite eventos de mudança significativa.
type Detector interface {
	// DetectChanges devolve zero ou mais eventos e, como efeito colateral,
	// sobrescreve o estado da campanha. A primeira observação de um ID é
	// sempre a linha de base: nenhum evento é emitido.
	DetectChanges(campaignID string, current domain.CampaignMetrics) []domain.ChangeEvent

	// States devolve uma cópia do mapeamento de estados conhecidos.
	States() map[string]domain.CampaignState
}

type Service struct {
	thresholds config.Detection
	ctrAverage float64
	cpmAverage float64
	ctrGood    float64
	stateRepo  repository.CampaignStateRepository
	now        func() time.Time

	// O mapa em memória é a fonte de verdade durante a vida do processo; o
	// repositório hidrata o mapa na primeira operação e recebe escritas em
	// melhor esforço. Falha de persistência nunca derruba a operação.
	mu       sync.Mutex
	states   map[string]domain.CampaignState
	hydrated bool

	// Serializa leitura-modificação-escrita por campanha; campanhas distintas
	// não se bloqueiam.
	locks map[string]*sync.Mutex
}

func NewService(cfg *config.Config, stateRepo repository.CampaignStateRepository) *Service {
	return &Service{
		thresholds: cfg.Detection,
		ctrAverage: cfg.Analysis.CTRAverage,
		cpmAverage: cfg.Analysis.CPMAverage,
		ctrGood:    cfg.Analysis.CTRGood,
		stateRepo:  stateRepo,
		now:        time.Now,
		states:     make(map[string]domain.CampaignState),
		locks:      make(map[string]*sync.Mutex),
	}
}

// hydrate carrega o estado persistido na primeira operação. Falha de carga é
// tratada como armazenamento vazio, nunca como erro.
func (s *Service) hydrate() {
	if s.hydrated {
		return
	}
	s.hydrated = true

	stored, err := s.stateRepo.LoadAll()
	if err != nil {
		logrus.WithError(err).Warn("detector: falha ao carregar estado persistido, iniciando com armazenamento vazio")
		return
	}

	for id, state := range stored {
		s.states[id] = state
	}

	logrus.WithField("campaigns", len(stored)).Debug("detector: estado de campanhas hidratado")
}

func (s *Service) lockFor(campaignID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hydrate()

	lock, ok := s.locks[campaignID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[campaignID] = lock
	}
	return lock
}

func (s *Service) DetectChanges(campaignID string, current domain.CampaignMetrics) []domain.ChangeEvent {
	lock := s.lockFor(campaignID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	prior, seen := s.states[campaignID]
	s.mu.Unlock()

	newState := domain.CampaignState{
		CTR:         current.CTR,
		CPM:         current.CPM,
		Spend:       current.Spend,
		Frequency:   current.Frequency,
		LastChecked: s.now(),
	}

	// Primeira observação: grava a linha de base e não emite evento.
	if !seen {
		s.store(campaignID, newState)
		logrus.WithField("campaign_id", campaignID).Debug("detector: linha de base registrada para campanha")
		return nil
	}

	ctrChangePct, ctrOK := percentChange(prior.CTR, current.CTR)
	cpmChangePct, cpmOK := percentChange(prior.CPM, current.CPM)

	events := make([]domain.ChangeEvent, 0)

	// As três condições são independentes; uma mesma observação pode disparar
	// mais de um evento.
	if ctrOK && ctrChangePct < s.thresholds.CTRCrashPct && current.CTR < s.ctrAverage {
		events = append(events, domain.ChangeEvent{
			Type:           domain.ChangeCTRCrash,
			Priority:       domain.PriorityCritical,
			Message:        fmt.Sprintf("CTR dropped %.1f%% (%.2f%% -> %.2f%%)", math.Abs(ctrChangePct), prior.CTR, current.CTR),
			Recommendation: "Review recent creative or audience changes and consider pausing the campaign",
		})
	}

	if cpmOK && cpmChangePct > s.thresholds.CPMSpikePct && current.CPM > s.cpmAverage {
		events = append(events, domain.ChangeEvent{
			Type:           domain.ChangeCPMSpike,
			Priority:       domain.PriorityUrgent,
			Message:        fmt.Sprintf("CPM spiked %.1f%% ($%.2f -> $%.2f)", cpmChangePct, prior.CPM, current.CPM),
			Recommendation: "Check auction competition and review the audience targeting",
		})
	}

	if ctrOK && ctrChangePct > s.thresholds.CTRBoostPct && current.CTR > s.ctrGood {
		events = append(events, domain.ChangeEvent{
			Type:           domain.ChangePerformanceBoost,
			Priority:       domain.PrioritySuccess,
			Message:        fmt.Sprintf("CTR jumped %.1f%% (%.2f%% -> %.2f%%)", ctrChangePct, prior.CTR, current.CTR),
			Recommendation: "Campaign is taking off, consider scaling up the budget",
		})
	}

	// O estado é sempre sobrescrito, tenha ou não havido evento.
	newState.PreviousCTR = prior.CTR
	newState.PreviousCPM = prior.CPM
	s.store(campaignID, newState)

	if len(events) == 0 {
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"events":      len(events),
	}).Info("detector: mudanças significativas detectadas")

	return events
}

// store atualiza o mapa em memória e persiste em melhor esforço.
func (s *Service) store(campaignID string, state domain.CampaignState) {
	s.mu.Lock()
	s.states[campaignID] = state
	s.mu.Unlock()

	if err := s.stateRepo.Upsert(campaignID, state); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Warn("detector: falha ao persistir estado da campanha, seguindo apenas em memória")
	}
}

func (s *Service) States() map[string]domain.CampaignState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hydrate()

	out := make(map[string]domain.CampaignState, len(s.states))
	for id, state := range s.states {
		out[id] = state
	}
	return out
}

// percentChange calcula a variação percentual protegida contra divisão por
// zero: sem linha de base anterior (valor zero) não há variação definida e a
// comparação é tratada como sem mudança.
func percentChange(prior, current float64) (float64, bool) {
	if prior == 0 || math.IsNaN(prior) || math.IsInf(prior, 0) {
		return 0, false
	}

	pct := (current - prior) / prior * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, false
	}

	return pct, true
}
