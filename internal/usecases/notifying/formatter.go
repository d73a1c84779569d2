package notifying

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/campaign-guardian-api/internal/domain"
)

// MessageKind identifica o modelo de mensagem a ser renderizado.
type MessageKind string

const (
	KindPerformanceSummary MessageKind = "performance_summary"
	KindApprovalRequest    MessageKind = "approval_request"
	KindCampaignAlert      MessageKind = "campaign_alert"
	KindActionCompleted    MessageKind = "action_completed"
	KindActionCancelled    MessageKind = "action_cancelled"
	KindScalingOpportunity MessageKind = "scaling_opportunity"
	KindBudgetAlert        MessageKind = "budget_alert"
)

var (
	ErrUnknownKind    = errors.New("unknown message kind")
	ErrInvalidPayload = errors.New("payload does not match message kind")
)

// Mapeamento fixo de prioridade para marcador de apresentação.
var priorityGlyphs = map[domain.NotificationPriority]string{
	domain.PriorityCritical: "🚨",
	domain.PriorityUrgent:   "⚠️",
	domain.PriorityWarning:  "⚡",
	domain.PriorityInfo:     "ℹ️",
	domain.PrioritySuccess:  "✅",
}

const fallbackGlyph = "📢"

// Glyph devolve o marcador da prioridade, com fallback definido para
// prioridades desconhecidas.
func Glyph(priority domain.NotificationPriority) string {
	if glyph, ok := priorityGlyphs[priority]; ok {
		return glyph
	}
	return fallbackGlyph
}

// Payloads tipados por modelo de mensagem.

type PerformanceSummary struct {
	AccountName     string
	Period          string
	Spend           float64
	Score           int
	Status          domain.HealthStatus
	Issues          []string
	Recommendations []string
}

type ApprovalRequest struct {
	ID        string
	Action    domain.ActionTag
	Campaigns []string
	Reason    string
	ExpiresAt time.Time
}

type CampaignAlert struct {
	CampaignName string
	Events       []domain.ChangeEvent
}

type ActionCompleted struct {
	ApprovalID string
	Action     domain.ActionTag
	Results    []domain.CampaignActionResult
}

type ActionCancelled struct {
	ApprovalID string
	Action     domain.ActionTag
}

type ScalingOpportunity struct {
	CampaignName    string
	CTR             float64
	CurrentBudget   float64
	SuggestedBudget float64
}

type BudgetAlert struct {
	AccountName string
	Spend       float64
	DailyBudget float64
	PacingPct   float64
}

// Formatter converte resultados de análise, eventos e aprovações em mensagens
// prontas para envio. Templating puro e determinístico: a mesma entrada produz
// sempre a mesma saída, byte a byte.
type Formatter interface {
	FormatWhatsApp(kind MessageKind, payload any) (string, error)
	FormatSlack(kind MessageKind, payload any) ([]SlackBlock, error)
}

type Service struct{}

func NewService() Formatter {
	return &Service{}
}

func (s *Service) FormatWhatsApp(kind MessageKind, payload any) (string, error) {
	switch kind {
	case KindPerformanceSummary:
		p, ok := payload.(PerformanceSummary)
		if !ok {
			return "", ErrInvalidPayload
		}
		return formatPerformanceSummary(p), nil

	case KindApprovalRequest:
		p, ok := payload.(ApprovalRequest)
		if !ok {
			return "", ErrInvalidPayload
		}
		return formatApprovalRequest(p), nil

	case KindCampaignAlert:
		p, ok := payload.(CampaignAlert)
		if !ok {
			return "", ErrInvalidPayload
		}
		return formatCampaignAlert(p), nil

	case KindActionCompleted:
		p, ok := payload.(ActionCompleted)
		if !ok {
			return "", ErrInvalidPayload
		}
		return formatActionCompleted(p), nil

	case KindActionCancelled:
		p, ok := payload.(ActionCancelled)
		if !ok {
			return "", ErrInvalidPayload
		}
		return fmt.Sprintf("❌ *Action cancelled*\n\nRequest %s (%s) was rejected. No changes were applied.", p.ApprovalID, p.Action), nil

	case KindScalingOpportunity:
		p, ok := payload.(ScalingOpportunity)
		if !ok {
			return "", ErrInvalidPayload
		}
		return fmt.Sprintf(
			"🚀 *Scaling opportunity*\n\nCampaign *%s* is performing above target (CTR %.2f%%).\nSuggested budget: $%.2f/day (current $%.2f/day).",
			p.CampaignName, p.CTR, p.SuggestedBudget, p.CurrentBudget,
		), nil

	case KindBudgetAlert:
		p, ok := payload.(BudgetAlert)
		if !ok {
			return "", ErrInvalidPayload
		}
		return fmt.Sprintf(
			"⚡ *Budget alert*\n\nAccount *%s* has spent $%.2f of a $%.2f daily budget (%.0f%% pacing).",
			p.AccountName, p.Spend, p.DailyBudget, p.PacingPct,
		), nil
	}

	return "", ErrUnknownKind
}

func formatPerformanceSummary(p PerformanceSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 *Performance summary — %s*\n", p.AccountName)
	fmt.Fprintf(&b, "Period: %s\n", p.Period)
	fmt.Fprintf(&b, "Spend: $%.2f\n", p.Spend)
	fmt.Fprintf(&b, "Health score: %d/100 (%s)\n", p.Score, p.Status)

	if len(p.Issues) > 0 {
		b.WriteString("\n*Issues*\n")
		for _, issue := range p.Issues {
			fmt.Fprintf(&b, "• %s\n", issue)
		}
	}

	if len(p.Recommendations) > 0 {
		b.WriteString("\n*Recommendations*\n")
		for _, rec := range p.Recommendations {
			fmt.Fprintf(&b, "• %s\n", rec)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatApprovalRequest(p ApprovalRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🔐 *Approval required*\n\n")
	fmt.Fprintf(&b, "Action: %s\n", p.Action)
	if p.Reason != "" {
		fmt.Fprintf(&b, "Reason: %s\n", p.Reason)
	}

	if len(p.Campaigns) > 0 {
		b.WriteString("Campaigns:\n")
		for _, campaign := range p.Campaigns {
			fmt.Fprintf(&b, "• %s\n", campaign)
		}
	}

	fmt.Fprintf(&b, "\nApproval ID: %s\n", p.ID)
	fmt.Fprintf(&b, "Expires at: %s", p.ExpiresAt.UTC().Format("2006-01-02 15:04 MST"))

	return b.String()
}

func formatCampaignAlert(p CampaignAlert) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📡 *Campaign alert — %s*\n", p.CampaignName)
	for _, event := range p.Events {
		fmt.Fprintf(&b, "\n%s *%s*\n%s\n→ %s\n", Glyph(event.Priority), event.Type, event.Message, event.Recommendation)
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatActionCompleted(p ActionCompleted) string {
	var b strings.Builder

	fmt.Fprintf(&b, "✅ *Action completed*\n\nRequest %s (%s) was executed.\n", p.ApprovalID, p.Action)
	for _, result := range p.Results {
		if result.Success {
			fmt.Fprintf(&b, "• %s: ok\n", result.CampaignID)
		} else {
			fmt.Fprintf(&b, "• %s: failed (%s)\n", result.CampaignID, result.Error)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
