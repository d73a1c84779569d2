package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-guardian-api/internal/domain"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/approving"
	"github.com/vfg2006/campaign-guardian-api/internal/usecases/notifying"
	"github.com/vfg2006/campaign-guardian-api/pkg/log"
)

// PauseCampaignsInput é a entrada da ferramenta pause_campaigns. A pausa nunca
// é executada de imediato: a ferramenta registra uma aprovação pendente e
// devolve a mensagem de confirmação para o operador.
type PauseCampaignsInput struct {
	CampaignIDs []string `json:"campaign_ids"`
	AccountID   string   `json:"account_id,omitempty"`
	Reason      string   `json:"reason,omitempty"`
}

func PauseCampaigns(approver approving.Approver, formatter notifying.Formatter) http.Handler {
	const tool = "pause_campaigns"

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input PauseCampaignsInput
		if err := decodeToolInput(r, &input); err != nil {
			writeToolError(w, r, tool, "entrada inválida: "+err.Error())
			return
		}

		summary, err := approver.Create(domain.ActionPauseCampaigns, domain.ApprovalPayload{
			CampaignIDs: input.CampaignIDs,
			AccountID:   input.AccountID,
			Reason:      input.Reason,
		})
		if err != nil {
			writeToolError(w, r, tool, err.Error())
			return
		}

		logger.WithFields(log.Fields{
			"approval_id": summary.ID,
			"campaigns":   len(input.CampaignIDs),
		}).Info("tools: aprovação de pausa registrada")

		message, err := formatter.FormatWhatsApp(notifying.KindApprovalRequest, notifying.ApprovalRequest{
			ID:        summary.ID,
			Action:    summary.Action,
			Campaigns: summary.Payload.CampaignIDs,
			Reason:    input.Reason,
			ExpiresAt: summary.ExpiresAt,
		})
		if err != nil {
			writeToolError(w, r, tool, err.Error())
			return
		}

		writeToolResult(w, tool, map[string]any{
			"approval": summary,
			"message":  message,
		})
	})
}

// ResolveApprovalInput é a entrada da ferramenta resolve_approval.
// decision aceita APPROVE ou REJECT.
type ResolveApprovalInput struct {
	ApprovalID string `json:"approval_id"`
	Decision   string `json:"decision"`
}

func ResolveApproval(approver approving.Approver, formatter notifying.Formatter) http.Handler {
	const tool = "resolve_approval"

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input ResolveApprovalInput
		if err := decodeToolInput(r, &input); err != nil {
			writeToolError(w, r, tool, "entrada inválida: "+err.Error())
			return
		}

		if input.ApprovalID == "" {
			writeToolError(w, r, tool, "approval_id é obrigatório")
			return
		}

		logger.WithFields(log.Fields{
			"approval_id": input.ApprovalID,
			"decision":    input.Decision,
		}).Info("tools: resolvendo aprovação")

		resolution, err := approver.Resolve(input.ApprovalID, domain.ApprovalDecision(input.Decision))
		if err != nil {
			writeToolError(w, r, tool, err.Error())
			return
		}

		response := map[string]any{
			"resolution": resolution,
		}

		switch resolution.Status {
		case domain.ApprovalStatusApproved:
			message, err := formatter.FormatWhatsApp(notifying.KindActionCompleted, notifying.ActionCompleted{
				ApprovalID: resolution.ID,
				Action:     domain.ActionPauseCampaigns,
				Results:    resolution.Results,
			})
			if err == nil {
				response["message"] = message
			}

		case domain.ApprovalStatusRejected:
			message, err := formatter.FormatWhatsApp(notifying.KindActionCancelled, notifying.ActionCancelled{
				ApprovalID: resolution.ID,
				Action:     domain.ActionPauseCampaigns,
			})
			if err == nil {
				response["message"] = message
			}
		}

		writeToolResult(w, tool, response)
	})
}

// ListApprovalsInput é a entrada da ferramenta list_approvals. O filtro de
// status é opcional; sem ele, todas as entradas são devolvidas como estão
// armazenadas — pendentes vencidas ainda não resolvidas aparecem como pending.
type ListApprovalsInput struct {
	Status string `json:"status,omitempty"`
}

func ListApprovals(approver approving.Approver) http.Handler {
	const tool = "list_approvals"

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input ListApprovalsInput
		if err := decodeToolInput(r, &input); err != nil {
			writeToolError(w, r, tool, "entrada inválida: "+err.Error())
			return
		}

		approvals := approver.List()

		if input.Status != "" {
			filtered := make([]domain.Approval, 0, len(approvals))
			for _, approval := range approvals {
				if approval.Status == domain.ApprovalStatus(input.Status) {
					filtered = append(filtered, approval)
				}
			}
			approvals = filtered
		}

		writeToolResult(w, tool, map[string]any{
			"approvals": approvals,
			"total":     len(approvals),
		})
	})
}
