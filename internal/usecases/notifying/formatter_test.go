package notifying

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/campaign-guardian-api/internal/domain"
)

func TestGlyph(t *testing.T) {
	assert.Equal(t, "🚨", Glyph(domain.PriorityCritical))
	assert.Equal(t, "⚠️", Glyph(domain.PriorityUrgent))
	assert.Equal(t, "⚡", Glyph(domain.PriorityWarning))
	assert.Equal(t, "ℹ️", Glyph(domain.PriorityInfo))
	assert.Equal(t, "✅", Glyph(domain.PrioritySuccess))

	// Prioridade desconhecida cai no marcador padrão, nunca em vazio.
	assert.Equal(t, "📢", Glyph(domain.NotificationPriority("whatever")))
}

func TestFormatWhatsApp(t *testing.T) {
	expiresAt := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		kind     MessageKind
		payload  any
		expected string
	}{
		{
			name: "resumo de performance completo",
			kind: KindPerformanceSummary,
			payload: PerformanceSummary{
				AccountName:     "Acme Store",
				Period:          "last_7d",
				Spend:           350.5,
				Score:           55,
				Status:          domain.HealthStatusPoor,
				Issues:          []string{"Critical CTR: 0.40%", "High CPM: $82.00"},
				Recommendations: []string{"Pause campaign and review creative strategy"},
			},
			expected: "📊 *Performance summary — Acme Store*\n" +
				"Period: last_7d\n" +
				"Spend: $350.50\n" +
				"Health score: 55/100 (poor)\n" +
				"\n*Issues*\n" +
				"• Critical CTR: 0.40%\n" +
				"• High CPM: $82.00\n" +
				"\n*Recommendations*\n" +
				"• Pause campaign and review creative strategy",
		},
		{
			name: "resumo saudável omite seções vazias",
			kind: KindPerformanceSummary,
			payload: PerformanceSummary{
				AccountName: "Acme Store",
				Period:      "last_7d",
				Spend:       120,
				Score:       100,
				Status:      domain.HealthStatusExcellent,
			},
			expected: "📊 *Performance summary — Acme Store*\n" +
				"Period: last_7d\n" +
				"Spend: $120.00\n" +
				"Health score: 100/100 (excellent)",
		},
		{
			name: "pedido de aprovação",
			kind: KindApprovalRequest,
			payload: ApprovalRequest{
				ID:        "AP-1748779200000-x1y2z3",
				Action:    domain.ActionPauseCampaigns,
				Campaigns: []string{"Campaign A", "Campaign B"},
				Reason:    "CTR critically low with high spend",
				ExpiresAt: expiresAt,
			},
			expected: "🔐 *Approval required*\n" +
				"\n" +
				"Action: PAUSE_CAMPAIGNS\n" +
				"Reason: CTR critically low with high spend\n" +
				"Campaigns:\n" +
				"• Campaign A\n" +
				"• Campaign B\n" +
				"\nApproval ID: AP-1748779200000-x1y2z3\n" +
				"Expires at: 2025-06-01 14:00 UTC",
		},
		{
			name: "alerta de campanha com eventos",
			kind: KindCampaignAlert,
			payload: CampaignAlert{
				CampaignName: "Campaign A",
				Events: []domain.ChangeEvent{
					{
						Type:           domain.ChangeCTRCrash,
						Priority:       domain.PriorityCritical,
						Message:        "CTR dropped 60.0% (1.00% -> 0.40%)",
						Recommendation: "Review recent creative or audience changes and consider pausing the campaign",
					},
				},
			},
			expected: "📡 *Campaign alert — Campaign A*\n" +
				"\n🚨 *CTR_CRASH*\n" +
				"CTR dropped 60.0% (1.00% -> 0.40%)\n" +
				"→ Review recent creative or audience changes and consider pausing the campaign",
		},
		{
			name: "ação executada com falha parcial",
			kind: KindActionCompleted,
			payload: ActionCompleted{
				ApprovalID: "AP-1748779200000-x1y2z3",
				Action:     domain.ActionPauseCampaigns,
				Results: []domain.CampaignActionResult{
					{CampaignID: "123", Success: true},
					{CampaignID: "456", Success: false, Error: "campaign not found"},
				},
			},
			expected: "✅ *Action completed*\n" +
				"\nRequest AP-1748779200000-x1y2z3 (PAUSE_CAMPAIGNS) was executed.\n" +
				"• 123: ok\n" +
				"• 456: failed (campaign not found)",
		},
		{
			name: "ação cancelada",
			kind: KindActionCancelled,
			payload: ActionCancelled{
				ApprovalID: "AP-1748779200000-x1y2z3",
				Action:     domain.ActionPauseCampaigns,
			},
			expected: "❌ *Action cancelled*\n" +
				"\nRequest AP-1748779200000-x1y2z3 (PAUSE_CAMPAIGNS) was rejected. No changes were applied.",
		},
		{
			name: "oportunidade de escala",
			kind: KindScalingOpportunity,
			payload: ScalingOpportunity{
				CampaignName:    "Campaign A",
				CTR:             2.1,
				CurrentBudget:   40,
				SuggestedBudget: 80,
			},
			expected: "🚀 *Scaling opportunity*\n" +
				"\nCampaign *Campaign A* is performing above target (CTR 2.10%).\n" +
				"Suggested budget: $80.00/day (current $40.00/day).",
		},
		{
			name: "alerta de orçamento",
			kind: KindBudgetAlert,
			payload: BudgetAlert{
				AccountName: "Acme Store",
				Spend:       90,
				DailyBudget: 100,
				PacingPct:   90,
			},
			expected: "⚡ *Budget alert*\n" +
				"\nAccount *Acme Store* has spent $90.00 of a $100.00 daily budget (90% pacing).",
		},
	}

	formatter := NewService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message, err := formatter.FormatWhatsApp(tt.kind, tt.payload)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, message)
		})
	}
}

func TestFormatWhatsAppErros(t *testing.T) {
	formatter := NewService()

	t.Run("modelo desconhecido", func(t *testing.T) {
		_, err := formatter.FormatWhatsApp(MessageKind("telegram_poll"), PerformanceSummary{})
		assert.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("payload incompatível com o modelo", func(t *testing.T) {
		_, err := formatter.FormatWhatsApp(KindPerformanceSummary, ApprovalRequest{})
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})
}

func TestFormatWhatsAppDeterministico(t *testing.T) {
	formatter := NewService()
	payload := PerformanceSummary{
		AccountName:     "Acme Store",
		Period:          "last_7d",
		Spend:           350.5,
		Score:           55,
		Status:          domain.HealthStatusPoor,
		Issues:          []string{"Critical CTR: 0.40%"},
		Recommendations: []string{"Pause campaign and review creative strategy"},
	}

	first, err := formatter.FormatWhatsApp(KindPerformanceSummary, payload)
	assert.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := formatter.FormatWhatsApp(KindPerformanceSummary, payload)
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestFormatSlack(t *testing.T) {
	formatter := NewService()

	t.Run("resumo de performance", func(t *testing.T) {
		blocks, err := formatter.FormatSlack(KindPerformanceSummary, PerformanceSummary{
			AccountName: "Acme Store",
			Period:      "last_7d",
			Spend:       350.5,
			Score:       55,
			Status:      domain.HealthStatusPoor,
			Issues:      []string{"Critical CTR: 0.40%"},
		})

		assert.NoError(t, err)
		if assert.Len(t, blocks, 4) {
			assert.Equal(t, "header", blocks[0].Type)
			assert.Equal(t, "📊 Performance summary — Acme Store", blocks[0].Text.Text)

			assert.Equal(t, "section", blocks[1].Type)
			if assert.Len(t, blocks[1].Fields, 4) {
				assert.Equal(t, "*Period*\nlast_7d", blocks[1].Fields[0].Text)
				assert.Equal(t, "*Spend*\n$350.50", blocks[1].Fields[1].Text)
				assert.Equal(t, "*Score*\n55/100", blocks[1].Fields[2].Text)
				assert.Equal(t, "*Status*\npoor", blocks[1].Fields[3].Text)
			}

			assert.Equal(t, "divider", blocks[2].Type)
			assert.Equal(t, "*Issues*\n• Critical CTR: 0.40%", blocks[3].Text.Text)
		}
	})

	t.Run("pedido de aprovação com motivo", func(t *testing.T) {
		blocks, err := formatter.FormatSlack(KindApprovalRequest, ApprovalRequest{
			ID:        "AP-1748779200000-x1y2z3",
			Action:    domain.ActionPauseCampaigns,
			Campaigns: []string{"Campaign A"},
			Reason:    "CTR critically low",
			ExpiresAt: time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC),
		})

		assert.NoError(t, err)
		if assert.Len(t, blocks, 3) {
			assert.Equal(t, "🔐 Approval required", blocks[0].Text.Text)
			assert.Equal(t,
				"*Reason*: CTR critically low\n*Action*: PAUSE_CAMPAIGNS\n*Approval ID*: `AP-1748779200000-x1y2z3`\n*Expires at*: 2025-06-01 14:00 UTC",
				blocks[1].Text.Text,
			)
			assert.Equal(t, "*Campaigns*\n• Campaign A", blocks[2].Text.Text)
		}
	})

	t.Run("alerta de campanha", func(t *testing.T) {
		blocks, err := formatter.FormatSlack(KindCampaignAlert, CampaignAlert{
			CampaignName: "Campaign A",
			Events: []domain.ChangeEvent{
				{
					Type:           domain.ChangeCPMSpike,
					Priority:       domain.PriorityUrgent,
					Message:        "CPM spiked 100.0% ($40.00 -> $80.00)",
					Recommendation: "Check auction competition and review the audience targeting",
				},
			},
		})

		assert.NoError(t, err)
		if assert.Len(t, blocks, 2) {
			assert.Equal(t,
				"⚠️ *CPM_SPIKE*\nCPM spiked 100.0% ($40.00 -> $80.00)\n→ Check auction competition and review the audience targeting",
				blocks[1].Text.Text,
			)
		}
	})

	t.Run("payload incompatível", func(t *testing.T) {
		_, err := formatter.FormatSlack(KindCampaignAlert, BudgetAlert{})
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("modelo desconhecido", func(t *testing.T) {
		_, err := formatter.FormatSlack(MessageKind("carrier_pigeon"), nil)
		assert.ErrorIs(t, err, ErrUnknownKind)
	})
}
