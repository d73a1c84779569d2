package notifying

import "fmt"

// SlackBlock é um bloco da Block Kit API do Slack. Apenas os tipos usados
// pelos modelos de mensagem são modelados.
type SlackBlock struct {
	Type   string      `json:"type"`
	Text   *SlackText  `json:"text,omitempty"`
	Fields []SlackText `json:"fields,omitempty"`
}

type SlackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func headerBlock(text string) SlackBlock {
	return SlackBlock{
		Type: "header",
		Text: &SlackText{Type: "plain_text", Text: text},
	}
}

func sectionBlock(markdown string) SlackBlock {
	return SlackBlock{
		Type: "section",
		Text: &SlackText{Type: "mrkdwn", Text: markdown},
	}
}

func dividerBlock() SlackBlock {
	return SlackBlock{Type: "divider"}
}

// FormatSlack renderiza o mesmo conteúdo dos modelos WhatsApp como uma lista
// de blocos. A saída é determinística para viabilizar testes de golden output.
func (s *Service) FormatSlack(kind MessageKind, payload any) ([]SlackBlock, error) {
	switch kind {
	case KindPerformanceSummary:
		p, ok := payload.(PerformanceSummary)
		if !ok {
			return nil, ErrInvalidPayload
		}

		blocks := []SlackBlock{
			headerBlock(fmt.Sprintf("📊 Performance summary — %s", p.AccountName)),
			SlackBlock{
				Type: "section",
				Fields: []SlackText{
					{Type: "mrkdwn", Text: fmt.Sprintf("*Period*\n%s", p.Period)},
					{Type: "mrkdwn", Text: fmt.Sprintf("*Spend*\n$%.2f", p.Spend)},
					{Type: "mrkdwn", Text: fmt.Sprintf("*Score*\n%d/100", p.Score)},
					{Type: "mrkdwn", Text: fmt.Sprintf("*Status*\n%s", p.Status)},
				},
			},
		}

		if len(p.Issues) > 0 {
			blocks = append(blocks, dividerBlock(), sectionBlock("*Issues*\n"+bulleted(p.Issues)))
		}
		if len(p.Recommendations) > 0 {
			blocks = append(blocks, dividerBlock(), sectionBlock("*Recommendations*\n"+bulleted(p.Recommendations)))
		}

		return blocks, nil

	case KindApprovalRequest:
		p, ok := payload.(ApprovalRequest)
		if !ok {
			return nil, ErrInvalidPayload
		}

		body := fmt.Sprintf("*Action*: %s\n*Approval ID*: `%s`\n*Expires at*: %s",
			p.Action, p.ID, p.ExpiresAt.UTC().Format("2006-01-02 15:04 MST"))
		if p.Reason != "" {
			body = fmt.Sprintf("*Reason*: %s\n%s", p.Reason, body)
		}

		blocks := []SlackBlock{
			headerBlock("🔐 Approval required"),
			sectionBlock(body),
		}
		if len(p.Campaigns) > 0 {
			blocks = append(blocks, sectionBlock("*Campaigns*\n"+bulleted(p.Campaigns)))
		}

		return blocks, nil

	case KindCampaignAlert:
		p, ok := payload.(CampaignAlert)
		if !ok {
			return nil, ErrInvalidPayload
		}

		blocks := []SlackBlock{headerBlock(fmt.Sprintf("📡 Campaign alert — %s", p.CampaignName))}
		for _, event := range p.Events {
			blocks = append(blocks, sectionBlock(fmt.Sprintf(
				"%s *%s*\n%s\n→ %s", Glyph(event.Priority), event.Type, event.Message, event.Recommendation,
			)))
		}

		return blocks, nil

	case KindActionCompleted:
		p, ok := payload.(ActionCompleted)
		if !ok {
			return nil, ErrInvalidPayload
		}

		lines := make([]string, 0, len(p.Results))
		for _, result := range p.Results {
			if result.Success {
				lines = append(lines, fmt.Sprintf("%s: ok", result.CampaignID))
			} else {
				lines = append(lines, fmt.Sprintf("%s: failed (%s)", result.CampaignID, result.Error))
			}
		}

		return []SlackBlock{
			headerBlock("✅ Action completed"),
			sectionBlock(fmt.Sprintf("Request `%s` (%s) was executed.\n%s", p.ApprovalID, p.Action, bulleted(lines))),
		}, nil

	case KindActionCancelled:
		p, ok := payload.(ActionCancelled)
		if !ok {
			return nil, ErrInvalidPayload
		}

		return []SlackBlock{
			headerBlock("❌ Action cancelled"),
			sectionBlock(fmt.Sprintf("Request `%s` (%s) was rejected. No changes were applied.", p.ApprovalID, p.Action)),
		}, nil

	case KindScalingOpportunity:
		p, ok := payload.(ScalingOpportunity)
		if !ok {
			return nil, ErrInvalidPayload
		}

		return []SlackBlock{
			headerBlock("🚀 Scaling opportunity"),
			sectionBlock(fmt.Sprintf(
				"Campaign *%s* is performing above target (CTR %.2f%%).\nSuggested budget: $%.2f/day (current $%.2f/day).",
				p.CampaignName, p.CTR, p.SuggestedBudget, p.CurrentBudget,
			)),
		}, nil

	case KindBudgetAlert:
		p, ok := payload.(BudgetAlert)
		if !ok {
			return nil, ErrInvalidPayload
		}

		return []SlackBlock{
			headerBlock("⚡ Budget alert"),
			sectionBlock(fmt.Sprintf(
				"Account *%s* has spent $%.2f of a $%.2f daily budget (%.0f%% pacing).",
				p.AccountName, p.Spend, p.DailyBudget, p.PacingPct,
			)),
		}, nil
	}

	return nil, ErrUnknownKind
}

func bulleted(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += "\n"
		}
		out += "• " + item
	}
	return out
}
