package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-guardian-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-guardian-api/internal/domain"
)

const campaignStatesTable = "campaign_states"

// CampaignStateRepository persiste o mapeamento plano de ID de campanha para o
// último estado observado. O detector de mudanças é o único dono deste estado.
type CampaignStateRepository interface {
	LoadAll() (map[string]domain.CampaignState, error)
	Upsert(campaignID string, state domain.CampaignState) error
}

type campaignStateRepository struct {
	conn *postgres.Connection
}

func NewCampaignStateRepository(conn *postgres.Connection) CampaignStateRepository {
	return &campaignStateRepository{
		conn: conn,
	}
}

// EnsureSchema cria a tabela de estados se ainda não existir.
func EnsureSchema(conn *postgres.Connection) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS campaign_states (
			campaign_id   TEXT PRIMARY KEY,
			ctr           DOUBLE PRECISION NOT NULL DEFAULT 0,
			cpm           DOUBLE PRECISION NOT NULL DEFAULT 0,
			spend         DOUBLE PRECISION NOT NULL DEFAULT 0,
			frequency     DOUBLE PRECISION NOT NULL DEFAULT 0,
			previous_ctr  DOUBLE PRECISION NOT NULL DEFAULT 0,
			previous_cpm  DOUBLE PRECISION NOT NULL DEFAULT 0,
			last_checked  TIMESTAMPTZ NOT NULL,
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("erro ao criar tabela campaign_states: %w", err)
	}

	return nil
}

func (r *campaignStateRepository) LoadAll() (map[string]domain.CampaignState, error) {
	query, args, err := squirrel.
		Select("campaign_id, ctr, cpm, spend, frequency, previous_ctr, previous_cpm, last_checked").
		From(campaignStatesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return map[string]domain.CampaignState{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	states := make(map[string]domain.CampaignState)
	for rows.Next() {
		var campaignID string
		var state domain.CampaignState
		var lastChecked time.Time

		err := rows.Scan(
			&campaignID,
			&state.CTR,
			&state.CPM,
			&state.Spend,
			&state.Frequency,
			&state.PreviousCTR,
			&state.PreviousCPM,
			&lastChecked,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear estado de campanha: %w", err)
		}

		state.LastChecked = lastChecked
		states[campaignID] = state
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return states, nil
}

func (r *campaignStateRepository) Upsert(campaignID string, state domain.CampaignState) error {
	query := squirrel.StatementBuilder.
		Insert(campaignStatesTable).
		Columns("campaign_id", "ctr", "cpm", "spend", "frequency", "previous_ctr", "previous_cpm", "last_checked").
		Values(
			campaignID,
			state.CTR,
			state.CPM,
			state.Spend,
			state.Frequency,
			state.PreviousCTR,
			state.PreviousCPM,
			state.LastChecked,
		).
		Suffix(`
			ON CONFLICT (campaign_id) DO UPDATE SET
				ctr = EXCLUDED.ctr,
				cpm = EXCLUDED.cpm,
				spend = EXCLUDED.spend,
				frequency = EXCLUDED.frequency,
				previous_ctr = EXCLUDED.previous_ctr,
				previous_cpm = EXCLUDED.previous_cpm,
				last_checked = EXCLUDED.last_checked,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
