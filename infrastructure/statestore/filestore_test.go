package statestore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/campaign-guardian-api/internal/domain"
)

func TestLoadAllArquivoAusente(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "campaign_state.json"))

	states, err := store.LoadAll()

	assert.NoError(t, err)
	assert.Empty(t, states)
}

func TestLoadAllArquivoCorrompido(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign_state.json")
	assert.NoError(t, os.WriteFile(path, []byte("{isto não é json"), 0o644))

	store := NewFileStore(path)

	// Arquivo corrompido vale como armazenamento vazio, nunca como erro.
	states, err := store.LoadAll()

	assert.NoError(t, err)
	assert.Empty(t, states)
}

func TestUpsertELoadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign_state.json")
	store := NewFileStore(path)

	lastChecked := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.NoError(t, store.Upsert("123", domain.CampaignState{
		CTR:         1.2,
		CPM:         35.5,
		Spend:       120,
		Frequency:   2.1,
		PreviousCTR: 1.0,
		PreviousCPM: 30,
		LastChecked: lastChecked,
	}))
	assert.NoError(t, store.Upsert("456", domain.CampaignState{CTR: 0.5, CPM: 80}))

	// Releitura por uma nova instância, como num restart do processo.
	states, err := NewFileStore(path).LoadAll()

	assert.NoError(t, err)
	if assert.Len(t, states, 2) {
		assert.Equal(t, 1.2, states["123"].CTR)
		assert.Equal(t, 35.5, states["123"].CPM)
		assert.Equal(t, 1.0, states["123"].PreviousCTR)
		assert.True(t, states["123"].LastChecked.Equal(lastChecked))
		assert.Equal(t, 0.5, states["456"].CTR)
	}
}

func TestUpsertSobrescreveCampanhaExistente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign_state.json")
	store := NewFileStore(path)

	assert.NoError(t, store.Upsert("123", domain.CampaignState{CTR: 1.0}))
	assert.NoError(t, store.Upsert("123", domain.CampaignState{CTR: 0.4, PreviousCTR: 1.0}))

	states, err := store.LoadAll()

	assert.NoError(t, err)
	if assert.Len(t, states, 1) {
		assert.Equal(t, 0.4, states["123"].CTR)
		assert.Equal(t, 1.0, states["123"].PreviousCTR)
	}
}

func TestUpsertNaoDeixaTemporarioParaTras(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "campaign_state.json"))

	assert.NoError(t, store.Upsert("123", domain.CampaignState{CTR: 1.0}))

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "campaign_state.json", entries[0].Name())
	}
}
