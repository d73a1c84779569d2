// Package statestore implementa o backend de arquivo do estado de campanhas:
// um único JSON com o mapeamento plano de ID de campanha para o último estado
// observado. É o backend padrão quando não há Postgres configurado.
package statestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-guardian-api/internal/domain"
)

type FileStore struct {
	path string

	// Serializa reescritas do arquivo; o arquivo é sempre reescrito por
	// inteiro a partir do mapeamento completo.
	mu sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// LoadAll lê o arquivo inteiro. Qualquer falha (arquivo ausente, JSON
// corrompido) vale como armazenamento vazio e nunca como erro para quem chama.
func (f *FileStore) LoadAll() (map[string]domain.CampaignState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithFields(logrus.Fields{
				"path":  f.path,
				"error": err.Error(),
			}).Warn("statestore: falha ao ler arquivo de estado, tratando como vazio")
		}
		return map[string]domain.CampaignState{}, nil
	}

	states := make(map[string]domain.CampaignState)
	if err := json.Unmarshal(data, &states); err != nil {
		logrus.WithFields(logrus.Fields{
			"path":  f.path,
			"error": err.Error(),
		}).Warn("statestore: arquivo de estado corrompido, tratando como vazio")
		return map[string]domain.CampaignState{}, nil
	}

	return states, nil
}

// Upsert regrava o arquivo com o estado atualizado. A escrita é atômica via
// rename para não deixar o arquivo pela metade em caso de falha no meio.
func (f *FileStore) Upsert(campaignID string, state domain.CampaignState) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	states := f.readLocked()
	states[campaignID] = state

	return f.writeLocked(states)
}

func (f *FileStore) readLocked() map[string]domain.CampaignState {
	states := make(map[string]domain.CampaignState)

	data, err := os.ReadFile(f.path)
	if err != nil {
		return states
	}

	if err := json.Unmarshal(data, &states); err != nil {
		return make(map[string]domain.CampaignState)
	}

	return states
}

func (f *FileStore) writeLocked(states map[string]domain.CampaignState) error {
	data, err := json.MarshalIndent(states, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao serializar estado de campanhas: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".campaign_state_*.tmp")
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo temporário de estado: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("erro ao escrever arquivo de estado: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("erro ao fechar arquivo de estado: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("erro ao substituir arquivo de estado: %w", err)
	}

	return nil
}
