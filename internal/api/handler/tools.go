package handler

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/campaign-guardian-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ToolError é o envelope de erro da fronteira de ferramentas. Erros nunca
// atravessam essa fronteira como exceção: são sempre devolvidos como dados,
// com status 200, para que o chamador (o cliente MCP) os apresente ao modelo.
type ToolError struct {
	Error string `json:"error"`
	Tool  string `json:"tool"`
}

// decodeToolInput decodifica o corpo da requisição no struct de entrada da
// ferramenta. Corpo vazio é válido: a entrada fica com os zero values e os
// defaults são aplicados pelo handler.
func decodeToolInput(r *http.Request, input any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	if len(body) == 0 {
		return nil
	}

	return json.Unmarshal(body, input)
}

// writeToolResult serializa o payload de sucesso de uma ferramenta.
func writeToolResult(w http.ResponseWriter, tool string, payload any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithFields(log.Fields{
			"tool":  tool,
			"error": err.Error(),
		}).Error("tools: falha ao serializar a resposta da ferramenta")
	}
}

// writeToolError devolve o erro como dado, nunca como status HTTP de falha.
func writeToolError(w http.ResponseWriter, r *http.Request, tool, message string) {
	log.ForContext(r.Context()).WithFields(log.Fields{
		"tool":  tool,
		"error": message,
	}).Warn("tools: ferramenta finalizada com erro")

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ToolError{Error: message, Tool: tool}); err != nil {
		log.L.WithField("tool", tool).WithError(err).Error("tools: falha ao serializar o erro da ferramenta")
	}
}
