package approving

import (
	"errors"
	"fmt"

	"github.com/vfg2006/campaign-guardian-api/internal/domain"
)

// Erros específicos para o ciclo de vida de aprovações
var (
	ErrApprovalNotFound = errors.New("approval not found")
	ErrAlreadyProcessed = errors.New("approval already processed")
	ErrApprovalExpired  = errors.New("approval expired")

	// Erros de validação
	ErrUnknownAction    = errors.New("unknown approval action")
	ErrInvalidDecision  = errors.New("invalid approval decision")
	ErrEmptyCampaignIDs = errors.New("campaign list is empty")
)

// ApprovalError é um erro com contexto adicional para aprovações. Carrega o ID
// e o status corrente para que o chamador decida o próximo passo.
type ApprovalError struct {
	Err     error
	Code    string // Código de erro para API
	ID      string // ID da aprovação envolvida (quando aplicável)
	Status  domain.ApprovalStatus
	Details string
}

// Error implementa a interface error
func (e *ApprovalError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ApprovalError) Unwrap() error {
	return e.Err
}

// NewApprovalError cria um novo ApprovalError
func NewApprovalError(err error, code string, details string) *ApprovalError {
	return &ApprovalError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewApprovalErrorWithID cria um novo ApprovalError com o contexto da aprovação
func NewApprovalErrorWithID(err error, code string, id string, status domain.ApprovalStatus) *ApprovalError {
	return &ApprovalError{
		Err:    err,
		Code:   code,
		ID:     id,
		Status: status,
	}
}
