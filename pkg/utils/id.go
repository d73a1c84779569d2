package utils

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateApprovalID gera um identificador de aprovação único dentro do
// processo. O timestamp sozinho colide sob criação rápida em sequência; o
// sufixo aleatório elimina a colisão dentro do mesmo milissegundo.
func GenerateApprovalID(now time.Time) string {
	suffix, err := GenerateID()
	if err != nil {
		// gonanoid só falha se o gerador de aleatoriedade do sistema falhar
		suffix = fmt.Sprintf("%06d", now.Nanosecond()%1000000)
	}

	return fmt.Sprintf("AP-%d-%s", now.UnixMilli(), suffix)
}
