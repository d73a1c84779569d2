package domain

// AccountInfoResponse representa a resposta crua da Graph API para os dados
// da conta de anúncios. Valores numéricos chegam como string e são convertidos
// na camada de serviço.
type AccountInfoResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Currency      string `json:"currency"`
	AccountStatus int    `json:"account_status"`
	Balance       string `json:"balance"`
	AmountSpent   string `json:"amount_spent"`
	SpendCap      string `json:"spend_cap"`
}
