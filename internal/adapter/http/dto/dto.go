package dto

// CreateWalletRequest is the request body for wallet creation.
type CreateWalletRequest struct {
	OwnerID string `json:"owner_id" binding:"required,uuid"`
}

// MintRequest is the request body for minting supply.
type MintRequest struct {
	AccountID   string `json:"account_id" binding:"required,uuid"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Reason      string `json:"reason" binding:"max=500"`
	ReferenceID string `json:"reference_id,omitempty" binding:"omitempty,max=100,safe_id"`
}

// BurnRequest is the request body for burning supply.
type BurnRequest struct {
	AccountID   string `json:"account_id" binding:"required,uuid"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Reason      string `json:"reason" binding:"max=500"`
	ReferenceID string `json:"reference_id,omitempty" binding:"omitempty,max=100,safe_id"`
}

// TransferRequest is the request body for transferring value.
type TransferRequest struct {
	FromAccountID string `json:"from_account_id" binding:"required,uuid"`
	ToAccountID   string `json:"to_account_id" binding:"required,uuid"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
	Reason        string `json:"reason" binding:"max=500"`
	ReferenceID   string `json:"reference_id,omitempty" binding:"omitempty,max=100,safe_id"`
}

// RewardRequest is the request body for event-driven rewards.
type RewardRequest struct {
	AccountID   string `json:"account_id" binding:"required,uuid"`
	EventType   string `json:"event_type" binding:"required,max=100,safe_id"`
	ReferenceID string `json:"reference_id,omitempty" binding:"omitempty,max=100,safe_id"`
}

// CreateRateRequest is the request body for publishing a conversion rate.
// Rates travel as decimal strings to avoid float formatting loss.
type CreateRateRequest struct {
	RateToReference   string  `json:"rate_to_reference" binding:"required"`
	RateFromReference string  `json:"rate_from_reference" binding:"required"`
	Source            string  `json:"source" binding:"required,max=100"`
	IsActive          bool    `json:"is_active"`
	EffectiveFrom     *int64  `json:"effective_from,omitempty"` // Unix timestamp
	EffectiveTo       *int64  `json:"effective_to,omitempty"`
}

// ReviewAlertRequest is the request body for reviewing a fraud alert.
type ReviewAlertRequest struct {
	Decision string `json:"decision" binding:"required,oneof=INVESTIGATING RESOLVED FALSE_POSITIVE CONFIRMED_FRAUD"`
	Notes    string `json:"notes" binding:"max=1000"`
}

// AccountResponse is the response body for wallet queries.
type AccountResponse struct {
	ID            string `json:"id"`
	OwnerID       string `json:"owner_id"`
	Address       string `json:"address"`
	PublicKey     string `json:"public_key"`
	Balance       int64  `json:"balance"`
	TotalMinted   int64  `json:"total_minted"`
	TotalBurned   int64  `json:"total_burned"`
	IsActive      bool   `json:"is_active"`
	IsBlacklisted bool   `json:"is_blacklisted"`
	CreatedAt     string `json:"created_at"`
}

// TransactionResponse is the response body for ledger operations.
type TransactionResponse struct {
	ID                    string  `json:"id"`
	AccountID             string  `json:"account_id"`
	CounterpartyAccountID *string `json:"counterparty_account_id,omitempty"`
	Amount                int64   `json:"amount"`
	Kind                  string  `json:"kind"`
	Status                string  `json:"status"`
	Reason                string  `json:"reason,omitempty"`
	ReferenceID           *string `json:"reference_id,omitempty"`
	CreatedAt             string  `json:"created_at"`
	ConfirmedAt           *string `json:"confirmed_at,omitempty"`
}

// BalanceResponse is the response body for balance queries.
type BalanceResponse struct {
	AccountID   string `json:"account_id"`
	Balance     int64  `json:"balance"`
	TotalMinted int64  `json:"total_minted"`
	TotalBurned int64  `json:"total_burned"`
	InReference string `json:"in_reference"`
	RateSource  string `json:"rate_source,omitempty"`
}

// RateResponse is the response body for rate queries.
type RateResponse struct {
	ID                string  `json:"id"`
	RateToReference   string  `json:"rate_to_reference"`
	RateFromReference string  `json:"rate_from_reference"`
	Source            string  `json:"source"`
	IsActive          bool    `json:"is_active"`
	EffectiveFrom     int64   `json:"effective_from"`
	EffectiveTo       *int64  `json:"effective_to,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

// ConvertResponse is the response body for rate conversion queries.
type ConvertResponse struct {
	Direction string `json:"direction"` // to_reference | from_reference
	Input     string `json:"input"`
	Output    string `json:"output"`
}

// AlertResponse is the response body for fraud alert queries.
type AlertResponse struct {
	ID            string  `json:"id"`
	AccountID     *string `json:"account_id,omitempty"`
	TransactionID *string `json:"transaction_id,omitempty"`
	AlertType     string  `json:"alert_type"`
	Severity      string  `json:"severity"`
	Status        string  `json:"status"`
	Description   string  `json:"description"`
	DetectedAt    string  `json:"detected_at"`
	ReviewNotes   *string `json:"review_notes,omitempty"`
}

// TransactionListResponse wraps a paginated transaction list.
type TransactionListResponse struct {
	Items      []TransactionResponse `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
}

// AlertListResponse wraps a paginated alert list.
type AlertListResponse struct {
	Items    []AlertResponse `json:"items"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}
