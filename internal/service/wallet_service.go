package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scrollcoin-ledger/internal/core/domain"
	"scrollcoin-ledger/internal/core/ports"
	"scrollcoin-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService. Balance mutation is out
// of its reach; it owns creation, lookup and the security flags.
type WalletServiceImpl struct {
	accountRepo ports.AccountRepository
	custodian   ports.KeyCustodian
	audit       ports.AuditService
	log         zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(accountRepo ports.AccountRepository, custodian ports.KeyCustodian, audit ports.AuditService, log zerolog.Logger) *WalletServiceImpl {
	return &WalletServiceImpl{
		accountRepo: accountRepo,
		custodian:   custodian,
		audit:       audit,
		log:         log,
	}
}

// Create provisions a wallet for the owner: fresh key material, zero balance,
// active, no security flags. One wallet per owner.
func (s *WalletServiceImpl) Create(ctx context.Context, ownerID uuid.UUID) (*domain.Account, error) {
	if ownerID == uuid.Nil {
		return nil, apperror.Validation("owner_id is required")
	}

	existing, err := s.accountRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if existing != nil {
		return nil, apperror.ErrAccountExists()
	}

	material, err := s.custodian.GenerateKeyMaterial(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:                  uuid.New(),
		OwnerID:             ownerID,
		Address:             material.Address,
		PublicKey:           material.PublicKey,
		EncryptedPrivateKey: material.EncryptedPrivateKey,
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, ports.ErrDuplicate) {
			return nil, apperror.ErrAccountExists()
		}
		return nil, apperror.ErrDatabaseError(err)
	}

	s.log.Info().
		Str("account_id", account.ID.String()).
		Str("address", account.Address).
		Msg("wallet created")

	return account, nil
}

// Get fetches a wallet by id.
func (s *WalletServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if account == nil {
		return nil, apperror.ErrNotFound("Account")
	}
	return account, nil
}

// GetByOwner fetches a wallet by its owning principal.
func (s *WalletServiceImpl) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if account == nil {
		return nil, apperror.ErrNotFound("Account")
	}
	return account, nil
}

// SetSecurityFlags toggles blacklist/whitelist. Blacklisting also deactivates
// the wallet in the same update. Admin capability required.
func (s *WalletServiceImpl) SetSecurityFlags(ctx context.Context, cap ports.Capability, req ports.SecurityFlagsRequest) (*domain.Account, error) {
	if !cap.Has(ports.ScopeAdmin) {
		return nil, apperror.ErrUnauthorized()
	}

	account, err := s.accountRepo.SetSecurityFlags(ctx, req.AccountID, req.Blacklisted, req.Whitelisted)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if account == nil {
		return nil, apperror.ErrNotFound("Account")
	}

	if s.audit != nil {
		detail := fmt.Sprintf("blacklisted=%t whitelisted=%t", req.Blacklisted, req.Whitelisted)
		s.audit.Log(ctx, &domain.AuditLog{
			ID:           uuid.New(),
			Action:       domain.AuditFlagsChanged,
			PrincipalID:  cap.PrincipalID,
			ResourceType: "account",
			ResourceID:   account.ID.String(),
			Detail:       &detail,
			CreatedAt:    time.Now().UTC(),
		})
	}

	s.log.Warn().
		Str("account_id", account.ID.String()).
		Bool("blacklisted", account.IsBlacklisted).
		Bool("whitelisted", account.IsWhitelisted).
		Msg("security flags changed")

	return account, nil
}

// SetActive flips the lifecycle flag. Reactivating a blacklisted wallet is
// rejected; the blacklist must be lifted first.
func (s *WalletServiceImpl) SetActive(ctx context.Context, cap ports.Capability, accountID uuid.UUID, active bool) (*domain.Account, error) {
	if !cap.Has(ports.ScopeAdmin) {
		return nil, apperror.ErrUnauthorized()
	}

	current, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if current == nil {
		return nil, apperror.ErrNotFound("Account")
	}
	if active && current.IsBlacklisted {
		return nil, apperror.ErrCannotReactivateBlacklisted()
	}

	account, err := s.accountRepo.SetActive(ctx, accountID, active)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if account == nil {
		return nil, apperror.ErrNotFound("Account")
	}

	s.log.Info().
		Str("account_id", account.ID.String()).
		Bool("active", account.IsActive).
		Msg("wallet lifecycle changed")

	return account, nil
}
