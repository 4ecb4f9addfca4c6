package service

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"scrollcoin-ledger/internal/core/domain"
	"scrollcoin-ledger/internal/core/ports"
	"scrollcoin-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for deriving the custody key from the operator secret.
const (
	custodianKDFTime    = 1
	custodianKDFMemory  = 64 * 1024 // 64MB
	custodianKDFThreads = 4
	custodianKeyLen     = 32 // AES-256
)

// addressBytes is how many bytes of the public-key digest form the address.
const addressBytes = 20

// KeyCustodianService implements ports.KeyCustodian. It holds the derived
// custody key for its process-scoped lifetime; key material is sealed with
// AES-256-GCM and plaintext private keys exist only transiently inside
// GenerateKeyMaterial and DecryptPrivateKey.
type KeyCustodianService struct {
	key    []byte
	capSvc ports.CapabilityService
	audit  ports.AuditService
	log    zerolog.Logger
}

// NewKeyCustodianService derives the custody key from the operator-held
// secret using argon2id. saltHex must decode to at least 16 bytes.
func NewKeyCustodianService(operatorSecret, saltHex string, capSvc ports.CapabilityService, audit ports.AuditService, log zerolog.Logger) (*KeyCustodianService, error) {
	if operatorSecret == "" {
		return nil, fmt.Errorf("operator secret must not be empty")
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return nil, fmt.Errorf("decoding KDF salt: %w", err)
	}
	if len(salt) < 16 {
		return nil, fmt.Errorf("KDF salt must be at least 16 bytes, got %d", len(salt))
	}

	key := argon2.IDKey([]byte(operatorSecret), salt, custodianKDFTime, custodianKDFMemory, custodianKDFThreads, custodianKeyLen)

	return &KeyCustodianService{
		key:    key,
		capSvc: capSvc,
		audit:  audit,
		log:    log,
	}, nil
}

// GenerateKeyMaterial produces a fresh ed25519 keypair and a derived address.
// The private key is sealed immediately; the plaintext is zeroed before
// returning.
func (s *KeyCustodianService) GenerateKeyMaterial(ctx context.Context) (*ports.KeyMaterial, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("generating keypair: %w", err))
	}

	sealed, err := s.seal(priv)
	for i := range priv {
		priv[i] = 0
	}
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("sealing private key: %w", err))
	}

	digest := sha256.Sum256(pub)
	material := &ports.KeyMaterial{
		Address:             "0x" + hex.EncodeToString(digest[:addressBytes]),
		PublicKey:           hex.EncodeToString(pub),
		EncryptedPrivateKey: sealed,
	}

	s.log.Debug().Str("address", material.Address).Msg("key material generated")
	return material, nil
}

// DecryptPrivateKey opens sealed key material. The caller must present a
// capability token carrying the key:decrypt scope; every successful call is
// recorded as a sensitive-access audit event.
func (s *KeyCustodianService) DecryptPrivateKey(ctx context.Context, encryptedPrivateKey string, authorization string) ([]byte, error) {
	cap, err := s.capSvc.Verify(authorization, ports.ScopeKeyDecrypt)
	if err != nil {
		s.log.Warn().Err(err).Msg("key decrypt refused: invalid authorization")
		return nil, apperror.ErrUnauthorized()
	}

	plaintext, err := s.open(encryptedPrivateKey)
	if err != nil {
		// A failed integrity tag must surface, never garbage key bytes.
		return nil, apperror.ErrCorruptCiphertext(err)
	}

	if s.audit != nil {
		s.audit.Log(ctx, &domain.AuditLog{
			ID:           uuid.New(),
			Action:       domain.AuditKeyDecrypt,
			PrincipalID:  cap.PrincipalID,
			ResourceType: "private_key",
			ResourceID:   fingerprint(encryptedPrivateKey),
			CreatedAt:    time.Now().UTC(),
		})
	}

	return plaintext, nil
}

// seal encrypts plaintext with AES-256-GCM.
// Returns hex-encoded string: nonce + ciphertext.
func (s *KeyCustodianService) seal(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("creating GCM: %w", err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	ciphertext := aesGCM.Seal(nonce, nonce, plaintext, nil)
	return hex.EncodeToString(ciphertext), nil
}

// open decrypts a hex-encoded AES-256-GCM ciphertext.
func (s *KeyCustodianService) open(ciphertextHex string) ([]byte, error) {
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, fmt.Errorf("decoding ciphertext: %w", err)
	}

	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("opening ciphertext: %w", err)
	}

	return plaintext, nil
}

// fingerprint identifies a ciphertext blob in audit logs without recording it.
func fingerprint(ciphertextHex string) string {
	digest := sha256.Sum256([]byte(ciphertextHex))
	return hex.EncodeToString(digest[:8])
}
