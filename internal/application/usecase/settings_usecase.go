package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ObraCore-api/internal/application/dto"
	"github.com/jhoicas/ObraCore-api/internal/domain"
	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
	"github.com/jhoicas/ObraCore-api/internal/domain/repository"
	"github.com/jhoicas/ObraCore-api/pkg/apikey"
)

// SettingsUseCase ajustes de la cuenta: llaves de integración.
type SettingsUseCase struct {
	keyRepo repository.APIKeyRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(keyRepo repository.APIKeyRepository) *SettingsUseCase {
	return &SettingsUseCase{keyRepo: keyRepo}
}

// CreateAPIKey emite una llave nueva. El valor en claro solo viaja en esta
// respuesta; después únicamente se expone el prefijo.
func (uc *SettingsUseCase) CreateAPIKey(actor entity.Actor, in dto.CreateAPIKeyRequest) (*dto.APIKeyResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	secret, prefix, err := apikey.Generate()
	if err != nil {
		return nil, err
	}
	hash, err := apikey.Hash(secret)
	if err != nil {
		return nil, err
	}
	key := &entity.APIKey{
		ID:         uuid.New().String(),
		Name:       name,
		Prefix:     prefix,
		SecretHash: hash,
		CreatedBy:  actor.Name,
		CreatedAt:  time.Now(),
	}
	if err := uc.keyRepo.Create(key); err != nil {
		return nil, err
	}
	return &dto.APIKeyResponse{
		ID:        key.ID,
		Name:      key.Name,
		Prefix:    key.Prefix,
		Secret:    secret,
		CreatedBy: key.CreatedBy,
		CreatedAt: key.CreatedAt,
	}, nil
}

// ListAPIKeys llaves emitidas, sin secretos.
func (uc *SettingsUseCase) ListAPIKeys() (*dto.APIKeyListResponse, error) {
	keys, err := uc.keyRepo.List()
	if err != nil {
		return nil, err
	}
	resp := &dto.APIKeyListResponse{Keys: make([]dto.APIKeyResponse, 0, len(keys))}
	for _, k := range keys {
		resp.Keys = append(resp.Keys, dto.APIKeyResponse{
			ID:         k.ID,
			Name:       k.Name,
			Prefix:     k.Prefix,
			CreatedBy:  k.CreatedBy,
			CreatedAt:  k.CreatedAt,
			LastUsedAt: k.LastUsedAt,
		})
	}
	return resp, nil
}
