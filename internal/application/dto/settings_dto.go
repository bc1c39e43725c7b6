package dto

import "time"

// CreateAPIKeyRequest emisión de una llave de integración.
type CreateAPIKeyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// APIKeyResponse llave de integración. Secret solo viene poblado en la
// respuesta de creación; después solo se expone el prefijo.
type APIKeyResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Prefix     string     `json:"prefix"`
	Secret     string     `json:"secret,omitempty"`
	CreatedBy  string     `json:"created_by"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}

// APIKeyListResponse llaves emitidas.
type APIKeyListResponse struct {
	Keys []APIKeyResponse `json:"keys"`
}
