// Package apikey genera y verifica llaves de integración. La llave en claro
// tiene la forma "obk_<hex>"; en reposo solo se guarda el hash bcrypt y el
// prefijo para identificarla en el panel.
package apikey

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	secretBytes = 24
	prefixLen   = 8
)

// Generate crea una llave nueva. Devuelve el valor en claro (se muestra una
// sola vez) y el prefijo visible.
func Generate() (secret, prefix string, err error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("generando llave: %w", err)
	}
	secret = "obk_" + hex.EncodeToString(buf)
	return secret, secret[:len("obk_")+prefixLen], nil
}

// Hash calcula el hash bcrypt de la llave para guardarla en reposo.
func Hash(secret string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hasheando llave: %w", err)
	}
	return string(h), nil
}

// Verify compara una llave en claro contra el hash guardado.
func Verify(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
