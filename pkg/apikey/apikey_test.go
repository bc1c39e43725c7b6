package apikey_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ObraCore-api/pkg/apikey"
)

// La llave lleva el prefijo de marca, el prefijo visible identifica la llave
// y dos llamadas nunca producen el mismo secreto.
func TestGenerate_FormatoYUnicidad(t *testing.T) {
	secret, prefix, err := apikey.Generate()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(secret, "obk_"), "el secreto debe llevar el prefijo obk_")
	assert.True(t, strings.HasPrefix(secret, prefix), "el prefijo visible debe ser el inicio del secreto")
	assert.Len(t, prefix, len("obk_")+8)

	otro, _, err := apikey.Generate()
	require.NoError(t, err)
	assert.NotEqual(t, secret, otro, "cada llave debe ser única")
}

// El hash verifica contra la llave original y rechaza cualquier otra.
func TestHashVerify(t *testing.T) {
	secret, _, err := apikey.Generate()
	require.NoError(t, err)

	hash, err := apikey.Hash(secret)
	require.NoError(t, err)
	assert.NotContains(t, hash, secret, "el hash no debe contener la llave en claro")

	assert.True(t, apikey.Verify(hash, secret))
	assert.False(t, apikey.Verify(hash, secret+"x"))
	assert.False(t, apikey.Verify(hash, "obk_otra-llave"))
}
