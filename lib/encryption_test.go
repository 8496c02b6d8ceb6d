package lib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEncryptionKey = "0123456789abcdef0123456789abcdef"

func TestEncryptDecryptRoundTrip(t *testing.T) {
	for _, plaintext := range []string{"Amira El-Sayed", "amira@example.com", "12 Rue de la Paix"} {
		sealed, err := Encrypt(plaintext, testEncryptionKey)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, sealed)

		got, err := Decrypt(sealed, testEncryptionKey)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestEncryptProducesFreshNonce(t *testing.T) {
	first, err := Encrypt("same input", testEncryptionKey)
	require.NoError(t, err)
	second, err := Encrypt("same input", testEncryptionKey)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestEncryptEmptyStringPassesThrough(t *testing.T) {
	sealed, err := Encrypt("", testEncryptionKey)
	require.NoError(t, err)
	assert.Empty(t, sealed)

	plain, err := Decrypt("", testEncryptionKey)
	require.NoError(t, err)
	assert.Empty(t, plain)
}

func TestEncryptRejectsWrongKeyLength(t *testing.T) {
	_, err := Encrypt("data", "short")
	assert.ErrorIs(t, err, ErrBadEncryptionKey)

	_, err = Decrypt("data", strings.Repeat("k", 33))
	assert.ErrorIs(t, err, ErrBadEncryptionKey)
}

func TestDecryptRejectsWrongKey(t *testing.T) {
	sealed, err := Encrypt("secret", testEncryptionKey)
	require.NoError(t, err)

	otherKey := strings.Repeat("x", 32)
	_, err = Decrypt(sealed, otherKey)
	assert.Error(t, err)
}

func TestDecryptRejectsGarbage(t *testing.T) {
	_, err := Decrypt("not-base64!!", testEncryptionKey)
	assert.Error(t, err)

	_, err = Decrypt("c2hvcnQ=", testEncryptionKey)
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}
