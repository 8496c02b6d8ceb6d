package lib

import (
	"lumi_noir_server/structs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
)

func TestArgon2HashEncodeDecodeRoundTrip(t *testing.T) {
	params := &structs.ArgonParams{
		Memory:  64 * 1024,
		Time:    1,
		Threads: 4,
		KeyLen:  32,
		SaltLen: 16,
	}
	salt := []byte("0123456789abcdef")
	hash := argon2.IDKey([]byte("correct horse"), salt, params.Time, params.Memory, params.Threads, params.KeyLen)

	encoded := EncodeArgon2Hash(params, salt, hash)

	decoded, gotSalt, gotHash, err := DecodeArgon2Hash(encoded)
	require.NoError(t, err)
	assert.Equal(t, params, decoded)
	assert.Equal(t, salt, gotSalt)
	assert.Equal(t, hash, gotHash)
}

func TestDecodeArgon2HashRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$c2FsdA", // missing hash segment
		"$argon2id$v=19$bogus$c2FsdA$aGFzaA",
	}

	for _, encoded := range cases {
		_, _, _, err := DecodeArgon2Hash(encoded)
		assert.Error(t, err, "input %q", encoded)
	}
}

func TestDecodeArgon2HashRejectsWrongVersion(t *testing.T) {
	_, _, _, err := DecodeArgon2Hash("$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA")
	assert.ErrorIs(t, err, ErrIncompatibleVersion)
}

func TestSecureCompare(t *testing.T) {
	assert.True(t, SecureCompare([]byte("same"), []byte("same")))
	assert.False(t, SecureCompare([]byte("same"), []byte("diff")))
	assert.False(t, SecureCompare([]byte("same"), []byte("longer value")))
}
