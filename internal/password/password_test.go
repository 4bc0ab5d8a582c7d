package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	secrets := []string{"Abcdef12", "correct horse battery staple", "пароль", ""}

	for _, s := range secrets {
		t.Run(s, func(t *testing.T) {
			digest, err := Hash(s)
			require.NoError(t, err)

			assert.NotEqual(t, s, digest)
			assert.True(t, strings.HasPrefix(digest, "$argon2id$v=19$"))
			assert.True(t, Verify(s, digest))

			other, err := Hash(s + "x")
			require.NoError(t, err)
			assert.False(t, Verify(s, other))
		})
	}
}

func TestHash_Salted(t *testing.T) {
	a, err := Hash("Abcdef12")
	require.NoError(t, err)
	b, err := Hash("Abcdef12")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, Verify("Abcdef12", a))
	assert.True(t, Verify("Abcdef12", b))
}

func TestVerify_LegacyBcrypt(t *testing.T) {
	digest, err := bcrypt.GenerateFromPassword([]byte("Abcdef12"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, Verify("Abcdef12", string(digest)))
	assert.False(t, Verify("Abcdef13", string(digest)))
}

func TestVerify_Malformed(t *testing.T) {
	tests := []string{
		"",
		"plaintext",
		"$argon2id$",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$!!!",
		"$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$a2V5",
		"$argon2id$v=19$garbage$c2FsdA$a2V5",
	}
	for _, d := range tests {
		assert.False(t, Verify("Abcdef12", d), d)
	}
}

func TestGenerateResetToken(t *testing.T) {
	a, err := GenerateResetToken()
	require.NoError(t, err)
	b, err := GenerateResetToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", a)
	assert.NotEqual(t, a, b)
}

func TestValidateStrength(t *testing.T) {
	tests := []struct {
		password string
		wantErr  bool
	}{
		{"Abcdef12", false},
		{"Passw0rd!", false},
		{"Ab1", true},
		{"abcdefgh1", true},
		{"ABCDEFGH1", true},
		{"Abcdefghi", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := ValidateStrength(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrWeakPassword)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
