package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	h, err := Hash("s3cret-pass")
	require.NoError(t, err)
	assert.True(t, Verify("s3cret-pass", h))
	assert.False(t, Verify("wrong-pass", h))
}

func TestHashSaltFreshness(t *testing.T) {
	h1, err := Hash("same-input")
	require.NoError(t, err)
	h2, err := Hash("same-input")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2, "two hashes of the same input must differ by salt")
	assert.True(t, Verify("same-input", h1))
	assert.True(t, Verify("same-input", h2))
}

func TestVerifyMalformedBlob(t *testing.T) {
	for _, blob := range []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=65536,t=1,p=4$salt",
		"$argon2id$v=19$bogus$c2FsdA$ZGlnZXN0",
		"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0",
		"$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0",
		"$argon2id$v=19$m=65536,t=1,p=4$!!$ZGlnZXN0",
	} {
		assert.False(t, Verify("anything", blob), "blob %q must not verify", blob)
	}
}
