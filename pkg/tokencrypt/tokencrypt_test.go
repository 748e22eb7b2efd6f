package tokencrypt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_EmptySecret(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	c, err := New("app-secret")
	require.NoError(t, err)

	encrypted, err := c.Encrypt("Atzr|refresh-token-value")
	require.NoError(t, err)
	require.NotEqual(t, "Atzr|refresh-token-value", encrypted)

	plain, err := c.Decrypt(encrypted)
	require.NoError(t, err)
	require.Equal(t, "Atzr|refresh-token-value", plain)
}

func TestEncrypt_EmptyPassthrough(t *testing.T) {
	c, err := New("app-secret")
	require.NoError(t, err)

	encrypted, err := c.Encrypt("")
	require.NoError(t, err)
	require.Equal(t, "", encrypted)

	plain, err := c.Decrypt("")
	require.NoError(t, err)
	require.Equal(t, "", plain)
}

func TestDecrypt_RejectsTamperedCiphertext(t *testing.T) {
	c, err := New("app-secret")
	require.NoError(t, err)

	encrypted, err := c.Encrypt("token")
	require.NoError(t, err)

	_, err = c.Decrypt("x" + encrypted[1:])
	require.Error(t, err)
}

func TestDecrypt_WrongKey(t *testing.T) {
	a, err := New("secret-a")
	require.NoError(t, err)
	b, err := New("secret-b")
	require.NoError(t, err)

	encrypted, err := a.Encrypt("token")
	require.NoError(t, err)

	_, err = b.Decrypt(encrypted)
	require.Error(t, err)
}

func TestDecrypt_GarbageInput(t *testing.T) {
	c, err := New("app-secret")
	require.NoError(t, err)

	_, err = c.Decrypt("!!!not base64!!!")
	require.Error(t, err)

	_, err = c.Decrypt("c2hvcnQ=")
	require.Error(t, err)
}
