package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/billion-tapper/internal/domain"
)

const testKey = "billion-tapper/accounts/acc-1/webapp_url"

func TestStorePutInsertsMultiline(t *testing.T) {
	t.Parallel()

	var gotArgs []string
	var gotInput string
	store := &Store{run: func(_ context.Context, stdin string, args ...string) (string, string, error) {
		gotArgs, gotInput = args, stdin
		return "", "", nil
	}}

	require.NoError(t, store.Put(context.Background(), testKey, "https://example.test/#tgWebAppData=x"))
	assert.Equal(t, []string{"insert", "--multiline", "--force", testKey}, gotArgs)
	assert.Equal(t, "https://example.test/#tgWebAppData=x\n", gotInput)
}

func TestStoreGetReturnsFirstLine(t *testing.T) {
	t.Parallel()

	store := &Store{run: func(_ context.Context, stdin string, args ...string) (string, string, error) {
		assert.Equal(t, []string{"show", testKey}, args)
		assert.Empty(t, stdin)
		return "https://example.test/\r\nnote: added by bt\n", "", nil
	}}

	value, err := store.Get(context.Background(), testKey)
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/", value)
}

func TestStoreGetMapsMissingEntry(t *testing.T) {
	t.Parallel()

	store := &Store{run: func(context.Context, string, ...string) (string, string, error) {
		return "", "Error: " + testKey + " is not in the password store.", errors.New("exit status 1")
	}}

	_, err := store.Get(context.Background(), testKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetKeepsStderrInError(t *testing.T) {
	t.Parallel()

	store := &Store{run: func(context.Context, string, ...string) (string, string, error) {
		return "", "gpg: decryption failed: No secret key", errors.New("exit status 2")
	}}

	_, err := store.Get(context.Background(), testKey)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSecretNotFound)
	assert.ErrorContains(t, err, "pass show")
	assert.ErrorContains(t, err, "No secret key")
}

func TestStoreDeleteIgnoresMissingEntry(t *testing.T) {
	t.Parallel()

	store := &Store{run: func(_ context.Context, _ string, args ...string) (string, string, error) {
		assert.Equal(t, []string{"rm", "--force", testKey}, args)
		return "", "Error: " + testKey + " is not in the password store.", errors.New("exit status 1")
	}}

	require.NoError(t, store.Delete(context.Background(), testKey))
}

func TestStoreUnavailableBinary(t *testing.T) {
	t.Parallel()

	store := &Store{run: func(context.Context, string, ...string) (string, string, error) {
		return "", "", ErrUnavailable
	}}

	_, err := store.Get(context.Background(), testKey)
	require.ErrorIs(t, err, ErrUnavailable)
}
