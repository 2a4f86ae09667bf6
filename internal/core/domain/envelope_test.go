package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.farmtech.dev/agroview/internal/core/domain"
)

func TestDecodeEnvelope(t *testing.T) {
	t.Parallel()

	t.Run("explicit success envelope", func(t *testing.T) {
		t.Parallel()
		env, err := domain.DecodeEnvelope([]byte(`{"status":"success","message":"ok","data":{"id":1}}`))
		require.NoError(t, err)
		assert.True(t, env.IsSuccess())
		assert.Equal(t, "ok", env.Message)
		assert.JSONEq(t, `{"id":1}`, string(env.Data))
	})

	t.Run("error envelope is not a decode failure", func(t *testing.T) {
		t.Parallel()
		env, err := domain.DecodeEnvelope([]byte(`{"status":"error","message":"Cultura não encontrada"}`))
		require.NoError(t, err)
		assert.False(t, env.IsSuccess())
		assert.Equal(t, "Cultura não encontrada", env.Message)
	})

	t.Run("empty body is implicit success", func(t *testing.T) {
		t.Parallel()
		env, err := domain.DecodeEnvelope(nil)
		require.NoError(t, err)
		assert.True(t, env.IsSuccess())
		assert.Empty(t, env.Data)
	})

	t.Run("bare array wraps as implicit success data", func(t *testing.T) {
		t.Parallel()
		env, err := domain.DecodeEnvelope([]byte(`[{"id":1},{"id":2}]`))
		require.NoError(t, err)
		assert.True(t, env.IsSuccess())
		assert.JSONEq(t, `[{"id":1},{"id":2}]`, string(env.Data))
	})

	t.Run("object without status wraps as implicit success data", func(t *testing.T) {
		t.Parallel()
		env, err := domain.DecodeEnvelope([]byte(`{"linhas_calculadas":12.5}`))
		require.NoError(t, err)
		assert.True(t, env.IsSuccess())
		assert.JSONEq(t, `{"linhas_calculadas":12.5}`, string(env.Data))
	})

	t.Run("invalid json is malformed", func(t *testing.T) {
		t.Parallel()
		_, err := domain.DecodeEnvelope([]byte(`<html>502 Bad Gateway</html>`))
		require.ErrorIs(t, err, domain.ErrMalformedPayload)
	})
}
