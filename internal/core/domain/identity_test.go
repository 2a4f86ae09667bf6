package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.farmtech.dev/agroview/internal/core/domain"
)

func TestParseIdentity(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		id, err := domain.ParseIdentity("soja_3")
		require.NoError(t, err)
		assert.Equal(t, domain.Identity{Prefix: domain.CultureSoja, Sequence: 3}, id)
		assert.Equal(t, "soja_3", id.String())
	})

	t.Run("rejects unknown prefix", func(t *testing.T) {
		t.Parallel()
		_, err := domain.ParseIdentity("milho_1")
		require.ErrorIs(t, err, domain.ErrInvalidIdentity)
	})

	t.Run("rejects negative and non-numeric sequences", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"soja_-1", "soja_abc", "soja", ""} {
			_, err := domain.ParseIdentity(s)
			require.ErrorIs(t, err, domain.ErrInvalidIdentity, s)
		}
	})
}

func TestAllocateIdentities(t *testing.T) {
	t.Parallel()

	t.Run("smallest free sequence per prefix", func(t *testing.T) {
		t.Parallel()
		snapshot := []domain.CultureSnapshot{
			{Type: domain.CultureSoja},
			{Type: domain.CultureCana},
			{Type: domain.CultureSoja},
		}

		ids := domain.AllocateIdentities(snapshot)
		require.Len(t, ids, 3)
		assert.Equal(t, "soja_0", ids[0].String())
		assert.Equal(t, "cana_0", ids[1].String())
		assert.Equal(t, "soja_1", ids[2].String())
	})

	t.Run("server identities are reserved before gaps are filled", func(t *testing.T) {
		t.Parallel()
		snapshot := []domain.CultureSnapshot{
			{Type: domain.CultureSoja},
			{ServerID: "soja_0", Type: domain.CultureSoja},
			{Type: domain.CultureSoja},
		}

		ids := domain.AllocateIdentities(snapshot)
		// soja_0 is taken by the server-assigned record regardless of position.
		assert.Equal(t, "soja_1", ids[0].String())
		assert.Equal(t, "soja_0", ids[1].String())
		assert.Equal(t, "soja_2", ids[2].String())
	})

	t.Run("freed sequences are reused", func(t *testing.T) {
		t.Parallel()
		// Reload after soja_1 was deleted: the middle slot is available again.
		snapshot := []domain.CultureSnapshot{
			{ServerID: "soja_0", Type: domain.CultureSoja},
			{ServerID: "soja_2", Type: domain.CultureSoja},
			{Type: domain.CultureSoja},
		}

		ids := domain.AllocateIdentities(snapshot)
		assert.Equal(t, "soja_1", ids[2].String())
	})

	t.Run("deterministic for the same snapshot", func(t *testing.T) {
		t.Parallel()
		snapshot := []domain.CultureSnapshot{
			{Type: domain.CultureCana},
			{ServerID: "cana_3", Type: domain.CultureCana},
			{Type: domain.CultureSoja},
			{Type: domain.CultureCana},
		}

		first := domain.AllocateIdentities(snapshot)
		for range 10 {
			assert.Equal(t, first, domain.AllocateIdentities(snapshot))
		}
	})

	t.Run("unparseable server id gets a synthetic identity", func(t *testing.T) {
		t.Parallel()
		snapshot := []domain.CultureSnapshot{
			{ServerID: "42", Type: domain.CultureSoja},
		}

		ids := domain.AllocateIdentities(snapshot)
		assert.Equal(t, "soja_0", ids[0].String())
	})
}

func TestIdentity_TextMarshaling(t *testing.T) {
	t.Parallel()

	id := domain.Identity{Prefix: domain.CultureCana, Sequence: 7}
	text, err := id.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "cana_7", string(text))

	var parsed domain.Identity
	require.NoError(t, parsed.UnmarshalText(text))
	assert.Equal(t, id, parsed)
}
