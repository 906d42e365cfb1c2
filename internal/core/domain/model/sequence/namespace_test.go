package sequence_test

import (
	"testing"

	"produzione/internal/core/domain/model/sequence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNamespace(t *testing.T) {
	t.Run("valid namespace", func(t *testing.T) {
		ns, err := sequence.NewNamespace("lot_code", "LT", 4)

		require.NoError(t, err)
		assert.Equal(t, "LT0001", ns.Format(1))
	})

	t.Run("rejects missing configuration", func(t *testing.T) {
		_, err := sequence.NewNamespace("", "LT", 4)
		require.Error(t, err)

		_, err = sequence.NewNamespace("lot_code", "", 4)
		require.Error(t, err)

		_, err = sequence.NewNamespace("lot_code", "LT", 0)
		require.Error(t, err)
	})
}

func TestNamespaceFormat(t *testing.T) {
	ns := sequence.ModelCodes()

	assert.Equal(t, "CQU000001", ns.Format(1))
	assert.Equal(t, "CQU000042", ns.Format(42))
	assert.Equal(t, "CQU999999", ns.Format(999999))
	// Suffixes outgrowing the width are not truncated.
	assert.Equal(t, "CQU1000000", ns.Format(1000000))
}

func TestNamespaceParseSuffix(t *testing.T) {
	ns := sequence.ProductionNumbers()

	t.Run("round trip", func(t *testing.T) {
		for _, suffix := range []int{1, 9, 100, 999999, 1000001} {
			parsed, err := ns.ParseSuffix(ns.Format(suffix))
			require.NoError(t, err)
			assert.Equal(t, suffix, parsed)
		}
	})

	t.Run("rejects a foreign prefix", func(t *testing.T) {
		_, err := ns.ParseSuffix("CQU000001")
		require.Error(t, err)
	})

	t.Run("rejects a non-numeric suffix", func(t *testing.T) {
		_, err := ns.ParseSuffix("PRDXYZ")
		require.Error(t, err)
	})
}

func TestNamespaceNext(t *testing.T) {
	ns := sequence.ProductionNumbers()

	assert.Equal(t, "PRD000001", ns.Next(0))
	assert.Equal(t, "PRD000043", ns.Next(42))
}

func TestNumericOrderingBeatsLexicographic(t *testing.T) {
	ns, err := sequence.NewNamespace("short", "S", 2)
	require.NoError(t, err)

	// Lexicographically "S100" < "S99"; numerically 100 follows 99.
	assert.Equal(t, "S100", ns.Next(99))

	s99, err := ns.ParseSuffix("S99")
	require.NoError(t, err)
	s100, err := ns.ParseSuffix("S100")
	require.NoError(t, err)
	assert.Greater(t, s100, s99)
}
