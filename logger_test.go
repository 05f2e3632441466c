package tensorcanon

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/frieschneider/tensorcanon/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("NilHandlerDefaults", func(t *testing.T) {
		assert.NotNil(t, NewLogger(nil).Logger)
	})

	t.Run("BatchLogging", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		i := testutil.Occ("i")
		a := testutil.Virt("a")
		c := NewCanonicalizer(WithLogger(logger), WithConcurrency(1))
		_, err := c.AntiSymmetric(context.Background(), []AntiSymmetricSpec{
			{Symbol: "t", Upper: Idxs(a), Lower: Idxs(i)},
			{Symbol: "t", Upper: Idxs(i, i), Lower: Idxs(a, a)},
		})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "normalization completed")
		assert.Contains(t, out, "normalization vanished")
		assert.Contains(t, out, "batch normalization completed")
		assert.Contains(t, out, "vanished=1")
	})

	t.Run("FieldHelpers", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(slog.NewTextHandler(&buf, nil))
		logger.WithSymbol("t").WithCount(3).Info("hello")
		out := buf.String()
		assert.Contains(t, out, "symbol=t")
		assert.Contains(t, out, "count=3")
	})
}
