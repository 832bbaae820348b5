//go:build unit

package prize_test

import (
	"testing"

	"parkops/internal/domain/prize"
	"parkops/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrize(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		p, err := builder.NewPrizeBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Free Wash", p.Name())
		assert.Equal(t, 80, p.PointsRequired())
	})

	cases := []struct {
		name   string
		mutate func(*builder.PrizeBuilder)
		errIs  error
	}{
		{
			name:   "empty name",
			mutate: func(b *builder.PrizeBuilder) { b.Name = "" },
			errIs:  prize.ErrEmptyName,
		},
		{
			name:   "whitespace only name",
			mutate: func(b *builder.PrizeBuilder) { b.Name = "  " },
			errIs:  prize.ErrEmptyName,
		},
		{
			name:   "zero points",
			mutate: func(b *builder.PrizeBuilder) { b.WithPointsRequired(0) },
			errIs:  prize.ErrInvalidPoints,
		},
		{
			name:   "negative points",
			mutate: func(b *builder.PrizeBuilder) { b.WithPointsRequired(-10) },
			errIs:  prize.ErrInvalidPoints,
		},
		{
			name:   "single point prize",
			mutate: func(b *builder.PrizeBuilder) { b.WithPointsRequired(1) },
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := builder.NewPrizeBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, p)
				require.NoError(t, err)
			} else {
				require.Nil(t, p)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
