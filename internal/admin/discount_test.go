package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountForm_Payload(t *testing.T) {
	base := DiscountForm{
		Code:          "WELCOME",
		DiscountType:  DiscountFixed,
		DiscountValue: "5",
	}

	t.Run("BlankOptionalFields", func(t *testing.T) {
		p, err := base.Payload()
		require.NoError(t, err)
		assert.Equal(t, float64(0), p.MinOrderAmount)
		assert.Nil(t, p.MaxDiscountAmount)
		assert.Nil(t, p.UsageLimit)
		assert.True(t, p.IsActive)
	})

	t.Run("UnparseableMinimumFallsBackToZero", func(t *testing.T) {
		f := base
		f.MinOrderAmount = "abc"
		p, err := f.Payload()
		require.NoError(t, err)
		assert.Equal(t, float64(0), p.MinOrderAmount)
	})

	t.Run("OptionalCapsCarried", func(t *testing.T) {
		f := base
		f.MinOrderAmount = "20"
		f.MaxDiscountAmount = "15.50"
		f.UsageLimit = "100"
		p, err := f.Payload()
		require.NoError(t, err)
		assert.Equal(t, float64(20), p.MinOrderAmount)
		require.NotNil(t, p.MaxDiscountAmount)
		assert.Equal(t, 15.50, *p.MaxDiscountAmount)
		require.NotNil(t, p.UsageLimit)
		assert.Equal(t, 100, *p.UsageLimit)
	})

	t.Run("ExplicitInactive", func(t *testing.T) {
		inactive := false
		f := base
		f.IsActive = &inactive
		p, err := f.Payload()
		require.NoError(t, err)
		assert.False(t, p.IsActive)
	})

	t.Run("Validation", func(t *testing.T) {
		f := base
		f.Code = ""
		_, err := f.Payload()
		assert.ErrorIs(t, err, ErrMissingCode)

		f = base
		f.DiscountType = "bogus"
		_, err = f.Payload()
		assert.ErrorIs(t, err, ErrInvalidType)

		f = base
		f.DiscountValue = "zero"
		_, err = f.Payload()
		assert.ErrorIs(t, err, ErrInvalidValue)

		f = base
		f.UsageLimit = "many"
		_, err = f.Payload()
		assert.ErrorIs(t, err, ErrInvalidUsageLimit)
	})
}
