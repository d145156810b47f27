package parcel_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/parcel"
	"sendit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUUID(t *testing.T) kernel.UUID {
	t.Helper()
	return kernel.NewUUID()
}

func validDimensions(t *testing.T) parcel.Dimensions {
	t.Helper()
	dims, err := parcel.NewDimensions(40, 30, 20)
	require.NoError(t, err)
	return dims
}

func TestNewParcel(t *testing.T) {
	validID := kernel.NewUUID()
	validUser := kernel.NewUUID()

	t.Run("should create valid parcel", func(t *testing.T) {
		p, err := parcel.NewParcel(validID, validUser, "vinyl records", 2.5, validDimensions(t), 120, true)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.True(t, p.IsOwnedBy(validUser))
		assert.Equal(t, "vinyl records", p.Description())
		assert.InDelta(t, 2.5, p.WeightKg(), 1e-9)
		assert.InDelta(t, 120.0, p.DeclaredValue(), 1e-9)
		assert.True(t, p.Fragile())
		assert.Equal(t, parcel.Light, p.WeightCategory())
	})

	t.Run("should fail with empty description", func(t *testing.T) {
		_, err := parcel.NewParcel(validID, validUser, "   ", 2.5, validDimensions(t), 0, false)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "description")
	})

	t.Run("should fail with overlong description", func(t *testing.T) {
		_, err := parcel.NewParcel(validID, validUser, strings.Repeat("x", 501), 2.5, validDimensions(t), 0, false)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should accept description at the limit", func(t *testing.T) {
		p, err := parcel.NewParcel(validID, validUser, strings.Repeat("x", 500), 2.5, validDimensions(t), 0, false)

		require.NoError(t, err)
		assert.Len(t, p.Description(), 500)
	})

	t.Run("should count description length in characters, not bytes", func(t *testing.T) {
		// 500 three-byte runes; well over 500 bytes but exactly at the limit.
		p, err := parcel.NewParcel(validID, validUser, strings.Repeat("箱", 500), 2.5, validDimensions(t), 0, false)

		require.NoError(t, err)
		assert.Equal(t, 500, utf8.RuneCountInString(p.Description()))

		_, err = parcel.NewParcel(validID, validUser, strings.Repeat("箱", 501), 2.5, validDimensions(t), 0, false)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with zero weight", func(t *testing.T) {
		_, err := parcel.NewParcel(validID, validUser, "books", 0, validDimensions(t), 0, false)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "weightKg")
	})

	t.Run("should fail above max weight", func(t *testing.T) {
		_, err := parcel.NewParcel(validID, validUser, "anvil", 100.5, validDimensions(t), 0, false)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept max weight exactly", func(t *testing.T) {
		p, err := parcel.NewParcel(validID, validUser, "anvil", 100, validDimensions(t), 0, false)

		require.NoError(t, err)
		assert.Equal(t, parcel.ExtraHeavy, p.WeightCategory())
	})

	t.Run("should fail with negative declared value", func(t *testing.T) {
		_, err := parcel.NewParcel(validID, validUser, "books", 2, validDimensions(t), -1, false)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "declaredValue")
	})

	t.Run("should fail with unconstructed dimensions", func(t *testing.T) {
		var dims parcel.Dimensions

		_, err := parcel.NewParcel(validID, validUser, "books", 2, dims, 0, false)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "dimensions must be created")
	})

	t.Run("should fail with missing user id", func(t *testing.T) {
		var noUser kernel.UUID

		_, err := parcel.NewParcel(validID, noUser, "books", 2, validDimensions(t), 0, false)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewDimensions(t *testing.T) {
	t.Run("should create valid dimensions", func(t *testing.T) {
		dims, err := parcel.NewDimensions(100, 50, 25)

		require.NoError(t, err)
		require.NoError(t, dims.Validate())
		assert.InDelta(t, 100.0, dims.Length(), 1e-9)
		assert.InDelta(t, 50.0, dims.Width(), 1e-9)
		assert.InDelta(t, 25.0, dims.Height(), 1e-9)
	})

	t.Run("should reject full-cube oversize parcel", func(t *testing.T) {
		_, err := parcel.NewDimensions(150, 150, 150)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should accept parcel just under the oversize limit", func(t *testing.T) {
		dims, err := parcel.NewDimensions(150, 150, 149)

		require.NoError(t, err)
		assert.InDelta(t, 149.0, dims.Height(), 1e-9)
	})

	t.Run("should fail with non-positive side", func(t *testing.T) {
		_, err := parcel.NewDimensions(0, 50, 25)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "length")
	})

	t.Run("should fail with side above the limit", func(t *testing.T) {
		_, err := parcel.NewDimensions(10, 150.5, 25)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "width")
	})

	t.Run("should collect multiple side errors", func(t *testing.T) {
		_, err := parcel.NewDimensions(-1, 0, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "length")
		assert.Contains(t, err.Error(), "width")
		assert.Contains(t, err.Error(), "height")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var dims parcel.Dimensions

		require.Error(t, dims.Validate())
	})
}

func TestParcel_Update(t *testing.T) {
	t.Run("should replace mutable attributes", func(t *testing.T) {
		p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), "books", 2, validDimensions(t), 10, false)
		require.NoError(t, err)

		newDims, err := parcel.NewDimensions(60, 60, 60)
		require.NoError(t, err)

		require.NoError(t, p.Update("ceramics", 30, newDims, 500, true))

		assert.Equal(t, "ceramics", p.Description())
		assert.InDelta(t, 30.0, p.WeightKg(), 1e-9)
		assert.Equal(t, parcel.Heavy, p.WeightCategory())
		assert.True(t, p.Fragile())
	})

	t.Run("should reject invalid update and keep nothing half-applied", func(t *testing.T) {
		p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), "books", 2, validDimensions(t), 10, false)
		require.NoError(t, err)

		err = p.Update("", 2, validDimensions(t), 10, false)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, "books", p.Description())
	})

	t.Run("should fail on nil parcel", func(t *testing.T) {
		var p *parcel.Parcel

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, parcel.ErrParcelIsNotConstructed, err)
	})
}
