package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCell_Tags(t *testing.T) {
	t.Run("tag is fixed at creation", func(t *testing.T) {
		c := String("42")
		assert.Equal(t, KindString, c.Kind())

		// A numeric-looking string never reads as a number.
		_, ok := c.AsNumber()
		assert.False(t, ok)

		s, ok := c.AsString()
		assert.True(t, ok)
		assert.Equal(t, "42", s)
	})

	t.Run("zero value is null", func(t *testing.T) {
		var c Cell
		assert.True(t, c.IsNull())
		assert.Equal(t, KindNull, c.Kind())

		_, ok := c.AsString()
		assert.False(t, ok)
		_, ok = c.AsNumber()
		assert.False(t, ok)
		_, ok = c.AsBool()
		assert.False(t, ok)
		_, ok = c.AsTime()
		assert.False(t, ok)
	})

	t.Run("number accessor", func(t *testing.T) {
		f, ok := Number(12.5).AsNumber()
		assert.True(t, ok)
		assert.Equal(t, 12.5, f)
	})

	t.Run("time accessor", func(t *testing.T) {
		at := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		got, ok := Time(at).AsTime()
		assert.True(t, ok)
		assert.Equal(t, at, got)
	})
}

func TestCell_Display(t *testing.T) {
	t.Run("prefers the precomputed formatted string", func(t *testing.T) {
		c := Number(1234.5)
		c.Formatted = "1.234,50"
		assert.Equal(t, "1.234,50", c.Display())
	})

	t.Run("renders raw values without formatting", func(t *testing.T) {
		assert.Equal(t, "12.5", Number(12.5).Display())
		assert.Equal(t, "true", Bool(true).Display())
		assert.Equal(t, "hello", String("hello").Display())
		assert.Equal(t, "", Null.Display())
		assert.Equal(t, "2024-03-15", Time(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)).Display())
	})
}
