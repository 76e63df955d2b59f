package enumset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormatSet(t *testing.T) (*Set, *Variant, *Variant) {
	t.Helper()
	s := New("file_format")
	csv := s.MustDefine("CSV", "comma separated")
	parquet := s.MustDefine("PARQUET")
	return s, csv, parquet
}

func TestConvertKeys(t *testing.T) {
	s, csv, parquet := newFormatSet(t)

	in := map[any]any{
		"csv":          1,
		"Parquet":      2,
		"avro":         3,
		42:             4,
		"comma_sep...": 5,
	}
	out := s.ConvertKeys(in)

	assert.Equal(t, map[any]any{
		csv:            1,
		parquet:        2,
		"avro":         3,
		42:             4,
		"comma_sep...": 5,
	}, out)

	// Input is never mutated.
	assert.Contains(t, in, "csv")
	assert.Len(t, in, 5)
}

func TestConvertKeysToString(t *testing.T) {
	s, csv, parquet := newFormatSet(t)
	foreignSet := New("foreign_format")
	foreign := foreignSet.MustDefine("CSV")

	in := map[any]any{
		csv:     1,
		parquet: 2,
		"avro":  3,
		foreign: 4,
	}
	out := s.ConvertKeysToString(in)

	assert.Equal(t, map[any]any{
		"CSV":     1,
		"PARQUET": 2,
		"avro":    3,
		foreign:   4,
	}, out)
}

func TestConvertKeysRoundTrip(t *testing.T) {
	s, _, _ := newFormatSet(t)

	original := map[any]any{
		"CSV":     "a",
		"PARQUET": "b",
		"avro":    "c",
		7:         "d",
	}

	restored := s.ConvertKeysToString(s.ConvertKeys(original))
	assert.Equal(t, original, restored)
}

func TestConvertMapValues(t *testing.T) {
	s, csv, _ := newFormatSet(t)

	in := map[any]any{
		"format":   "comma-separated",
		"fallback": "avro",
		"size":     10,
	}
	out := s.ConvertMapValues(in)

	assert.Equal(t, map[any]any{
		"format":   csv,
		"fallback": "avro",
		"size":     10,
	}, out)
}

func TestConvertValuesToString(t *testing.T) {
	s, csv, parquet := newFormatSet(t)

	in := map[any]any{
		"a": csv,
		"b": parquet,
		"c": "left alone",
		"d": 1,
	}
	out := s.ConvertValuesToString(in)

	assert.Equal(t, map[any]any{
		"a": "CSV",
		"b": "PARQUET",
		"c": "left alone",
		"d": 1,
	}, out)
}

func TestConvertSlice(t *testing.T) {
	s, csv, parquet := newFormatSet(t)

	in := []any{"csv", "PARQUET", "avro", 9, nil}
	out := s.ConvertSlice(in)

	assert.Equal(t, []any{csv, parquet, "avro", 9, nil}, out)
	assert.Equal(t, []any{"csv", "PARQUET", "avro", 9, nil}, in)
}

func TestConvertSet(t *testing.T) {
	s, csv, _ := newFormatSet(t)

	in := map[any]struct{}{
		"Comma Separated": {},
		"avro":            {},
		3:                 {},
	}
	out := s.ConvertSet(in)

	assert.Equal(t, map[any]struct{}{
		csv:    {},
		"avro": {},
		3:      {},
	}, out)
}

func TestConvertValuesDispatch(t *testing.T) {
	s, csv, _ := newFormatSet(t)

	t.Run("mapping", func(t *testing.T) {
		out, err := s.ConvertValues(map[any]any{"format": "csv"}, false)
		require.NoError(t, err)
		assert.Equal(t, map[any]any{"format": csv}, out)
	})

	t.Run("string-keyed mapping", func(t *testing.T) {
		out, err := s.ConvertValues(map[string]any{"format": "csv"}, false)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"format": csv}, out)
	})

	t.Run("sequence", func(t *testing.T) {
		out, err := s.ConvertValues([]any{"csv", "avro"}, false)
		require.NoError(t, err)
		assert.Equal(t, []any{csv, "avro"}, out)
	})

	t.Run("set", func(t *testing.T) {
		out, err := s.ConvertValues(map[any]struct{}{"csv": {}}, false)
		require.NoError(t, err)
		assert.Equal(t, map[any]struct{}{csv: {}}, out)
	})

	t.Run("unsupported kind passes through", func(t *testing.T) {
		out, err := s.ConvertValues("just a string", false)
		require.NoError(t, err)
		assert.Equal(t, "just a string", out)
	})

	t.Run("unsupported kind strict", func(t *testing.T) {
		_, err := s.ConvertValues("just a string", true)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedContainer)
	})
}
