package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/jsoncol/errs"
	"github.com/arloliu/jsoncol/format"
)

func TestClassifyValue(t *testing.T) {
	tests := []struct {
		input string
		want  valueClass
	}{
		{"", classNull},
		{"null", classNull},
		{"  null  ", classNull},
		{"true", classBool},
		{"false", classBool},
		{"1", classPosInt},
		{"+7", classPosInt},
		{"-5", classNegInt},
		{"9223372036854775807", classPosInt},
		{"9223372036854775808", classBigInt},
		{"18446744073709551615", classBigInt},
		{"99999999999999999999999", classBigInt},
		{"1.5", classFloat},
		{"-2.25", classFloat},
		{"1e3", classFloat},
		{"2020-01-02", classDatetime},
		{"2020/01/02", classDatetime},
		{"12:30:45", classDatetime},
		{"2020-01-02T12:30:45Z", classDatetime},
		{"\"x\"", classString},
		{"abc", classString},
		{"\"123\"", classPosInt}, // quotes stripped before classification
		{"\"2020-01-02\"", classDatetime},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyValue([]byte(tt.input), '"'))
		})
	}
}

func TestResolveColumnType(t *testing.T) {
	tests := []struct {
		name    string
		counts  classCounts
		records int64
		want    format.DataType
	}{
		{"all null", classCounts{nulls: 3}, 3, format.TypeInt8},
		{"any string wins", classCounts{posInts: 5, strings: 1}, 6, format.TypeString},
		{"string beats datetime", classCounts{datetimes: 5, strings: 1}, 6, format.TypeString},
		{"datetime", classCounts{datetimes: 2}, 2, format.TypeTimestampMilli},
		{"float", classCounts{floats: 1, posInts: 3}, 4, format.TypeFloat64},
		{"ints with nulls widen to float", classCounts{posInts: 2, nulls: 1}, 3, format.TypeFloat64},
		{"plain ints", classCounts{posInts: 1, negInts: 1}, 2, format.TypeInt64},
		{"overflow with negatives is string", classCounts{bigInts: 1, negInts: 1}, 2, format.TypeString},
		{"overflow without negatives is uint64", classCounts{bigInts: 2}, 2, format.TypeUint64},
		{"bool", classCounts{bools: 2}, 2, format.TypeBool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveColumnType(tt.counts, tt.records)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveColumnTypeRuleOrder(t *testing.T) {
	// Overflowing integers together with small negatives must resolve to
	// string even though the overflow-only rule would also match; the
	// precedence chain is order-significant.
	got, err := resolveColumnType(classCounts{bigInts: 3, negInts: 1, posInts: 2}, 6)
	require.NoError(t, err)
	assert.Equal(t, format.TypeString, got)
}

func TestResolveColumnTypeUndetectable(t *testing.T) {
	_, err := resolveColumnType(classCounts{}, 2)
	assert.ErrorIs(t, err, errs.ErrTypeDetection)
}

func TestResolveTypesExplicit(t *testing.T) {
	buf := []byte("{\"a\":1,\"b\":2}\n")
	starts, release := locateRecordStarts(buf, true, '"', false)
	defer release()
	cfg := NewConfig()
	sch, err := discoverSchema(buf, starts, cfg)
	require.NoError(t, err)

	t.Run("positional list", func(t *testing.T) {
		cfg := NewConfig()
		cfg.dtypeList = []format.DataType{format.TypeFloat64, format.TypeString}
		dtypes, err := resolveTypes(buf, starts, sch, cfg)
		require.NoError(t, err)
		assert.Equal(t, []format.DataType{format.TypeFloat64, format.TypeString}, dtypes)
	})

	t.Run("positional list length mismatch", func(t *testing.T) {
		cfg := NewConfig()
		cfg.dtypeList = []format.DataType{format.TypeFloat64}
		_, err := resolveTypes(buf, starts, sch, cfg)
		assert.ErrorIs(t, err, errs.ErrTypeMismatch)
	})

	t.Run("name-keyed map", func(t *testing.T) {
		cfg := NewConfig()
		cfg.dtypeMap = map[string]format.DataType{
			"a": format.TypeString,
			"b": format.TypeInt64,
		}
		dtypes, err := resolveTypes(buf, starts, sch, cfg)
		require.NoError(t, err)
		assert.Equal(t, []format.DataType{format.TypeString, format.TypeInt64}, dtypes)
	})

	t.Run("name-keyed map missing a column", func(t *testing.T) {
		cfg := NewConfig()
		cfg.dtypeMap = map[string]format.DataType{"a": format.TypeString}
		_, err := resolveTypes(buf, starts, sch, cfg)
		assert.ErrorIs(t, err, errs.ErrTypeMismatch)
	})
}
