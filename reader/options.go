package reader

import (
	"fmt"

	"github.com/arloliu/jsoncol/format"
	"github.com/arloliu/jsoncol/internal/options"
)

// Config holds the construction-time configuration of a Reader. It is
// immutable after NewReader returns; a read call carries no mutable state
// beyond it.
type Config struct {
	sources     []ByteSource
	compression format.CompressionType

	byteRangeOffset uint64
	byteRangeSize   uint64 // 0 = unbounded

	lines             bool
	dayFirst          bool
	newlinesInStrings bool

	quoteChar byte
	delimiter byte

	dtypeList []format.DataType
	dtypeMap  map[string]format.DataType
}

// NewConfig creates a Config with the defaults: line-delimited mode, `"` as
// the quote character, `,` as the delimiter, and compression auto-detection.
func NewConfig() *Config {
	return &Config{
		compression: format.CompressionAuto,
		lines:       true,
		quoteChar:   '"',
		delimiter:   ',',
	}
}

func (c *Config) setCompression(comp format.CompressionType) error {
	switch comp {
	case format.CompressionAuto, format.CompressionNone,
		format.CompressionGzip, format.CompressionZip,
		format.CompressionBzip2, format.CompressionXz,
		format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		c.compression = comp
		return nil
	default:
		return fmt.Errorf("invalid compression: %v", comp)
	}
}

func (c *Config) setQuoteChar(quote byte) error {
	if quote == 0 {
		return fmt.Errorf("quote character must not be zero")
	}
	c.quoteChar = quote

	return nil
}

func (c *Config) setDelimiter(delim byte) error {
	if delim == 0 {
		return fmt.Errorf("delimiter must not be zero")
	}
	c.delimiter = delim

	return nil
}

// Option represents a functional option for configuring the Reader.
// This is a type alias for the generic Option interface specialized for Config.
type Option = options.Option[*Config]

// WithSources sets the ranged byte sources to ingest, in order. A read call
// treats the sources as one logical concatenated input.
func WithSources(sources ...ByteSource) Option {
	return options.NoError(func(c *Config) {
		c.sources = append(c.sources, sources...)
	})
}

// WithFiles adds one FileSource per path.
func WithFiles(paths ...string) Option {
	return options.NoError(func(c *Config) {
		for _, p := range paths {
			c.sources = append(c.sources, NewFileSource(p))
		}
	})
}

// WithBuffer adds an in-memory buffer as an input source.
func WithBuffer(data []byte) Option {
	return options.NoError(func(c *Config) {
		c.sources = append(c.sources, NewBufferSource(data))
	})
}

// WithCompression sets the input compression codec. The default,
// CompressionAuto, detects the codec from the first source's file extension
// (gz, zip, bz2, xz, zst, s2, lz4; anything else reads as plain text).
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(c *Config) error {
		return c.setCompression(comp)
	})
}

// WithByteRange selects a sub-window of the logical input. offset is the
// first byte to consider; size bounds the window, with 0 meaning everything
// from offset to the end. A window that starts mid-record begins at the first
// full record at or after offset.
func WithByteRange(offset, size uint64) Option {
	return options.NoError(func(c *Config) {
		c.byteRangeOffset = offset
		c.byteRangeSize = size
	})
}

// WithLines selects line-delimited record layout. It is the default and the
// only supported layout; disabling it makes NewReader fail.
func WithLines(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.lines = enabled
	})
}

// WithDayFirst makes ambiguous dates parse with the day before the month
// (31/12/2020 rather than 12/31/2020).
func WithDayFirst(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.dayFirst = enabled
	})
}

// WithNewlinesInStrings allows record terminators inside quoted strings.
// Enabling it switches record-boundary detection to the quote-aware path,
// which adds a sequential correction pass proportional to the record count.
func WithNewlinesInStrings(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.newlinesInStrings = enabled
	})
}

// WithQuoteChar sets the quote character. The default is `"`.
func WithQuoteChar(quote byte) Option {
	return options.New(func(c *Config) error {
		return c.setQuoteChar(quote)
	})
}

// WithDelimiter sets the field delimiter for array-shaped rows.
// The default is `,`.
func WithDelimiter(delim byte) Option {
	return options.New(func(c *Config) error {
		return c.setDelimiter(delim)
	})
}

// WithColumnTypes supplies explicit column types positionally, skipping type
// inference. The list must contain exactly one entry per discovered column.
func WithColumnTypes(dtypes []format.DataType) Option {
	return options.NoError(func(c *Config) {
		c.dtypeList = dtypes
	})
}

// WithColumnTypeMap supplies explicit column types keyed by column name,
// skipping type inference. Every discovered column name must resolve.
func WithColumnTypeMap(dtypes map[string]format.DataType) Option {
	return options.NoError(func(c *Config) {
		c.dtypeMap = dtypes
	})
}
