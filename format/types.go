package format

type (
	DataType        uint8
	CompressionType uint8
)

const (
	// TypeInvalid is the zero value; it never appears in a resolved schema.
	TypeInvalid DataType = 0x0

	TypeInt8           DataType = 0x1 // TypeInt8 is the placeholder type for all-null columns.
	TypeInt64          DataType = 0x2 // TypeInt64 represents 64-bit signed integers.
	TypeUint64         DataType = 0x3 // TypeUint64 represents 64-bit unsigned integers.
	TypeFloat64        DataType = 0x4 // TypeFloat64 represents double-precision floats.
	TypeBool           DataType = 0x5 // TypeBool represents boolean values.
	TypeString         DataType = 0x6 // TypeString represents UTF-8 string values.
	TypeTimestampMilli DataType = 0x7 // TypeTimestampMilli represents millisecond-precision timestamps.

	CompressionAuto  CompressionType = 0x0 // CompressionAuto detects the codec from the source extension.
	CompressionNone  CompressionType = 0x1 // CompressionNone represents uncompressed input.
	CompressionGzip  CompressionType = 0x2 // CompressionGzip represents gzip-compressed input.
	CompressionZip   CompressionType = 0x3 // CompressionZip represents zip-archived input.
	CompressionBzip2 CompressionType = 0x4 // CompressionBzip2 represents bzip2-compressed input.
	CompressionXz    CompressionType = 0x5 // CompressionXz represents xz-compressed input.
	CompressionZstd  CompressionType = 0x6 // CompressionZstd represents Zstandard-compressed input.
	CompressionS2    CompressionType = 0x7 // CompressionS2 represents S2-compressed input.
	CompressionLZ4   CompressionType = 0x8 // CompressionLZ4 represents LZ4 frame-compressed input.
)

func (d DataType) String() string {
	switch d {
	case TypeInt8:
		return "Int8"
	case TypeInt64:
		return "Int64"
	case TypeUint64:
		return "Uint64"
	case TypeFloat64:
		return "Float64"
	case TypeBool:
		return "Bool"
	case TypeString:
		return "String"
	case TypeTimestampMilli:
		return "TimestampMilli"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionAuto:
		return "Auto"
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZip:
		return "Zip"
	case CompressionBzip2:
		return "Bzip2"
	case CompressionXz:
		return "Xz"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
