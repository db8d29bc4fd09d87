package reader

// Record scanning primitives shared by schema discovery, type inference, and
// materialization. They operate on raw byte spans of the staged buffer and
// never decode values; classification and conversion happen on the spans they
// hand out.
//
// Scope limitation: values are scanned as flat scalars. Nested objects or
// arrays inside a value are not decoded and will confuse the comma scan; the
// reader does not validate against them.

import "bytes"

// recordSpan returns the [start, end) byte span of record i. The span runs to
// the next record's start, so it includes the trailing terminator.
func recordSpan(buf []byte, starts []uint64, i int) (uint64, uint64) {
	start := starts[i]
	end := uint64(len(buf))
	if i+1 < len(starts) {
		end = starts[i+1]
	}

	return start, end
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// trimSpace trims leading and trailing whitespace from a field span.
func trimSpace(f []byte) []byte {
	return bytes.TrimSpace(f)
}

// unquote strips one surrounding pair of quote characters, if present.
// Classification and conversion both operate on the quoted content, which is
// how quoted digit strings resolve as integers and quoted dates as timestamps.
func unquote(f []byte, quote byte) []byte {
	if len(f) >= 2 && f[0] == quote && f[len(f)-1] == quote {
		return f[1 : len(f)-1]
	}

	return f
}

// scanObjectFields walks one flat object record and invokes fn for every
// key/value pair, with offsets absolute in buf. Key offsets exclude the
// surrounding quotes; value spans are raw and may carry whitespace and quotes
// for the caller to trim.
//
// Backslash escapes inside quoted keys and values are honored when locating
// closing quotes, but never decoded here.
func scanObjectFields(buf []byte, start, end uint64, quote byte, fn func(keyOff, keyLen, valOff, valLen uint64)) {
	i := start
	for i < end && buf[i] != '{' {
		i++
	}
	if i >= end {
		return
	}
	i++

	for i < end {
		for i < end && (buf[i] == ',' || isSpace(buf[i])) {
			i++
		}
		if i >= end || buf[i] == '}' {
			return
		}

		var keyOff, keyLen uint64
		if buf[i] == quote {
			i++
			keyOff = i
			for i < end && buf[i] != quote {
				if buf[i] == '\\' && i+1 < end {
					i++
				}
				i++
			}
			keyLen = i - keyOff
			if i < end {
				i++ // closing quote
			}
		} else {
			keyOff = i
			for i < end && buf[i] != ':' && !isSpace(buf[i]) {
				i++
			}
			keyLen = i - keyOff
		}

		for i < end && buf[i] != ':' {
			i++
		}
		if i >= end {
			return
		}
		i++

		for i < end && isSpace(buf[i]) {
			i++
		}
		valOff := i
		inQuote := false
		for i < end {
			c := buf[i]
			if c == '\\' && i+1 < end {
				i += 2
				continue
			}
			if c == quote {
				inQuote = !inQuote
				i++
				continue
			}
			if !inQuote && (c == ',' || c == '}') {
				break
			}
			i++
		}

		fn(keyOff, keyLen, valOff, i-valOff)
	}
}

// splitArrayFields walks one flat array record and invokes fn for every
// positional field, with offsets absolute in buf. Field index starts at 0.
func splitArrayFields(buf []byte, start, end uint64, quote, delim byte, fn func(idx int, valOff, valLen uint64)) {
	i := start
	for i < end && buf[i] != '[' {
		i++
	}
	if i >= end {
		return
	}
	i++

	// Trim the record terminator so the closing bracket is the last byte.
	for end > i && (buf[end-1] == recordTerminator || buf[end-1] == '\r') {
		end--
	}

	idx := 0
	valOff := i
	inQuote := false
	for i < end {
		c := buf[i]
		if c == '\\' && i+1 < end {
			i += 2
			continue
		}
		if c == quote {
			inQuote = !inQuote
			i++
			continue
		}
		if !inQuote && c == delim {
			fn(idx, valOff, i-valOff)
			idx++
			i++
			valOff = i
			continue
		}
		if !inQuote && c == ']' {
			break
		}
		i++
	}

	fn(idx, valOff, i-valOff)
}
