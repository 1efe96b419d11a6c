// Package deck turns raw delimited text into a validated domain Deck.
// Pure functions: text in, domain structs out. No I/O, no storage
// dependencies.
package deck

// Parse scans comma-delimited text into rows of string fields.
//
// Quoting follows RFC 4180 loosely: a field may be wrapped in double
// quotes, inside which delimiters and line breaks are literal and a
// doubled quote ("") decodes to one literal quote. The scan is a single
// left-to-right pass with one inside-quotes bit; it never fails:
// an unterminated quote is absorbed into the final field.
//
// Row breaks are \n, \r\n, or a lone \r. A row whose fields are all
// zero-length (blank lines anywhere, including a trailing one) is
// dropped. A trailing row without a final line break is still emitted.
func Parse(text string) [][]string {
	var rows [][]string
	var row []string
	var field []byte
	inQuotes := false

	flushRow := func() {
		row = append(row, string(field))
		field = field[:0]
		for _, f := range row {
			if len(f) > 0 {
				rows = append(rows, row)
				break
			}
		}
		row = nil
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]

		if ch == '"' {
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				field = append(field, '"')
				i++
				continue
			}
			inQuotes = !inQuotes
			continue
		}

		if ch == ',' && !inQuotes {
			row = append(row, string(field))
			field = field[:0]
			continue
		}

		if (ch == '\n' || ch == '\r') && !inQuotes {
			if ch == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			flushRow()
			continue
		}

		field = append(field, ch)
	}

	// Final row may lack a line break.
	flushRow()

	return rows
}
