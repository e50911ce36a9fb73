package parser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"

	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV decodes a CSV document with a header row.
// A leading UTF-8 byte order mark (as written by Excel) is dropped, and
// bare quotes inside unquoted fields are kept as text.
func ReadCSV(r io.Reader) (*models.Table, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	// Ragged records are padded in BuildTable.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return BuildTable(records, false)
}
