package lexicon

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/trmorph/internal/domain"
)

// ReadRecords parses a tab-separated lexicon:
//
//	lemma <TAB> primary_pos [<TAB> secondary_pos [<TAB> attr,attr]]
//
// Lines starting with '#' are comments.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records := []Record{}
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read lexicon: %w", err)
		}
		if len(fields) == 1 && strings.TrimSpace(fields[0]) == "" {
			continue
		}
		if len(fields) < 2 {
			line, _ := cr.FieldPos(0)
			field := fmt.Sprintf("line %d", line)
			return nil, fmt.Errorf("read lexicon: %w", domain.NewValidationError(field, fmt.Sprintf("want at least 2 fields, got %d", len(fields))))
		}

		rec := Record{
			Lemma:      strings.TrimSpace(fields[0]),
			PrimaryPos: PrimaryPos(strings.TrimSpace(fields[1])),
		}
		if len(fields) > 2 {
			rec.SecondaryPos = SecondaryPos(strings.TrimSpace(fields[2]))
		}
		if len(fields) > 3 {
			for _, a := range strings.Split(fields[3], ",") {
				if a = strings.TrimSpace(a); a != "" {
					rec.Attributes = append(rec.Attributes, Attribute(a))
				}
			}
		}
		records = append(records, rec)
	}

	return records, nil
}
