package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/filmlens/filmlens/internal/domain"
)

// ErrMissingColumn indicates the input file lacks one of the required
// columns. This is fatal at startup; the transforms never see such a file.
var ErrMissingColumn = errors.New("dataset: required column missing")

const (
	colTitle  = "title"
	colGenres = "genres"
	colRating = "rating"
	colYear   = "year"
)

var requiredColumns = []string{colTitle, colGenres, colRating, colYear}

// Load reads the ratings CSV at path into an immutable Table. The file must
// carry a header row naming at least title, genres, rating, and year; one
// data row per rating observation. Rows with a missing or unparseable value
// in any required column are dropped, so every row in the returned table is
// fully populated.
func Load(path string, logger *log.Logger) (*Table, error) {
	if logger == nil {
		logger = log.Default()
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	hasRows, err := validateHeader(payload)
	if err != nil {
		return nil, err
	}
	if !hasRows {
		logger.Printf("dataset: %s has a header but no rows", path)
		return NewTable(nil), nil
	}

	df := dataframe.ReadCSV(bytes.NewReader(payload),
		dataframe.HasHeader(true),
		dataframe.WithTypes(map[string]series.Type{
			colTitle:  series.String,
			colGenres: series.String,
			colRating: series.Float,
			colYear:   series.Int,
		}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("parse dataset: %w", df.Err)
	}

	titles := df.Col(colTitle).Records()
	genres := df.Col(colGenres).Records()
	ratings := df.Col(colRating).Float()
	years := df.Col(colYear).Float()

	records := make([]domain.Record, 0, df.Nrow())
	dropped := 0
	for i := 0; i < df.Nrow(); i++ {
		if isMissingString(titles[i]) || isMissingString(genres[i]) ||
			math.IsNaN(ratings[i]) || math.IsNaN(years[i]) {
			dropped++
			continue
		}
		records = append(records, domain.Record{
			Title:  titles[i],
			Genre:  genres[i],
			Rating: ratings[i],
			Year:   int(years[i]),
		})
	}

	if dropped > 0 {
		logger.Printf("dataset: dropped %d of %d rows with missing values", dropped, df.Nrow())
	}
	logger.Printf("dataset: loaded %d rating rows from %s", len(records), path)

	return NewTable(records), nil
}

// validateHeader checks the required columns are present and reports whether
// any data row follows the header. Parsing an empty file through the
// dataframe library is an error there, but an empty dataset is valid here.
func validateHeader(payload []byte) (bool, error) {
	reader := csv.NewReader(bytes.NewReader(payload))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return false, fmt.Errorf("read dataset header: %w", err)
	}

	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}
	for _, name := range requiredColumns {
		if !present[name] {
			return false, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("read dataset rows: %w", err)
	}
	return true, nil
}

// isMissingString reports whether a string cell was empty or unparseable.
// The dataframe library records absent string values as "NaN".
func isMissingString(val string) bool {
	return val == "" || val == "NaN"
}
