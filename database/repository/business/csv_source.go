package businessRepo

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"llcdirectory/models"

	"go.uber.org/zap"
)

// Column names of the business export.
const (
	colName        = "name"
	colState       = "us_state"
	colCity        = "city"
	colFullAddress = "full_address"
	colPhone       = "phone"
	colRating      = "rating"
	colReviews     = "reviews"
	colSite        = "site"
	colSubtypes    = "subtypes"
)

var knownColumns = map[string]struct{}{
	colName: {}, colState: {}, colCity: {}, colFullAddress: {}, colPhone: {},
	colRating: {}, colReviews: {}, colSite: {}, colSubtypes: {},
}

// CSVSource reads businesses from a CSV file with a header row.
// The file is opened on every call; nothing is cached.
type CSVSource struct {
	path   string
	logger *zap.Logger
}

func NewCSVSource(path string, logger *zap.Logger) *CSVSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVSource{path: path, logger: logger}
}

func (s *CSVSource) Path() string {
	return s.path
}

func (s *CSVSource) Businesses(ctx context.Context) ([]models.LocalBusiness, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceUnavailable, s.path)
		}
		return nil, fmt.Errorf("failed to open business csv %s: %w", s.path, err)
	}
	defer f.Close()

	businesses, err := s.read(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to read business csv %s: %w", s.path, err)
	}
	return normalizeBusinesses(businesses), nil
}

func (s *CSVSource) States(ctx context.Context) ([]string, error) {
	businesses, err := s.Businesses(ctx)
	if err != nil {
		return nil, err
	}
	return DistinctStates(businesses), nil
}

func (s *CSVSource) read(ctx context.Context, r io.Reader) ([]models.LocalBusiness, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var businesses []models.LocalBusiness
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				s.logger.Debug("skipping malformed csv row", zap.String("path", s.path), zap.Error(err))
				continue
			}
			return nil, err
		}
		businesses = append(businesses, rowToBusiness(header, record))
	}
	return businesses, nil
}

// rowToBusiness maps a CSV record onto a LocalBusiness. Cells past the end of a short row are empty.
func rowToBusiness(header, record []string) models.LocalBusiness {
	var b models.LocalBusiness
	for i, col := range header {
		var cell string
		if i < len(record) {
			cell = cleanCell(record[i])
		}
		switch col {
		case colName:
			b.Name = cell
		case colState:
			b.USState = cell
		case colCity:
			b.City = cell
		case colFullAddress:
			b.FullAddress = cell
		case colPhone:
			b.Phone = cell
		case colRating:
			b.Rating = parseFloat(cell)
		case colReviews:
			b.Reviews = clampReviews(parseFloat(cell))
		case colSite:
			b.Site = cell
		case colSubtypes:
			b.Subtypes = cell
		}
		if _, ok := knownColumns[col]; !ok && col != "" {
			if b.Extra == nil {
				b.Extra = make(map[string]string)
			}
			b.Extra[col] = cell
		}
	}
	return b
}

func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	if _, ok := nullMarkers[strings.ToLower(v)]; ok {
		return ""
	}
	return v
}

func parseFloat(v string) float64 {
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// clampReviews converts a parsed review count into the range 0..MaxInt32.
func clampReviews(f float64) int {
	switch {
	case f <= 0:
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	}
	return int(f)
}
