// Package importer loads menu items from a CSV export and pushes them to the
// backend catalog.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"scoopdash/internal/domain"

	"github.com/shopspring/decimal"
)

type ProductWriter interface {
	CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads a menu CSV and creates one catalog product per row.
type CSVImporter struct {
	reader   *csv.Reader
	products ProductWriter
}

func NewCSVImporter(r io.Reader, w ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:   csvr,
		products: w,
	}
}

// Run parses CSV rows and creates products. It stops on the first bad row so
// a partial import is visible in the returned count.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["name"]; !ok {
		return 0, errors.New(`missing "name" column`)
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		product, ok, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if !ok {
			continue
		}

		if _, err := i.products.CreateProduct(ctx, product); err != nil {
			return imported, fmt.Errorf("create product %q: %w", product.Name, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (domain.Product, bool, error) {
	name := pick(record, index, "name")
	priceStr := pick(record, index, "price")
	if name == "" && priceStr == "" {
		return domain.Product{}, false, nil
	}
	if name == "" {
		return domain.Product{}, false, errors.New("row missing name")
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return domain.Product{}, false, fmt.Errorf("bad price for %q: %w", name, err)
	}
	if !price.IsPositive() {
		return domain.Product{}, false, fmt.Errorf("price for %q must be positive", name)
	}

	available := true
	if v := pick(record, index, "available"); v != "" {
		available, err = strconv.ParseBool(v)
		if err != nil {
			return domain.Product{}, false, fmt.Errorf("bad available flag for %q: %w", name, err)
		}
	}

	return domain.Product{
		Name:        name,
		Description: pick(record, index, "description"),
		Price:       price,
		Category:    pick(record, index, "category"),
		ImageURL:    pick(record, index, "image_url"),
		Available:   available,
	}, true, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
