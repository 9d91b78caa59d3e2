// Package sheets downloads the group attendance sheet as CSV and extracts the
// per-student absence marks from it.
package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode"
)

const (
	// DefaultTimeout bounds a single sheet download.
	DefaultTimeout = 15 * time.Second

	// firstStudentRow is the index of the first student row; rows above it
	// are the sheet header.
	firstStudentRow = 4
	nameColumn      = 1
	firstMarkColumn = 2
	absentMark      = "н"
)

// StatusError is returned when the sheet export answers with a non-200 code.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sheet export returned status %d", e.StatusCode)
}

// Row is one student line of the attendance sheet.
type Row struct {
	Fullname string
	// Absences counts the cells marked as missed.
	Absences int
}

// Client fetches the attendance sheet.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient creates a client for the sheet at sheetURL. Both edit links and
// CSV export links are accepted.
func NewClient(sheetURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        ExportURL(sheetURL),
	}
}

// FetchRows downloads the sheet and returns its student rows.
func (c *Client) FetchRows(ctx context.Context) ([]Row, error) {
	records, err := c.ExportCSV(ctx)
	if err != nil {
		return nil, err
	}
	return ParseRows(records), nil
}

// ExportCSV downloads the sheet and returns the raw CSV records.
func (c *Client) ExportCSV(ctx context.Context) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build sheet request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("sheets: export returned %d: %s", resp.StatusCode, body)
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read sheet csv: %w", err)
	}
	return records, nil
}

// ParseRows extracts student rows. Header rows, short rows and rows whose
// name cell is empty or a plain number are skipped.
func ParseRows(records [][]string) []Row {
	rows := make([]Row, 0, len(records))
	for i := firstStudentRow; i < len(records); i++ {
		record := records[i]
		if len(record) <= nameColumn {
			continue
		}
		name := strings.TrimSpace(record[nameColumn])
		if name == "" || isDigits(name) {
			continue
		}

		row := Row{Fullname: name}
		for _, cell := range record[firstMarkColumn:] {
			if strings.ToLower(strings.TrimSpace(cell)) == absentMark {
				row.Absences++
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ExportURL turns a sheet link into its CSV export link. Links that already
// point at an export are returned unchanged.
func ExportURL(sheetURL string) string {
	if strings.Contains(sheetURL, "/export") {
		return sheetURL
	}
	base := sheetURL
	if idx := strings.IndexAny(base, "?#"); idx != -1 {
		base = base[:idx]
	}
	if !strings.Contains(base, "/d/") {
		return sheetURL
	}
	base = strings.TrimSuffix(base, "/edit")
	base = strings.TrimSuffix(base, "/")
	return base + "/export?format=csv"
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
