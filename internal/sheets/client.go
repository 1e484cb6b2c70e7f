// Package sheets adapts the spreadsheet-backed CUSTOMER DATA table to keyed
// records. The backing store is Google Sheets; everything above the Client
// interface is header-driven and knows nothing about the API.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Client is the minimal spreadsheet surface the form store needs. Appends
// are at-least-once: the backing API has no idempotency key, so a retried
// append may duplicate rows and callers must tolerate that.
type Client interface {
	// GetValues returns every row of the named sheet, header row included.
	GetValues(ctx context.Context, sheetName string) ([][]string, error)
	// Append adds rows after the last non-empty row.
	Append(ctx context.Context, sheetName string, rows [][]string) error
	// Update overwrites one full row. rowNumber is 1-based and includes the
	// header row, matching the A1 notation of the API.
	Update(ctx context.Context, sheetName string, rowNumber int, row []string) error
}

type googleClient struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

// NewGoogleClient builds a Client over the Sheets API using service-account
// credentials JSON.
func NewGoogleClient(ctx context.Context, spreadsheetID string, credentialsJSON []byte) (Client, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &googleClient{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (c *googleClient) GetValues(ctx context.Context, sheetName string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, sheetName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get values for sheet %q: %w", sheetName, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *googleClient) Append(ctx context.Context, sheetName string, rows [][]string) error {
	vr := &sheetsapi.ValueRange{Values: toInterfaceRows(rows)}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, sheetName, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to sheet %q: %w", sheetName, err)
	}
	return nil
}

func (c *googleClient) Update(ctx context.Context, sheetName string, rowNumber int, row []string) error {
	rng := fmt.Sprintf("'%s'!A%d", sheetName, rowNumber)
	vr := &sheetsapi.ValueRange{Values: toInterfaceRows([][]string{row})}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("update row %d of sheet %q: %w", rowNumber, sheetName, err)
	}
	return nil
}

func toInterfaceRows(rows [][]string) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		out[i] = cells
	}
	return out
}
