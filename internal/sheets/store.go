package sheets

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"carf-backend/internal/model"
	"carf-backend/pkg/apperr"

	"go.uber.org/zap"
)

// RowNotFound is the sentinel FindRowByKey returns when no row matches the
// key. It is not an error: callers decide whether a miss is a 404.
const RowNotFound = -1

// KeyColumn is the conventional positional key column of every sheet.
const KeyColumn = "#"

// FormStore reads and writes CARF rows by header name. Column order in the
// sheet is insignificant to readers and is re-derived on every write, so
// staff may reorder columns without breaking the adapter.
type FormStore struct {
	client        Client
	log           *zap.Logger
	CustomerSheet string
	EmailSheet    string
}

func NewFormStore(client Client, log *zap.Logger, customerSheet, emailSheet string) *FormStore {
	return &FormStore{
		client:        client,
		log:           log,
		CustomerSheet: customerSheet,
		EmailSheet:    emailSheet,
	}
}

// Headers returns the ordered column names of the sheet's first row.
func (s *FormStore) Headers(ctx context.Context, sheetName string) ([]string, error) {
	values, err := s.client.GetValues(ctx, sheetName)
	if err != nil {
		return nil, apperr.Upstream("read sheet "+sheetName, err)
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, apperr.NotFound("header row in sheet", sheetName)
	}
	return values[0], nil
}

// FindRowByKey scans the key column ("#", first column) for the trimmed
// string form of key. The returned row number is 1-based including the
// header row, ready for Update; RowNotFound means no match.
func (s *FormStore) FindRowByKey(ctx context.Context, sheetName, key string) (int, error) {
	values, err := s.client.GetValues(ctx, sheetName)
	if err != nil {
		return RowNotFound, apperr.Upstream("read sheet "+sheetName, err)
	}

	want := strings.TrimSpace(key)
	for i := 1; i < len(values); i++ {
		if len(values[i]) == 0 {
			continue
		}
		if strings.TrimSpace(values[i][0]) == want {
			return i + 1, nil
		}
	}
	return RowNotFound, nil
}

// FindRowByGencode locates a row by its gencode column and returns the sheet
// row number, the headers, and the row itself.
func (s *FormStore) FindRowByGencode(ctx context.Context, gencode string) (int, []string, []string, error) {
	values, err := s.client.GetValues(ctx, s.CustomerSheet)
	if err != nil {
		return RowNotFound, nil, nil, apperr.Upstream("read sheet "+s.CustomerSheet, err)
	}
	if len(values) == 0 {
		return RowNotFound, nil, nil, apperr.NotFound("header row in sheet", s.CustomerSheet)
	}

	headers := values[0]
	genCol := RowNotFound
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), "gencode") {
			genCol = i
			break
		}
	}
	if genCol == RowNotFound {
		return RowNotFound, nil, nil, apperr.NotFound("gencode column in sheet", s.CustomerSheet)
	}

	want := strings.TrimSpace(gencode)
	for i := 1; i < len(values); i++ {
		row := values[i]
		if genCol < len(row) && strings.TrimSpace(row[genCol]) == want {
			return i + 1, headers, row, nil
		}
	}
	return RowNotFound, headers, nil, nil
}

// LoadByGencode returns the typed record for a gencode.
func (s *FormStore) LoadByGencode(ctx context.Context, gencode string) (*model.CustomerFormRecord, error) {
	rowNum, headers, row, err := s.FindRowByGencode(ctx, gencode)
	if err != nil {
		return nil, err
	}
	if rowNum == RowNotFound {
		return nil, apperr.NotFound("customer with gencode", gencode)
	}
	return RowToRecord(headers, row), nil
}

// MapByGencode returns the row keyed by header name, for the legacy
// row-as-object endpoint.
func (s *FormStore) MapByGencode(ctx context.Context, gencode string) (map[string]string, error) {
	rowNum, headers, row, err := s.FindRowByGencode(ctx, gencode)
	if err != nil {
		return nil, err
	}
	if rowNum == RowNotFound {
		return nil, apperr.NotFound("customer with gencode", gencode)
	}
	return RowToMap(headers, row), nil
}

// Save writes the record back as a full-row overwrite, re-deriving the
// column order from the current headers first. This is the read-modify-write
// seam: two concurrent editors of the same gencode race, last writer wins.
func (s *FormStore) Save(ctx context.Context, rec *model.CustomerFormRecord) error {
	headers, err := s.Headers(ctx, s.CustomerSheet)
	if err != nil {
		return err
	}

	rowNum, err := s.FindRowByKey(ctx, s.CustomerSheet, rec.RowID)
	if err != nil {
		return err
	}
	if rowNum == RowNotFound {
		return apperr.NotFound("row", rec.RowID)
	}

	if err := s.client.Update(ctx, s.CustomerSheet, rowNum, RecordToRow(headers, rec)); err != nil {
		return apperr.Upstream("update sheet "+s.CustomerSheet, err)
	}
	return nil
}

// UpdateRow overwrites the row identified by rowID with cells taken from
// data, keyed by header name. List values are joined with ", "; missing
// fields become empty strings, never nulls.
func (s *FormStore) UpdateRow(ctx context.Context, sheetName, rowID string, data map[string]interface{}) (int, error) {
	headers, err := s.Headers(ctx, sheetName)
	if err != nil {
		return RowNotFound, err
	}

	rowNum, err := s.FindRowByKey(ctx, sheetName, rowID)
	if err != nil {
		return RowNotFound, err
	}
	if rowNum == RowNotFound {
		return RowNotFound, apperr.NotFound("row", rowID)
	}

	row := MapToRow(headers, data, rowID)
	if err := s.client.Update(ctx, sheetName, rowNum, row); err != nil {
		return RowNotFound, apperr.Upstream("update sheet "+sheetName, err)
	}
	return rowNum, nil
}

// AppendData maps each data object to a row and appends them. At-least-once:
// a retry after a transport failure may duplicate rows.
func (s *FormStore) AppendData(ctx context.Context, sheetName string, data []map[string]interface{}) ([][]string, error) {
	headers, err := s.Headers(ctx, sheetName)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(data))
	for _, d := range data {
		rows = append(rows, MapToRow(headers, d, ""))
	}

	if err := s.client.Append(ctx, sheetName, rows); err != nil {
		return nil, apperr.Upstream("append to sheet "+sheetName, err)
	}
	return rows, nil
}

// --- header-driven mapping ---

var sheetFieldIndex = buildSheetFieldIndex()

func buildSheetFieldIndex() map[string]int {
	idx := make(map[string]int)
	t := reflect.TypeOf(model.CustomerFormRecord{})
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("sheet")
		if tag != "" {
			idx[strings.ToLower(tag)] = i
		}
	}
	return idx
}

// RecordToRow lays the record out positionally along headers. Unknown
// headers map to empty cells so a widened sheet never breaks writes.
func RecordToRow(headers []string, rec *model.CustomerFormRecord) []string {
	v := reflect.ValueOf(rec).Elem()
	row := make([]string, len(headers))
	for i, h := range headers {
		fi, ok := sheetFieldIndex[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		row[i] = cellString(v.Field(fi))
	}
	return row
}

// RowToRecord populates a record from a row, trusting header positions.
func RowToRecord(headers []string, row []string) *model.CustomerFormRecord {
	rec := &model.CustomerFormRecord{}
	v := reflect.ValueOf(rec).Elem()
	for i, h := range headers {
		if i >= len(row) {
			break
		}
		fi, ok := sheetFieldIndex[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		f := v.Field(fi)
		if f.Kind() == reflect.Slice {
			f.Set(reflect.ValueOf(splitList(row[i])))
		} else {
			f.SetString(row[i])
		}
	}
	return rec
}

// RowToMap converts a row to an object keyed by header name.
func RowToMap(headers []string, row []string) map[string]string {
	out := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(row) {
			out[h] = row[i]
		} else {
			out[h] = ""
		}
	}
	return out
}

// MapToRow lays arbitrary form data out along headers. The "#" column takes
// rowID when given.
func MapToRow(headers []string, data map[string]interface{}, rowID string) []string {
	row := make([]string, len(headers))
	for i, h := range headers {
		if h == KeyColumn && rowID != "" {
			row[i] = rowID
			continue
		}
		row[i] = valueString(data[h])
	}
	return row
}

func cellString(f reflect.Value) string {
	if f.Kind() == reflect.Slice {
		parts := make([]string, f.Len())
		for i := 0; i < f.Len(); i++ {
			parts[i] = f.Index(i).String()
		}
		return strings.Join(parts, ", ")
	}
	return f.String()
}

func valueString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, valueString(item))
		}
		return strings.Join(parts, ", ")
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
