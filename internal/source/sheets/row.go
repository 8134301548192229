// Copyright (c) 2026 OWH Studio. All rights reserved.

package sheets

import "strings"

// formattedSuffix marks the display-formatted twin of a cell value. When the
// spreadsheet formats a raw value (dates, padded numbers), both forms are
// kept: "An" holds the raw value, "An__f" the formatted string.
const formattedSuffix = "__f"

// tabCategoryKey is the synthetic column carrying the tab a row came from,
// used as the category fallback when the row has no explicit category cell.
const tabCategoryKey = "__sheet_category"

// Row is one spreadsheet row: display values keyed by column label, with the
// column order preserved so value scans are deterministic.
type Row struct {
	columns []string
	values  map[string]string
}

// NewRow creates an empty row.
func NewRow() Row {
	return Row{values: make(map[string]string)}
}

// Set stores a value under the given column label.
func (row *Row) Set(column, value string) {
	if _, exists := row.values[column]; !exists {
		row.columns = append(row.columns, column)
	}
	row.values[column] = value
}

// Value returns the raw value stored under the exact column label.
func (row Row) Value(column string) string {
	return row.values[column]
}

// Pick returns the first non-empty value among the candidate column labels.
// Exact matches win; otherwise labels are compared trimmed and lowercased,
// because sheet headers drift in casing and stray whitespace.
func (row Row) Pick(candidates ...string) string {
	for _, candidate := range candidates {
		if value := row.values[candidate]; value != "" {
			return value
		}
	}

	folded := make(map[string]string, len(row.values))
	for column, value := range row.values {
		key := strings.ToLower(strings.TrimSpace(column))
		if _, taken := folded[key]; !taken && value != "" {
			folded[key] = value
		}
	}

	for _, candidate := range candidates {
		if value := folded[strings.ToLower(strings.TrimSpace(candidate))]; value != "" {
			return value
		}
	}

	return ""
}

// Scan visits every value in column order until visit returns a non-empty
// result, which it then returns. Used to hunt for an image URL anywhere in
// the row when the poster column is empty.
func (row Row) Scan(visit func(value string) string) string {
	for _, column := range row.columns {
		if result := visit(row.values[column]); result != "" {
			return result
		}
	}
	return ""
}

// SetTabCategory tags the row with the category of its source tab.
func (row *Row) SetTabCategory(category string) {
	row.Set(tabCategoryKey, category)
}

// TabCategory returns the source-tab category tag, if any.
func (row Row) TabCategory() string {
	return row.values[tabCategoryKey]
}
