package excelimport

import "strings"

// AutoMatchColumns proposes a mapping from uploaded headers to canonical
// fields. Per header, in template declaration order: exact match on the
// normalized (trimmed, lowercased) display header, then substring match in
// either direction. Headers with no match are omitted, which downstream
// treats as "skip this column". A canonical field is claimed at most once.
// The result is advisory; the user confirms or edits it before validation.
func AutoMatchColumns(headers []string) []ColumnMapping {
	var mappings []ColumnMapping
	claimed := make(map[string]bool, len(TemplateColumns))

	for _, header := range headers {
		normalized := strings.ToLower(strings.TrimSpace(header))
		if normalized == "" {
			continue
		}

		field := matchField(normalized, claimed)
		if field == "" {
			continue
		}

		claimed[field] = true
		mappings = append(mappings, ColumnMapping{
			ExcelColumn: header,
			Field:       field,
		})
	}

	return mappings
}

func matchField(normalized string, claimed map[string]bool) string {
	for _, col := range TemplateColumns {
		if claimed[col.Field] {
			continue
		}
		if strings.ToLower(col.Header) == normalized {
			return col.Field
		}
	}

	for _, col := range TemplateColumns {
		if claimed[col.Field] {
			continue
		}
		template := strings.ToLower(col.Header)
		if strings.Contains(template, normalized) || strings.Contains(normalized, template) {
			return col.Field
		}
	}

	return ""
}
