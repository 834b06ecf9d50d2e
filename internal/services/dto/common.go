package dto

import (
	"encoding/json"
	"strings"
)

// StringList принимает в JSON как массив строк, так и строку
// с разделителями-запятыми ("Go, SQL, Docker")
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = normalizeList(list)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = normalizeList(strings.Split(raw, ","))
	return nil
}

// normalizeList убирает пробелы и пустые элементы
func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
