package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"bookreviews/pkg/book"
)

// LoadCatalog reads the pre-populated catalog mapping supplied at
// process start. The file is a JSON object keyed by ISBN:
//
//	{"1": {"title": "Things Fall Apart", "author": "Chinua Achebe"}}
func LoadCatalog(path string) (map[string]*book.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	catalog := make(map[string]*book.Book)
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(catalog) == 0 {
		return nil, fmt.Errorf("catalog seed %s is empty", path)
	}
	return catalog, nil
}
