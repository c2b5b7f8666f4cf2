package registry

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LibraryPrefix is the path prefix of model pages in the catalog.
const LibraryPrefix = "/library/"

var librarySelector = "a[href^='" + LibraryPrefix + "']"

// ParseModels extracts model names from a catalog page. Links to sub-pages
// (e.g. /library/llama3/tags) are ignored. The result is sorted and free of
// duplicates.
func ParseModels(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse catalog page: %w", err)
	}

	seen := make(map[string]struct{})
	doc.Find(librarySelector).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		if name := modelName(href); name != "" {
			seen[name] = struct{}{}
		}
	})

	models := make([]string, 0, len(seen))
	for name := range seen {
		models = append(models, name)
	}
	sort.Strings(models)
	return models, nil
}

func modelName(href string) string {
	name, ok := strings.CutPrefix(href, LibraryPrefix)
	if !ok {
		return ""
	}
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	if strings.Contains(name, "/") {
		return ""
	}
	return name
}
