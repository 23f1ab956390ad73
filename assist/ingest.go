package assist

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseHTML extracts a document from an HTML article. The title comes from
// the first h1 (falling back to <title>), the category from a
// meta[name=category] tag, and the content from the article body or, when
// no <article> is present, all paragraph and list text. Parsing only — the
// caller supplies the bytes.
func ParseHTML(id, url string, r io.Reader) (Document, error) {
	sel, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Document{}, fmt.Errorf("ingest: parse html: %w", err)
	}

	title := strings.TrimSpace(sel.Find("h1").First().Text())
	if title == "" {
		title = strings.TrimSpace(sel.Find("title").First().Text())
	}

	category, _ := sel.Find(`meta[name="category"]`).Attr("content")

	root := sel.Find("article").First()
	if root.Length() == 0 {
		root = sel.Find("body").First()
	}

	var parts []string
	root.Find("h2, h3, p, li").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	content := strings.Join(parts, "\n")
	if content == "" {
		return Document{}, fmt.Errorf("ingest: no content in %s", id)
	}

	return Document{
		ID:       id,
		Title:    title,
		URL:      url,
		Category: strings.TrimSpace(category),
		Content:  content,
	}, nil
}

// AddFile parses and indexes a single article file. HTML files go through
// ParseHTML; markdown files are indexed with their first heading as the
// title. The document ID is the file name without its extension.
func (s *Store) AddFile(path string) (Document, error) {
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		f, err := os.Open(path)
		if err != nil {
			return Document{}, fmt.Errorf("ingest: %w", err)
		}
		defer f.Close()
		doc, err := ParseHTML(id, "", f)
		if err != nil {
			return Document{}, err
		}
		return doc, s.Add(doc)

	case ".md", ".markdown":
		data, err := os.ReadFile(path)
		if err != nil {
			return Document{}, fmt.Errorf("ingest: %w", err)
		}
		doc := Document{
			ID:      id,
			Title:   markdownTitle(id, data),
			Content: ExtractText(data),
		}
		return doc, s.Add(doc)
	}
	return Document{}, fmt.Errorf("ingest: unsupported file type %q", filepath.Ext(path))
}

// LoadDir indexes every article file in dir. Files without a recognized
// extension are skipped. Returns the number of documents indexed.
func (s *Store) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("ingest: read dir: %w", err)
	}

	count := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".html", ".htm", ".md", ".markdown":
			if _, err := s.AddFile(filepath.Join(dir, e.Name())); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

// markdownTitle returns the first top-level heading, falling back to id.
func markdownTitle(id string, source []byte) string {
	for _, line := range strings.Split(string(source), "\n") {
		if strings.HasPrefix(line, "# ") {
			if t := strings.TrimSpace(line[2:]); t != "" {
				return t
			}
		}
	}
	return id
}
