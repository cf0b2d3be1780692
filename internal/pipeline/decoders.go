package pipeline

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"inventory-manager/internal/models"
)

const maxLineSize = 1 << 20

type tsvDecoder struct{}

func (tsvDecoder) Decode(r io.Reader) ([]models.Item, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	items := make([]models.Item, 0)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, malformedf("line %d: expected 3 tab-separated fields, got %d", lineNo, len(fields))
		}
		items = append(items, models.Item{
			SerialNumber: fields[0],
			Name:         fields[1],
			Cost:         fields[2],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return items, nil
}

// jsonDecoder reads the back-to-back objects written by jsonEncoder. A single
// top-level array is accepted as well.
type jsonDecoder struct{}

func (jsonDecoder) Decode(r io.Reader) ([]models.Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	trimmed := bytes.TrimSpace(data)
	items := make([]models.Item, 0)
	if len(trimmed) == 0 {
		return items, nil
	}

	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, malformedf("%v", err)
		}
		return items, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	for {
		var item models.Item
		err := dec.Decode(&item)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, malformedf("object %d: %v", len(items)+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// htmlDecoder turns every table row with three data cells into an item.
// Header rows are skipped.
type htmlDecoder struct{}

func (htmlDecoder) Decode(r io.Reader) ([]models.Item, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	items := make([]models.Item, 0)
	rowNo := 0
	var walkErr error

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if walkErr != nil {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
			rowNo++
			cells, header := rowCells(n)
			if header {
				return
			}
			if len(cells) != 3 {
				walkErr = malformedf("row %d: expected 3 cells, got %d", rowNo, len(cells))
				return
			}
			items = append(items, models.Item{
				SerialNumber: cells[0],
				Name:         cells[1],
				Cost:         cells[2],
			})
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if walkErr != nil {
		return nil, walkErr
	}
	return items, nil
}

func rowCells(tr *html.Node) (cells []string, header bool) {
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Th:
			header = true
		case atom.Td:
			cells = append(cells, textContent(c))
		}
	}
	return cells, header
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}
