package pipeline

import (
	"html/template"
	"io"

	"github.com/goccy/go-json"

	"inventory-manager/internal/models"
)

// tsvEncoder writes serial, name and cost separated by tabs, one item per line, no header.
type tsvEncoder struct {
	lineSeparator string
}

func (e tsvEncoder) Encode(w io.Writer, items []models.Item) error {
	for _, item := range items {
		line := item.SerialNumber + "\t" + item.Name + "\t" + item.Cost + e.lineSeparator
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

// jsonEncoder writes every item as its own compact object, back to back,
// without a surrounding array or separators.
type jsonEncoder struct{}

func (jsonEncoder) Encode(w io.Writer, items []models.Item) error {
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

const htmlDocument = `<html><body><table>
<style type="text/css">
  td {
    padding: 0 15px;
  }
</style><tr><th>Serial Number` + "\t" + `</th><th>Name` + "\t" + `</th><th>Cost</th></tr>
{{range .}}<tr><td>{{.SerialNumber}}</td><td>{{.Name}}</td><td>{{.Cost}}</td></tr>
{{end}}</table></body></html>`

var htmlTemplate = template.Must(template.New("inventory").Parse(htmlDocument))

// htmlEncoder writes a single table with a header row and one row per item.
type htmlEncoder struct{}

func (htmlEncoder) Encode(w io.Writer, items []models.Item) error {
	return htmlTemplate.Execute(w, items)
}
