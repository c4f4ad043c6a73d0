package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin/render"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	layoutFile   = "templates/base.html"
	partialsFile = "templates/partials.html"
)

var templateFuncs = template.FuncMap{
	"date": func(t time.Time) string {
		return t.Format("2 Jan 2006 15:04")
	},
	"excerpt": func(s string, n int) string {
		r := []rune(s)
		if len(r) <= n {
			return s
		}
		return strings.TrimSpace(string(r[:n])) + "..."
	},
}

// Renderer holds one parsed template set per page, each layered over the
// shared layout and partials. It implements gin's render.HTMLRender.
type Renderer struct {
	pages    map[string]*template.Template
	partials *template.Template
}

func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "list templates")
	}
	partials, err := template.New(path.Base(partialsFile)).Funcs(templateFuncs).ParseFS(templateFS, partialsFile)
	if err != nil {
		return nil, errors.Wrap(err, "parse partials")
	}
	r := &Renderer{pages: make(map[string]*template.Template), partials: partials}
	for _, file := range files {
		if file == layoutFile || file == partialsFile {
			continue
		}
		name := path.Base(file)
		t, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, layoutFile, partialsFile, file)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", name)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) Instance(name string, data any) render.Render {
	return render.HTML{
		Template: r.lookup(name),
		Name:     "base",
		Data:     data,
	}
}

// Fragment executes a named partial on its own, outside the layout.
func (r *Renderer) Fragment(block string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.partials.ExecuteTemplate(&buf, block, data); err != nil {
		return nil, errors.Wrapf(err, "render %s", block)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) lookup(name string) *template.Template {
	t, ok := r.pages[name]
	if !ok {
		panic("httpapi: unknown template " + name)
	}
	return t
}
