package web

import (
	"embed"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewsFS embed.FS

// NewViewEngine returns the html engine over the embedded views. Templates
// are addressed by file name without extension ("index", "dashboard").
func NewViewEngine() *html.Engine {
	views, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(views), ".html")
	engine.AddFunc("formatScore", func(score float64) string {
		return strconv.FormatFloat(score, 'f', 2, 64) + "%"
	})
	return engine
}
