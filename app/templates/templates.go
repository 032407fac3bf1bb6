package templates

import (
	"embed"
	"net/http"
	"strconv"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html layouts/*.html
var files embed.FS

// Engine builds the view engine from the embedded templates, so rendering
// does not depend on the working directory.
func Engine() *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.AddFunc("weight", func(w *float64) string {
		if w == nil {
			return "-"
		}
		return strconv.FormatFloat(*w, 'f', 1, 64)
	})
	return engine
}
