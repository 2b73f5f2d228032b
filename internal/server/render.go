package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	g "maragu.dev/gomponents"
)

const htmlContentType = "text/html; charset=utf-8"

// nodeRender adapts a gomponents node to gin's render interface.
type nodeRender struct {
	node g.Node
}

var _ render.Render = nodeRender{}

func (r nodeRender) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.node.Render(w)
}

func (r nodeRender) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if len(header["Content-Type"]) == 0 {
		header["Content-Type"] = []string{htmlContentType}
	}
}

func renderNode(c *gin.Context, code int, n g.Node) {
	c.Render(code, nodeRender{node: n})
}
