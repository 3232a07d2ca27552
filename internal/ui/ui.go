// Package ui serves the embedded demo page.
package ui

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var content embed.FS

// Register mounts the demo page at / and its assets under /static.
func Register(r gin.IRoutes) {
	assets, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(assets))
	r.GET("/", func(c *gin.Context) {
		c.FileFromFS("/", http.FS(assets))
	})
}
