// Package web serves the HTML pages of the site.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// Pages renders the static pages. horizon is shown on the info page.
type Pages struct {
	horizon int
}

// NewPages creates Pages for a forecast of the given number of days.
func NewPages(horizon int) *Pages {
	return &Pages{horizon: horizon}
}

// Index renders the forecast page.
func (p *Pages) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Title": "Predicción de precios"})
}

// PIMA renders the raw price list page.
func (p *Pages) PIMA(c *gin.Context) {
	c.HTML(http.StatusOK, "pima.html", gin.H{"Title": "Precios PIMA"})
}

// Info renders the about page.
func (p *Pages) Info(c *gin.Context) {
	c.HTML(http.StatusOK, "info.html", gin.H{"Title": "Información", "Horizon": p.horizon})
}
