package handlers

import (
	"encoding/xml"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap handles GET /sitemap.xml.
func (h *CatalogHandler) Sitemap(baseURL string) gin.HandlerFunc {
	base := strings.TrimRight(baseURL, "/")
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		services, err := h.Svc.ListServices(ctx)
		if err != nil {
			internalError(c, "Sitemap: failed to list services", err)
			return
		}
		states, err := h.Svc.ListStates(ctx)
		if err != nil {
			internalError(c, "Sitemap: failed to list states", err)
			return
		}

		set := sitemapURLSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
		add := func(path, freq, priority string) {
			set.URLs = append(set.URLs, sitemapURL{Loc: base + path, ChangeFreq: freq, Priority: priority})
		}
		add("/", "daily", "1.0")
		add("/locations", "weekly", "0.8")
		for _, p := range []string{"/about", "/contact", "/privacy"} {
			add(p, "monthly", "0.3")
		}
		for _, s := range services {
			add("/services/"+url.PathEscape(s.Slug), "weekly", "0.9")
		}
		for _, st := range states {
			add("/states/"+url.PathEscape(st), "weekly", "0.7")
		}
		for _, s := range services {
			for _, st := range s.States {
				add("/services/"+url.PathEscape(s.Slug)+"/"+url.PathEscape(st), "monthly", "0.5")
			}
		}

		out, err := xml.MarshalIndent(set, "", "  ")
		if err != nil {
			internalError(c, "Sitemap: failed to encode", err)
			return
		}
		c.Data(http.StatusOK, "application/xml", append([]byte(xml.Header), out...))
	}
}
