package router

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/curriforge/internal/config"
	"github.com/stemsi/curriforge/internal/middleware"
	"github.com/stemsi/curriforge/internal/response"
)

// assetMaxAge is one year; bundler output under /assets is content-hashed.
const assetMaxAge = 31536000

// mountFrontend routes every non-API path either to the dev server (outside
// production, when DEV_SERVER_URL is set) or to the built files in StaticDir.
func mountFrontend(r *gin.Engine, cfg *config.Config, log zerolog.Logger) error {
	log = log.With().Str("component", "frontend").Logger()

	if !cfg.IsProduction() && cfg.DevServerURL != "" {
		proxy, err := devProxy(cfg.DevServerURL, log)
		if err != nil {
			return err
		}
		r.NoRoute(func(c *gin.Context) {
			if isAPIPath(c.Request.URL.Path) {
				response.Fail(c, http.StatusNotFound, response.ErrNotFound)
				return
			}
			proxy.ServeHTTP(c.Writer, c.Request)
		})
		log.Info().Str("target", cfg.DevServerURL).Msg("Proxying frontend to dev server")
		return nil
	}

	assets := r.Group("/assets")
	assets.Use(middleware.CacheControl(assetMaxAge))
	{
		assets.Static("/", filepath.Join(cfg.StaticDir, "assets"))
	}

	r.NoRoute(spaFallback(cfg.StaticDir))
	log.Info().Str("dir", cfg.StaticDir).Msg("Serving built frontend")
	return nil
}

func devProxy(rawURL string, log zerolog.Logger) (*httputil.ReverseProxy, error) {
	target, err := url.Parse(rawURL)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("invalid DEV_SERVER_URL %q", rawURL)
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, req *http.Request, err error) {
		log.Warn().Err(err).Str("path", req.URL.Path).Msg("dev server unreachable")
		w.WriteHeader(http.StatusBadGateway)
	}
	return proxy, nil
}

// spaFallback serves an existing file from dir, otherwise index.html so the
// client-side router can resolve the path.
func spaFallback(dir string) gin.HandlerFunc {
	index := filepath.Join(dir, "index.html")

	return func(c *gin.Context) {
		method := c.Request.Method
		if isAPIPath(c.Request.URL.Path) || (method != http.MethodGet && method != http.MethodHead) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}

		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+c.Request.URL.Path)))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			c.File(name)
			return
		}

		if _, err := os.Stat(index); err != nil {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		c.Header("Cache-Control", "no-cache")
		c.File(index)
	}
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}
