package main

import (
	"context"
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/camilledzt/skyportal/internal/history"
	mw "github.com/camilledzt/skyportal/internal/middleware"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	// devMode is set in main() based on env: SKYPORTAL_DEV (preferred) or DEV (fallback)
	devMode   bool
	tmplCache *template.Template

	// catalog is the validated source snapshot served by this process; it is
	// loaded once before the listener starts and never mutated.
	catalog *history.Catalog
)

func main() {
	// Flags/environment
	var (
		addr        string
		tmplPath    string
		pubPath     string
		catalogPath string
		dbPath      string
	)
	// Port resolution: prefer SKYPORTAL_PORT, then PORT, else 8080
	port := os.Getenv("SKYPORTAL_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	flag.StringVar(&addr, "addr", ":"+port, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", templatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", publicDir, "public assets directory")
	flag.StringVar(&catalogPath, "catalog", os.Getenv("SKYPORTAL_CATALOG"), "YAML catalog file")
	flag.StringVar(&dbPath, "db", os.Getenv("SKYPORTAL_DB"), "SQLite catalog database")
	flag.Parse()

	templatesDir = tmplPath
	publicDir = pubPath

	// Dev mode: prefer SKYPORTAL_DEV, fallback to DEV
	devMode = os.Getenv("SKYPORTAL_DEV") != "" || os.Getenv("DEV") != ""

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			log.Fatalf("parse templates: %v", err)
		}
		tmplCache = tc
	}

	// A malformed catalog fails here, before anything renders.
	c, origin, err := loadCatalog(catalogPath, dbPath)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	catalog = c
	log.Printf("catalog loaded: %d sources (%s)", catalog.Len(), origin)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(middleware.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Static assets under /assets/
	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(publicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, sourcesPagePath, http.StatusFound)
	})
	r.Get(sourcesPagePath, PublicSourcesHandler)
	r.Get(sourcesTablePath, SourcesTableFrag)
	// Per-source and per-version detail URLs are emitted by the listing but
	// resolved by the main portal router, not this process.

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("web listening on %s (devMode=%v)", addr, devMode)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %v", err)
	}
}

// loadCatalog materializes the source snapshot from whichever collaborator is
// configured: a SQLite database, a YAML file, or the built-in sample set.
func loadCatalog(catalogPath, dbPath string) (*history.Catalog, string, error) {
	switch {
	case dbPath != "":
		db, err := history.OpenSQLite(dbPath)
		if err != nil {
			return nil, "", err
		}
		defer db.Close()
		c, err := history.LoadSQLite(context.Background(), db)
		return c, "sqlite " + dbPath, err
	case catalogPath != "":
		c, err := history.LoadYAML(catalogPath)
		return c, "yaml " + catalogPath, err
	default:
		c, err := sampleCatalog()
		return c, "built-in sample", err
	}
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
		// JSON-LD payloads are produced by internal/seo from trusted data.
		"safeJS": func(s string) template.JS { return template.JS(s) },
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

func lookupTemplates(w http.ResponseWriter) *template.Template {
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return nil
		}
		return tc
	}
	if tmplCache == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return nil
	}
	return tmplCache
}

// renderPage executes a full page template. In dev mode, templates are
// reparsed on each request.
func renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	t := lookupTemplates(w)
	if t == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}

// renderTemplate executes a fragment template for htmx swaps.
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	t := lookupTemplates(w)
	if t == nil {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}

func baseURL(r *http.Request) string {
	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

func absoluteURL(r *http.Request) string {
	return baseURL(r) + r.URL.RequestURI()
}
