// Package server exposes the invoice generation service over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shivohini/invoicegen/internal/model"
	"github.com/shivohini/invoicegen/internal/render"
	"github.com/shivohini/invoicegen/internal/storage"
)

// Config holds server configuration
type Config struct {
	Address      string
	OutputDir    string
	SignatureDir string
	LogoPath     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config   *Config
	router   *gin.Engine
	store    *storage.Store
	renderer *render.Renderer
}

// NewServer creates a new API server. The output and signature
// directories are created if they do not exist.
func NewServer(config *Config) (*Server, error) {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	store, err := storage.New(config.OutputDir, config.SignatureDir)
	if err != nil {
		return nil, err
	}

	var rendererOpts []render.RendererOption
	if config.LogoPath != "" {
		rendererOpts = append(rendererOpts, render.WithLogoPath(config.LogoPath))
	}
	renderer := render.NewRenderer(store.OutputDir, rendererOpts...)

	s := &Server{
		config:   config,
		router:   router,
		store:    store,
		renderer: renderer,
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.POST("/create_invoice", s.handleCreateInvoice)
	s.router.GET("/download/:filename", s.handleDownload)
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleCreateInvoice(c *gin.Context) {
	req, err := s.parsePayload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, CreateInvoiceResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	// The signature upload is optional; absence is not an error.
	signaturePath := ""
	if file, err := c.FormFile("signature"); err == nil && file.Filename != "" {
		dst := s.store.SignaturePath(file.Filename)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			slog.Error("signature upload failed", "file", file.Filename, "error", err)
			c.JSON(http.StatusInternalServerError, CreateInvoiceResponse{
				Success: false,
				Message: "failed to store signature image",
			})
			return
		}
		signaturePath = dst
	}

	inv := req.Invoice()

	filename, err := s.renderer.Render(inv, render.Options{
		SignaturePath: signaturePath,
		Notes:         req.Notes,
		Terms:         req.Terms,
		Currency:      req.CurrencyCode(),
	})
	if err != nil {
		slog.Error("invoice render failed", "number", inv.Number, "error", err)
		c.JSON(http.StatusInternalServerError, CreateInvoiceResponse{
			Success: false,
			Message: "failed to generate PDF",
		})
		return
	}

	slog.Info("invoice rendered", "number", inv.Number, "file", filename, "items", len(inv.Items))

	c.JSON(http.StatusOK, CreateInvoiceResponse{
		Success:       true,
		InvoiceNumber: inv.Number,
		PDFURL:        "/download/" + filename,
	})
}

func (s *Server) handleDownload(c *gin.Context) {
	name := c.Param("filename")

	path, err := s.store.PDFPath(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "file not found"})
		return
	}
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "file not found"})
		return
	}

	c.FileAttachment(path, name)
}

// parsePayload reads the create-invoice request either from the "data"
// form field or from the raw JSON body.
func (s *Server) parsePayload(c *gin.Context) (*CreateInvoiceRequest, error) {
	if raw := c.PostForm("data"); raw != "" {
		return DecodePayload([]byte(raw))
	}

	body, err := c.GetRawData()
	if err != nil {
		return nil, model.NewValidationError("body", nil, "failed to read request body")
	}
	return DecodePayload(body)
}
