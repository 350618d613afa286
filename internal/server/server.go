// Package server exposes quoting and batch jobs over HTTP.
package server

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"freight-cost/internal/batch"
	"freight-cost/internal/config"
	"freight-cost/internal/excel"
	"freight-cost/internal/job"
	"freight-cost/internal/quote"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionName  = "freightsession"
	jobRetention = 24 * time.Hour
	xlsxMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Server struct {
	cfg    *config.Config
	quotes *quote.Service
	jobs   *job.Store
	engine *gin.Engine
}

func New(cfg *config.Config, quotes *quote.Service) *Server {
	gin.SetMode(cfg.GinMode)

	s := &Server{
		cfg:    cfg,
		quotes: quotes,
		jobs:   job.NewStore(),
		engine: gin.Default(),
	}

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	s.engine.Use(sessions.Sessions(sessionName, store))

	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run() error {
	for _, dir := range []string{s.cfg.UploadDir, s.cfg.OutputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("server.Run: %w", err)
		}
	}
	log.Printf("Freight EV cost server running on port %s", s.cfg.Port)
	return s.engine.Run(":" + s.cfg.Port)
}

func (s *Server) routes() {
	r := s.engine

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.POST("/api/quote", s.handleQuote)

	r.POST("/login", s.handleLogin)
	r.POST("/logout", s.handleLogout)

	authorized := r.Group("/")
	authorized.Use(s.authRequired)
	{
		authorized.POST("/run", s.handleRun)
		authorized.GET("/logs", s.handleLogs)
		authorized.GET("/status", s.handleStatus)
		authorized.POST("/cancel", s.handleCancel)
		authorized.GET("/download-template", s.handleTemplate)
		authorized.GET("/download-result/:filename", s.handleDownload)
	}
}

func (s *Server) authRequired(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get("user") == nil {
		abortWithError(c, http.StatusUnauthorized, "unauthorized", "Login required.")
		return
	}
	c.Next()
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if req.Username != s.cfg.LoginUser || req.Password != s.cfg.LoginPass {
		abortWithError(c, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password.")
		return
	}

	session := sessions.Default(c)
	session.Set("user", req.Username)
	if err := session.Save(); err != nil {
		abortWithError(c, http.StatusInternalServerError, "session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) handleLogout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		abortWithError(c, http.StatusInternalServerError, "session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) handleRun(c *gin.Context) {
	file, err := c.FormFile("input_file")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "bad_request", "Please choose a file.")
		return
	}

	for _, dir := range []string{s.cfg.UploadDir, s.cfg.OutputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			abortWithError(c, http.StatusInternalServerError, "storage", err.Error())
			return
		}
	}

	inputPath := filepath.Join(s.cfg.UploadDir, fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, inputPath); err != nil {
		abortWithError(c, http.StatusInternalServerError, "storage", "Could not save the uploaded file.")
		return
	}

	if n := s.jobs.Prune(time.Now().Add(-jobRetention)); n > 0 {
		log.Printf("pruned %d finished jobs", n)
	}

	ctx, cancel := context.WithCancel(context.Background())
	j := s.jobs.Create(cancel)
	go s.processJob(ctx, j, inputPath)

	c.JSON(http.StatusAccepted, gin.H{"ok": true, "job_id": j.ID})
}

func (s *Server) processJob(ctx context.Context, j *job.Job, inputPath string) {
	defer func() {
		if r := recover(); r != nil {
			j.Fail(fmt.Sprintf("Panic: %v", r))
		}
	}()

	start := time.Now()
	outputPath := batch.OutputPath(s.cfg.OutputDir, inputPath)
	opts := batch.Options{TripSheet: s.cfg.TripSheet, ResultSheet: s.cfg.ResultSheet}

	summary, err := batch.Process(ctx, inputPath, outputPath, opts, s.quotes.QuoteRow, j.SetProgress, j.Log)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		j.Fail(err.Error())
		return
	}

	j.Log(fmt.Sprintf("Finished in %s", time.Since(start)))
	j.Finish(&job.Result{
		Rows:     summary.Rows,
		Quoted:   summary.Quoted,
		Sheet:    s.cfg.ResultSheet,
		Output:   summary.Output,
		Filename: filepath.Base(summary.Output),
	})
}

func (s *Server) lookupJob(c *gin.Context) *job.Job {
	j := s.jobs.Get(c.Query("job_id"))
	if j == nil {
		abortWithError(c, http.StatusNotFound, "not_found", "Job not found.")
	}
	return j
}

func (s *Server) handleLogs(c *gin.Context) {
	j := s.lookupJob(c)
	if j == nil {
		return
	}
	snap := j.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"logs":     snap.Logs,
		"status":   snap.Status,
		"progress": snap.Progress,
	})
}

func (s *Server) handleStatus(c *gin.Context) {
	j := s.lookupJob(c)
	if j == nil {
		return
	}
	snap := j.Snapshot()
	res := gin.H{
		"ok":     true,
		"status": snap.Status,
		"error":  snap.Error,
	}
	if snap.Result != nil {
		res["result"] = snap.Result
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleCancel(c *gin.Context) {
	j := s.lookupJob(c)
	if j == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "cancelled": j.Cancel()})
}

func (s *Server) handleTemplate(c *gin.Context) {
	var buf bytes.Buffer
	if err := excel.WriteTemplate(&buf, s.cfg.TripSheet); err != nil {
		log.Printf("server.handleTemplate: %v", err)
		abortWithError(c, http.StatusInternalServerError, "internal", "Could not build the template.")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="trips_template.xlsx"`)
	c.Data(http.StatusOK, xlsxMIME, buf.Bytes())
}

func (s *Server) handleDownload(c *gin.Context) {
	target := filepath.Join(s.cfg.OutputDir, filepath.Base(c.Param("filename")))
	if _, err := os.Stat(target); err != nil {
		abortWithError(c, http.StatusNotFound, "not_found", "Result file not found.")
		return
	}
	c.FileAttachment(target, filepath.Base(target))
}
