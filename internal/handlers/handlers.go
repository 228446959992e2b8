package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"casparser/internal/pdftext"
	"casparser/internal/service"
	"casparser/internal/statement"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc       *service.StatementService
	maxUpload int64
	log       *logrus.Logger
}

func NewHandler(svc *service.StatementService, maxUpload int64, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, maxUpload: maxUpload, log: log}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.POST("/statements", h.PostStatement)
	r.POST("/statements/text", h.PostStatementText)
	r.GET("/statements/:id", h.GetStatement)
	r.GET("/statements/:id/allocation", h.GetAllocation)
}

// PostStatement accepts a multipart upload with the statement PDF in "file" and its
// password in "password".
func (h *Handler) PostStatement(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		h.log.Warnf("missing statement file: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "statement file is required"})
		return
	}
	if fh.Size > h.maxUpload {
		h.log.Warnf("statement too large: %d bytes", fh.Size)
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "statement file is too large"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.log.Errorf("open upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxUpload))
	if err != nil {
		h.log.Errorf("read upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	res, err := h.svc.ParseDocument(c.Request.Context(), data, c.PostForm("password"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

type TextRequest struct {
	Text string `json:"text" binding:"required"`
}

// PostStatementText parses statement text that was extracted elsewhere.
func (h *Handler) PostStatementText(c *gin.Context) {
	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("invalid post body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if int64(len(req.Text)) > h.maxUpload {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "statement text is too large"})
		return
	}

	res, err := h.svc.ParseLines(c.Request.Context(), statement.SplitLines(req.Text))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) GetStatement(c *gin.Context) {
	res, ok := h.svc.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "statement not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetAllocation(c *gin.Context) {
	a, ok := h.svc.Allocation(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "statement not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"exposures": a.Exposures,
		"invested":  a.Invested.StringFixed(2),
		"returns":   a.Returns.StringFixed(2),
	})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pdftext.ErrWrongPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect password or unable to decrypt statement"})
	case errors.Is(err, pdftext.ErrNoText):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, statement.ErrEmptyPortfolio), errors.Is(err, statement.ErrMalformedNumber):
		h.log.Warnf("statement rejected: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "request canceled"})
	case errors.Is(err, pdftext.ErrUnreadable):
		h.log.Warnf("unreadable statement: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": pdftext.ErrUnreadable.Error()})
	default:
		h.log.Errorf("parse statement failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "parse failed"})
	}
}
