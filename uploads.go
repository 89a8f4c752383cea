package main

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/pizza_sales/config"
	"github.com/mmdatafocus/pizza_sales/models"
	"github.com/mmdatafocus/pizza_sales/utils"
	"github.com/sirupsen/logrus"
)

const uploadFormField = "file"

type sessionInfo struct {
	SessionID   string   `json:"session_id"`
	Source      string   `json:"source"`
	Rows        int      `json:"rows"`
	SkippedRows int      `json:"skipped_rows"`
	Columns     []string `json:"columns"`
	Warnings    []string `json:"warnings"`
}

func sessionResponse(s *models.Session) sessionInfo {
	columns := s.Store.Columns()
	if columns == nil {
		columns = []string{}
	}
	return sessionInfo{
		SessionID:   s.ID,
		Source:      s.Source,
		Rows:        s.Store.Len(),
		SkippedRows: s.Store.Skipped(),
		Columns:     columns,
		Warnings:    s.Warnings,
	}
}

// readUploadedStore parses the multipart file. ok=false means no file was sent.
func readUploadedStore(c *gin.Context) (store *models.RowStore, source string, ok bool, err error) {
	file, header, err := c.Request.FormFile(uploadFormField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, "", false, nil
	}
	if err != nil {
		return nil, "", true, err
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	source = filepath.Base(header.Filename)
	if !utils.IsSupportedDataset(source) {
		return nil, source, true, utils.ErrorUnsupportedFileType
	}
	store, err = models.ReadRowStore(source, file)
	return store, source, true, err
}

// createSessionHandler opens a session from an uploaded file, or from the
// default dataset when the request carries no file.
func createSessionHandler(registry *models.SessionRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxUploadBytes())

		store, source, uploaded, err := readUploadedStore(c)
		if !uploaded {
			store, source, err = models.LoadDefaultRowStore(c.Request.Context())
		}

		if err != nil && !models.IsSchemaError(err) {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file size exceeds upload limit"})
				return
			}
			config.LogError(logger, "uploads.go", "createSessionHandler", "read dataset", source, err)
			if !uploaded {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "default dataset unavailable"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err != nil {
			// schema errors are reported once; the session continues with no data
			config.LogWarning(logger, "uploads.go", "createSessionHandler", source, err.Error())
		}
		if skipped := store.Skipped(); skipped > 0 {
			logger.WithFields(logrus.Fields{
				"field":   "createSessionHandler",
				"source":  source,
				"skipped": skipped,
			}).Debug("rows dropped for unparseable date or price")
		}

		session := registry.Create(source, store, err)
		c.JSON(http.StatusCreated, sessionResponse(session))
	}
}
