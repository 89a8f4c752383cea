package utils

import "errors"

var (
	ErrorUnsupportedFileType = errors.New("unsupported file type: only csv, txt, xlsx and xls files are allowed")
	ErrorEmptyFile           = errors.New("file has no header row")
)
