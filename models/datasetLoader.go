package models

import (
	"context"
	"errors"
	"io"

	"github.com/mmdatafocus/pizza_sales/config"
	"github.com/mmdatafocus/pizza_sales/utils"
)

// IsSchemaError reports whether err is a dataset schema problem. Schema
// errors come with a usable empty store; anything else means nothing was read.
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrMissingDateColumn) || errors.Is(err, ErrMissingColumn)
}

// ReadRowStore parses a dataset file and builds its Row Store. On a schema
// error the returned store is empty but non-nil.
func ReadRowStore(fileName string, r io.Reader) (*RowStore, error) {
	table, err := utils.ReadTable(fileName, r)
	if err != nil {
		return nil, err
	}
	return NewRowStore(table)
}

// LoadDefaultRowStore reads the bundled (or configured) default dataset.
func LoadDefaultRowStore(ctx context.Context) (*RowStore, string, error) {
	return LoadRowStore(ctx, config.DefaultDataset())
}

// LoadRowStore reads a dataset from a local path or gs:// location.
func LoadRowStore(ctx context.Context, location string) (*RowStore, string, error) {
	rc, name, err := utils.OpenDataset(ctx, location)
	if err != nil {
		return nil, "", err
	}
	defer rc.Close()

	store, err := ReadRowStore(name, rc)
	return store, name, err
}
