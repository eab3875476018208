package server

import (
	"net/url"
	"strconv"

	"github.com/tzgrid/tianzige/pkg/errors"
	"github.com/tzgrid/tianzige/pkg/pipeline"
)

// parseOptions builds pipeline options from query parameters.
// Missing parameters keep the CLI defaults.
//
// Supported parameters: page, color, size, min-horizontal,
// min-vertical, margin-top, margin-bottom, margin-left, margin-right,
// inner-grid.
func parseOptions(query url.Values) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()

	if v := query.Get("page"); v != "" {
		opts.PageSize = v
	}
	if v := query.Get("color"); v != "" {
		opts.Color = v
	}

	if err := parseFloat(query, "size", &opts.SquareSizeMM); err != nil {
		return pipeline.Options{}, err
	}
	if err := parseInt(query, "min-horizontal", &opts.MinHorizontal); err != nil {
		return pipeline.Options{}, err
	}
	if err := parseInt(query, "min-vertical", &opts.MinVertical); err != nil {
		return pipeline.Options{}, err
	}
	if err := parseFloat(query, "margin-top", &opts.MarginTopMM); err != nil {
		return pipeline.Options{}, err
	}
	if err := parseFloat(query, "margin-bottom", &opts.MarginBottomMM); err != nil {
		return pipeline.Options{}, err
	}
	if err := parseFloat(query, "margin-left", &opts.MarginLeftMM); err != nil {
		return pipeline.Options{}, err
	}
	if err := parseFloat(query, "margin-right", &opts.MarginRightMM); err != nil {
		return pipeline.Options{}, err
	}

	if v := query.Get("inner-grid"); v != "" {
		inner, err := strconv.ParseBool(v)
		if err != nil {
			return pipeline.Options{}, errors.New(errors.ErrCodeInvalidOption,
				"invalid inner-grid value %q, want true or false", v)
		}
		opts.InnerGrid = inner
	}

	return opts, nil
}

func parseFloat(query url.Values, name string, dst *float64) error {
	v := query.Get(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return errors.New(errors.ErrCodeInvalidOption, "invalid %s value %q, want a number", name, v)
	}
	*dst = f
	return nil
}

func parseInt(query url.Values, name string, dst *int) error {
	v := query.Get(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.New(errors.ErrCodeInvalidOption, "invalid %s value %q, want an integer", name, v)
	}
	*dst = n
	return nil
}
