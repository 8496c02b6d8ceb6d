package handling

import (
	"lumi_noir_server/services"
	"net/http"
	"strconv"
	"strings"
)

// ParseProductListOptions parses HTTP query parameters into ProductListOptions
func ParseProductListOptions(r *http.Request) (*services.ProductListOptions, error) {
	query := r.URL.Query()

	// Early return if no query params
	if len(query) == 0 {
		return &services.ProductListOptions{}, nil
	}

	opts := &services.ProductListOptions{}
	var err error
	var valInt int
	var valBool bool

	if page := query.Get("page"); page != "" {
		if valInt, err = strconv.Atoi(page); err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		if valInt, err = strconv.Atoi(pageSize); err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	if published := query.Get("published"); published != "" {
		if valBool, err = strconv.ParseBool(published); err != nil {
			return nil, err
		}
		opts.PublishedOnly = valBool
	}

	if sale := query.Get("sale"); sale != "" {
		if valBool, err = strconv.ParseBool(sale); err != nil {
			return nil, err
		}
		opts.OnSaleOnly = valBool
	}

	if sortBy := query.Get("sort_by"); sortBy != "" {
		opts.SortBy = sortBy
	}

	if sortDirection := query.Get("sort_direction"); sortDirection != "" {
		opts.SortDirection = strings.ToUpper(sortDirection)
	}

	if includeImages := query.Get("include_images"); includeImages != "" {
		if valBool, err = strconv.ParseBool(includeImages); err != nil {
			return nil, err
		}
		opts.IncludeImages = valBool
	}

	return opts, nil
}
