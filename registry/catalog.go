package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultCatalogURL is the public page listing installable models.
const DefaultCatalogURL = "https://ollama.com/library"

// ErrFetch is returned when the catalog page cannot be retrieved.
var ErrFetch = errors.New("fetch model catalog")

// Catalog scrapes the public model library for available model names.
type Catalog struct {
	URL    string
	Client *http.Client
	Log    logrus.FieldLogger
}

// NewCatalog returns a Catalog for url using http.DefaultClient.
func NewCatalog(url string) *Catalog {
	if url == "" {
		url = DefaultCatalogURL
	}
	return &Catalog{URL: url, Client: http.DefaultClient, Log: logrus.StandardLogger()}
}

// Fetch downloads the catalog page and returns the model names on it.
func (c *Catalog) Fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "text/html")

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	log := c.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	log.WithFields(logrus.Fields{
		"url":     c.URL,
		"status":  resp.StatusCode,
		"elapsed": time.Since(start),
	}).Debug("catalog page fetched")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrFetch, c.URL, resp.StatusCode)
	}

	models, err := ParseModels(resp.Body)
	if err != nil {
		return nil, err
	}
	log.WithField("count", len(models)).Debug("catalog parsed")
	return models, nil
}
