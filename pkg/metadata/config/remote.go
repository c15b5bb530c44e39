package config

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gookit/slog"

	"github.com/p0lemic/SIFO/pkg/metadata"
)

// DefaultRemoteTimeout bounds a single table fetch from the remote
// configuration service.
const DefaultRemoteTimeout = 5 * time.Second

// RemoteSource fetches metadata tables from an HTTP configuration service.
// It implements metadata.TableSource. The service is expected to serve the
// table document as JSON under GET <base>/lang/metadata_<language>.
//
// Like the file loader, the remote source is uncached; wrap it in a Cache so
// each language is fetched once per process (or until an explicit reset).
type RemoteSource struct {
	client *resty.Client
}

// NewRemoteSource creates a remote source for the given base URL.
func NewRemoteSource(baseURL string) *RemoteSource {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(DefaultRemoteTimeout)
	return &RemoteSource{client: client}
}

// Table fetches and validates the metadata table for the given language.
// Transport failures and non-2xx responses are reported as provider failures;
// an invalid table document is a configuration failure, same as on disk.
func (s *RemoteSource) Table(language string) (metadata.Table, error) {
	resource := ResourcePrefix + language

	raw := make(map[string]any)
	resp, err := s.client.R().
		SetResult(&raw).
		Get(resource)
	if err != nil {
		return nil, metadata.NewProviderFailureError(
			fmt.Sprintf("Metadata table resource %q fetch failed: %v.", resource, err),
			"Unable to resolve page metadata. Please try again later or contact the support team.",
		)
	}
	if !resp.IsSuccess() {
		return nil, metadata.NewProviderFailureError(
			fmt.Sprintf("Metadata table resource %q fetch ended with status: %s.", resource, resp.Status()),
			"Unable to resolve page metadata. Please try again later or contact the support team.",
		)
	}

	table, err := decodeTable(resource, raw)
	if err != nil {
		return nil, err
	}

	slog.Infof("Fetched metadata table %q (%d entries) from: %s", resource, len(table), s.client.BaseURL)
	return table, nil
}
