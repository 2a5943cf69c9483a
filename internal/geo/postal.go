package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// BadPostalCodeMarker is returned in-band for malformed postal codes so the
// form can still render a selector with a visible message instead of
// breaking. Deliberate soft-fail.
const BadPostalCodeMarker = "code postal invalide"

// PostalClient looks up commune names by French postal code.
type PostalClient struct {
	BaseURL string
	Client  *http.Client
}

func NewPostalClient(baseURL string) *PostalClient {
	return &PostalClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type commune struct {
	Nom string `json:"nom"`
}

// LookupCityNames returns the commune names for a 5-character postal code,
// in upstream order. Any other code length yields a single-element slice
// holding the error marker. Network and decode failures are hard errors.
func (c *PostalClient) LookupCityNames(ctx context.Context, postalCode string) ([]string, error) {
	if len(postalCode) != 5 {
		return []string{BadPostalCodeMarker}, nil
	}

	q := url.Values{}
	q.Set("codePostal", postalCode)
	q.Set("fields", "nom")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/communes?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("postal lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("postal lookup: unexpected status %d", resp.StatusCode)
	}

	var communes []commune
	if err := json.NewDecoder(resp.Body).Decode(&communes); err != nil {
		return nil, fmt.Errorf("postal lookup: decode response: %w", err)
	}

	names := make([]string, 0, len(communes))
	for _, cm := range communes {
		names = append(names, cm.Nom)
	}
	return names, nil
}
