package postcode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64
	Lon float64
}

// Provider is one external geocoding backend. Providers are capability-tagged
// so the resolver can pick the first one able to serve a given lookup shape.
type Provider interface {
	Name() string

	// SupportsPartial reports whether the provider can geocode an outward
	// code to an area centroid.
	SupportsPartial() bool

	// SupportsLocalAuthority reports whether the provider can map a
	// postcode to its administrative district.
	SupportsLocalAuthority() bool

	// Geocode resolves a normalized postcode to coordinates. Returns
	// *InvalidPostcodeError when the provider does not know the postcode
	// and *ProviderError on transport or server failures.
	Geocode(ctx context.Context, pc string, partial bool) (Point, error)

	// LocalAuthority resolves a normalized postcode to its local
	// authority name. Only valid when SupportsLocalAuthority is true.
	LocalAuthority(ctx context.Context, pc string) (string, error)
}

// AddressFinderClient queries the primary geocoding provider. It handles
// full postcodes only and returns a GeoJSON point.
type AddressFinderClient struct {
	baseURL string
	client  *http.Client
}

// NewAddressFinder constructs the primary provider client.
func NewAddressFinder(baseURL string, timeout time.Duration) *AddressFinderClient {
	return &AddressFinderClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *AddressFinderClient) Name() string                 { return "address_finder" }
func (c *AddressFinderClient) SupportsPartial() bool        { return false }
func (c *AddressFinderClient) SupportsLocalAuthority() bool { return false }

func (c *AddressFinderClient) Geocode(ctx context.Context, pc string, partial bool) (Point, error) {
	if partial {
		return Point{}, &ProviderError{Provider: c.Name(), Err: fmt.Errorf("partial postcodes not supported")}
	}

	var body struct {
		Type        string    `json:"type"`
		Coordinates []float64 `json:"coordinates"`
	}
	if err := c.get(ctx, c.baseURL+"/"+url.PathEscape(pc), pc, &body); err != nil {
		return Point{}, err
	}
	if len(body.Coordinates) != 2 {
		return Point{}, &ProviderError{Provider: c.Name(), Err: fmt.Errorf("malformed geometry for %q", pc)}
	}
	// GeoJSON order: [lon, lat].
	return Point{Lat: body.Coordinates[1], Lon: body.Coordinates[0]}, nil
}

func (c *AddressFinderClient) LocalAuthority(ctx context.Context, pc string) (string, error) {
	return "", &ProviderError{Provider: c.Name(), Err: fmt.Errorf("local authority lookup not supported")}
}

func (c *AddressFinderClient) get(ctx context.Context, u, pc string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &ProviderError{Provider: c.Name(), Err: err}
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return &ProviderError{Provider: c.Name(), Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &InvalidPostcodeError{Postcode: pc}
	case resp.StatusCode != http.StatusOK:
		return &ProviderError{Provider: c.Name(), Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ProviderError{Provider: c.Name(), Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// MapitClient queries the secondary provider. It can geocode outward codes
// to area centroids and map postcodes to local authorities.
type MapitClient struct {
	baseURL string
	client  *http.Client
}

// NewMapit constructs the secondary provider client.
func NewMapit(baseURL string, timeout time.Duration) *MapitClient {
	return &MapitClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *MapitClient) Name() string                 { return "mapit" }
func (c *MapitClient) SupportsPartial() bool        { return true }
func (c *MapitClient) SupportsLocalAuthority() bool { return true }

type mapitResponse struct {
	Lat   float64 `json:"wgs84_lat"`
	Lon   float64 `json:"wgs84_lon"`
	Areas map[string]struct {
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"areas"`
}

func (c *MapitClient) Geocode(ctx context.Context, pc string, partial bool) (Point, error) {
	u := c.baseURL + "/" + url.PathEscape(pc)
	if partial {
		u = c.baseURL + "/partial/" + url.PathEscape(pc)
	}
	var body mapitResponse
	if err := c.get(ctx, u, pc, &body); err != nil {
		return Point{}, err
	}
	return Point{Lat: body.Lat, Lon: body.Lon}, nil
}

// Local-authority area types: district, borough, metropolitan district,
// unitary authority, county.
var localAuthorityTypes = map[string]bool{
	"DIS": true, "LBO": true, "MTD": true, "UTA": true, "CTY": true,
}

func (c *MapitClient) LocalAuthority(ctx context.Context, pc string) (string, error) {
	var body mapitResponse
	if err := c.get(ctx, c.baseURL+"/"+url.PathEscape(pc), pc, &body); err != nil {
		return "", err
	}
	for _, area := range body.Areas {
		if localAuthorityTypes[area.Type] {
			return area.Name, nil
		}
	}
	return "", &InvalidPostcodeError{Postcode: pc}
}

func (c *MapitClient) get(ctx context.Context, u, pc string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &ProviderError{Provider: c.Name(), Err: err}
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return &ProviderError{Provider: c.Name(), Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &InvalidPostcodeError{Postcode: pc}
	case resp.StatusCode != http.StatusOK:
		return &ProviderError{Provider: c.Name(), Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ProviderError{Provider: c.Name(), Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
