// Package ddragon provides a minimal client for Riot's Data Dragon static
// data CDN, used to resolve item ids to display names.
package ddragon

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// baseURL is the root endpoint for the Data Dragon CDN.
const baseURL = "https://ddragon.leagueoflegends.com"

// Client fetches the item catalogue lazily and caches it for the process
// lifetime. Resolution never fails: unknown ids and fetch errors degrade to
// the numeric id string.
type Client struct {
	http *http.Client

	version string
	items   map[int]string
	loadErr error
	loaded  bool
}

// NewClient returns a Data Dragon client.
func NewClient() *Client {
	return &Client{
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// get performs a GET request against the CDN and JSON-decodes the response
// body into out.
func (c *Client) get(path string, out interface{}) error {
	resp, err := c.http.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// latestVersion resolves the current game data version.
func (c *Client) latestVersion() (string, error) {
	var versions []string
	if err := c.get("/api/versions.json", &versions); err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("versions.json: empty version list")
	}
	return versions[0], nil
}

// load fetches the item catalogue once. Subsequent calls are no-ops, even
// after a failed fetch; a process that cannot reach the CDN keeps rendering
// numeric ids instead of retrying on every item.
func (c *Client) load() {
	if c.loaded {
		return
	}
	c.loaded = true

	version, err := c.latestVersion()
	if err != nil {
		c.loadErr = err
		return
	}
	c.version = version

	var catalogue struct {
		Data map[string]struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := c.get("/cdn/"+version+"/data/en_US/item.json", &catalogue); err != nil {
		c.loadErr = err
		return
	}

	c.items = make(map[int]string, len(catalogue.Data))
	for idStr, item := range catalogue.Data {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			continue
		}
		c.items[id] = item.Name
	}
}

// ItemName resolves an item id to its display name, falling back to the
// numeric id when the catalogue is unavailable or the id is unknown.
func (c *Client) ItemName(id int) string {
	c.load()
	if name, ok := c.items[id]; ok && name != "" {
		return name
	}
	return strconv.Itoa(id)
}

// Err reports the catalogue load failure, if any. Callers may use it to
// warn once that names are degraded.
func (c *Client) Err() error {
	c.load()
	return c.loadErr
}

// Version reports the resolved game data version, empty until loaded.
func (c *Client) Version() string {
	return c.version
}
