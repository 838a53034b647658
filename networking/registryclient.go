package networking

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/zkAsterDex/zkaster-stealth-sdk/api"
	"github.com/zkAsterDex/zkaster-stealth-sdk/logging"
	"github.com/zkAsterDex/zkaster-stealth-sdk/types"
	"github.com/zkAsterDex/zkaster-stealth-sdk/utils"
)

// RegistryConnector is the publication layer a scanner pulls announcement
// metadata from. The SDK owns no storage; a registry is simply whatever
// endpoint the caller points it at.
type RegistryConnector interface {
	GetInfo() (*api.InfoResponseRegistry, error)
	GetLatestID() (uint64, error)
	// GetAnnouncements returns the records with startID <= id <= endID for
	// the given network, in ascending ID order.
	GetAnnouncements(network types.Network, startID, endID uint64) ([]types.StealthMetadata, error)
}

// ClientRegistry talks JSON-over-HTTP to an announcement registry.
type ClientRegistry struct {
	BaseURL string
	Auth    *types.BasicAuthCredentials
}

func (c *ClientRegistry) get(url string, out any) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		logging.L.Err(err).Msg("")
		return err
	}
	if c.Auth != nil {
		req.SetBasicAuth(c.Auth.Username, c.Auth.Password)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		logging.L.Err(err).Msg("")
		return err
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.L.Err(err).Msg("")
		return err
	}

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("registry returned %d: %s", resp.StatusCode, string(body))
		logging.L.Err(err).Msg("")
		return err
	}

	if err = json.Unmarshal(body, out); err != nil {
		logging.L.Err(err).Msg("")
		return err
	}
	return nil
}

func (c *ClientRegistry) GetInfo() (*api.InfoResponseRegistry, error) {
	var data api.InfoResponseRegistry
	if err := c.get(fmt.Sprintf("%s/info", c.BaseURL), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *ClientRegistry) GetLatestID() (uint64, error) {
	var data api.LatestIDResponseRegistry
	if err := c.get(fmt.Sprintf("%s/latest-id", c.BaseURL), &data); err != nil {
		return 0, err
	}
	return data.LatestID, nil
}

func (c *ClientRegistry) GetAnnouncements(network types.Network, startID, endID uint64) ([]types.StealthMetadata, error) {
	url := fmt.Sprintf("%s/announcements?network=%s&start=%d&end=%d",
		c.BaseURL, network, startID, endID)

	var raw []api.AnnouncementRaw
	if err := c.get(url, &raw); err != nil {
		return nil, err
	}

	records := make([]types.StealthMetadata, 0, len(raw))
	for i := range raw {
		records = append(records, announcementToMetadata(&raw[i]))
	}
	return records, nil
}

func announcementToMetadata(raw *api.AnnouncementRaw) types.StealthMetadata {
	createdAt, err := time.Parse(time.RFC3339, raw.CreatedAt)
	if err != nil {
		// scanning only needs the cryptographic fields, a bad timestamp is
		// not worth dropping the record for
		logging.L.Debug().Err(err).
			Uint64("id", raw.ID).
			Msg("announcement has unparsable createdAt")
	}
	return types.StealthMetadata{
		StealthAddress:     utils.NormalizeHex(raw.StealthAddress),
		EphemeralPublicKey: utils.NormalizeHex(raw.EphemeralPublicKey),
		ViewTag:            utils.NormalizeHex(raw.ViewTag),
		Network:            types.Network(raw.Network),
		CreatedAt:          createdAt,
	}
}
