package weblate

import (
	"context"
	"fmt"
	"net/http"

	"github.com/agentstation/pushull/internal/transport"
	"github.com/agentstation/pushull/pkg/errors"
)

const resourceUnit = "unit"

// UnitClient looks up and deletes single messages of a translation.
type UnitClient struct {
	s *Session
}

// Get returns the unit of translation whose context is key, or nil when absent.
func (c *UnitClient) Get(ctx context.Context, translation *Translation, key string) (*Unit, error) {
	resp, err := c.s.client.R(ctx).
		SetQueryParam("q", fmt.Sprintf("context:=%q", key)).
		Get(translation.UnitsListURL)
	if err != nil {
		return nil, errors.WrapRemote("get", resourceUnit, key, 0, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, nil
	}

	var p page[Unit]
	if err := transport.DecodeJSON(resp.Body(), &p); err != nil {
		return nil, c.s.decodeError("get", resourceUnit, key, resp, err)
	}
	if p.Results == nil {
		return nil, nil
	}
	for i := range *p.Results {
		if unit := (*p.Results)[i]; unit.Context == key {
			return &unit, nil
		}
	}
	return nil, nil
}

// Delete removes unit from its translation.
func (c *UnitClient) Delete(ctx context.Context, unit *Unit) error {
	resp, err := c.s.client.R(ctx).Delete(unit.URL)
	if err != nil {
		return errors.WrapRemote("delete", resourceUnit, unit.Context, 0, err)
	}
	if resp.StatusCode() != http.StatusNoContent && resp.StatusCode() != http.StatusOK {
		return c.s.remoteError("delete", resourceUnit, unit.Context, resp)
	}
	c.s.logger.Debug().Str("unit", unit.Context).Msg("Deleted unit")
	return nil
}
