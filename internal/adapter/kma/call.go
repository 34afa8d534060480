package kma

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/couchcryptid/kma-mcp/internal/domain"
)

// Call resolves name in the catalog and executes it, returning the envelope items.
// Requests are labeled with name in metrics and logs.
func (c *Client) Call(ctx context.Context, name string, params Params) ([]json.RawMessage, error) {
	ep, query, hc, err := c.resolve(name, params)
	if err != nil {
		return nil, err
	}
	if ep.Raw {
		return nil, fmt.Errorf("%s returns raw data: use CallRaw", name)
	}
	page, err := hc.executePage(ctx, name, ep.Path, query, ep.Base)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// CallRaw resolves name in the catalog and returns the response body unchanged.
func (c *Client) CallRaw(ctx context.Context, name string, params Params) ([]byte, error) {
	ep, query, hc, err := c.resolve(name, params)
	if err != nil {
		return nil, err
	}
	return hc.executeRaw(ctx, name, ep.Path, query, ep.Base)
}

// resolve looks up name and builds its query. The returned client carries the
// timeout the entry asks for.
func (c *Client) resolve(name string, params Params) (Endpoint, Params, *Client, error) {
	ep, ok := c.catalog.Lookup(name)
	if !ok {
		return Endpoint{}, nil, nil, fmt.Errorf("unknown endpoint %q", name)
	}
	query, err := ep.Resolve(params)
	if err != nil {
		c.observe(name, "", time.Now(), 0, err)
		return Endpoint{}, nil, nil, err
	}
	if ep.LongTimeout {
		return ep, query, c.withTimeout(c.satelliteTimeout), nil
	}
	return ep, query, c, nil
}

// fetch calls a catalog entry and decodes each item into T.
func fetch[T any](ctx context.Context, c *Client, name string, params Params) ([]T, error) {
	items, err := c.Call(ctx, name, params)
	if err != nil {
		return nil, err
	}
	return decodeRecords[T](items)
}

func decodeRecords[T any](items []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(items))
	for i, raw := range items {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, &UnexpectedError{Err: fmt.Errorf("decode item %d: %w", i, err)}
		}
		out = append(out, rec)
	}
	return out, nil
}

// setTime adds key formatted as YYYYMMDDHHmm unless t is zero.
func (p Params) setTime(key string, t time.Time) Params {
	if !t.IsZero() {
		p[key] = domain.FormatMinute(t)
	}
	return p
}

// setDate adds key formatted as YYYYMMDD unless t is zero.
func (p Params) setDate(key string, t time.Time) Params {
	if !t.IsZero() {
		p[key] = domain.FormatDate(t)
	}
	return p
}

// setString adds key unless v is empty.
func (p Params) setString(key, v string) Params {
	if v != "" {
		p[key] = v
	}
	return p
}

// setInt adds key unless v is nil.
func (p Params) setInt(key string, v *int) Params {
	if v != nil {
		p[key] = *v
	}
	return p
}
