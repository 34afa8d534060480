package kma

import (
	"context"
	"time"

	"github.com/couchcryptid/kma-mcp/internal/domain"
)

// readinessStation is an AWS station with continuous minute reports.
const readinessStation = 104

// CheckReadiness verifies the auth key and upstream reachability with a
// small AWS minute query ten minutes in the past.
func (c *Client) CheckReadiness(ctx context.Context) error {
	tm := domain.Now().Add(-10 * time.Minute)
	_, err := c.AWS().MinutelyData(ctx, AWSQuery{Tm1: tm, Tm2: tm, Stn: readinessStation})
	return err
}
