package ipv4

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RangeAll computes the subnet range for every CIDR in cidrs concurrently.
// Results preserve input order. The first failure cancels the remaining work
// and is returned; callers that want to keep going on bad inputs should
// filter beforehand.
func RangeAll(ctx context.Context, cidrs []string) ([]SubnetRange, error) {
	g, ctx := errgroup.WithContext(ctx)
	out := make([]SubnetRange, len(cidrs))
	for i, s := range cidrs {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := ParseCIDR(s)
			if err != nil {
				return err
			}
			out[i] = c.Range()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
