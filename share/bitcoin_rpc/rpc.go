package bitcoin_rpc

import (
	"time"

	"github.com/avast/retry-go"
	"github.com/pkg/errors"
	"github.com/sat20-labs/txstage/common"
)

const (
	PoolStandard  = "standard"
	PoolCommitted = "committed"
)

type NodeConf struct {
	Host     string
	Port     int
	User     string
	Password string
	UseSSL   bool
}

// Pools holds the two pool backends the tracker reconciles.
type Pools struct {
	Standard  PoolQuery
	Committed PoolQuery
}

func InitPools(standard, committed NodeConf) (*Pools, error) {
	std, err := NewBitcoindRPC(PoolStandard, standard.Host, standard.Port,
		standard.User, standard.Password, standard.UseSSL)
	if err != nil {
		return nil, err
	}
	cm, err := NewBitcoindRPC(PoolCommitted, committed.Host, committed.Port,
		committed.User, committed.Password, committed.UseSSL)
	if err != nil {
		std.Shutdown()
		return nil, err
	}
	return &Pools{Standard: std, Committed: cm}, nil
}

func (p *Pools) Shutdown() {
	for _, pool := range []PoolQuery{p.Standard, p.Committed} {
		if s, ok := pool.(interface{ Shutdown() }); ok {
			s.Shutdown()
		}
	}
}

// WaitForNode polls the node's block count until it answers or attempts are
// exhausted, and returns the height it reported.
func WaitForNode(pool PoolQuery, attempts uint, delay time.Duration) (int64, error) {
	log := common.GetLoggerEntry("bitcoin_rpc")
	var height int64
	err := retry.Do(
		func() error {
			h, err := pool.GetBlockCount()
			if err != nil {
				return err
			}
			height = h
			return nil
		},
		retry.Attempts(attempts),
		retry.Delay(delay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warnf("%s node not reachable (attempt %d): %v", pool.Name(), n+1, err)
		}),
	)
	if err != nil {
		return 0, errors.Wrapf(err, "%s node unavailable", pool.Name())
	}
	return height, nil
}
