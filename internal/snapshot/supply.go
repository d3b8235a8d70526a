package snapshot

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sourcegraph/conc/pool"

	"github.com/ggonzalez94/synth-cli/internal/deeplink"
	clierr "github.com/ggonzalez94/synth-cli/internal/errors"
	"github.com/ggonzalez94/synth-cli/internal/registry"
)

// SupplyReader reads the total supply of a GLV token.
type SupplyReader interface {
	TotalSupply(ctx context.Context, token common.Address) (*big.Int, error)
}

// ChainSupply reads supplies with eth_call through any contract caller.
type ChainSupply struct {
	caller ethereum.ContractCaller
}

func NewChainSupply(caller ethereum.ContractCaller) *ChainSupply {
	return &ChainSupply{caller: caller}
}

func (c *ChainSupply) TotalSupply(ctx context.Context, token common.Address) (*big.Int, error) {
	values, err := registry.ERC20At(token, c.caller).Call(ctx, "totalSupply")
	if err != nil {
		return nil, err
	}
	if len(values) != 1 {
		return nil, clierr.New(clierr.CodeUnavailable, "unexpected totalSupply result")
	}
	supply, ok := values[0].(*big.Int)
	if !ok {
		return nil, clierr.New(clierr.CodeUnavailable, "unexpected totalSupply result type")
	}
	return supply, nil
}

// DialSupply connects to rpcURL. The returned close func releases the client.
func DialSupply(ctx context.Context, rpcURL string) (*ChainSupply, func(), error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, nil, clierr.Wrap(clierr.CodeUnavailable, "connect rpc", err)
	}
	return NewChainSupply(client), client.Close, nil
}

// maxSupplyReads bounds concurrent eth_calls during a refresh.
const maxSupplyReads = 8

// RefreshGlvSupply replaces the total supply of every GLV in snap with the
// on-chain value. The snapshot is left untouched on error.
func RefreshGlvSupply(ctx context.Context, snap *deeplink.Snapshot, reader SupplyReader) error {
	supplies := make([]*big.Int, len(snap.Markets))
	p := pool.New().WithMaxGoroutines(maxSupplyReads).WithContext(ctx).WithCancelOnError().WithFirstError()
	for i, m := range snap.Markets {
		if !m.IsGlv() {
			continue
		}
		i, m := i, m
		p.Go(func(ctx context.Context) error {
			supply, err := reader.TotalSupply(ctx, common.HexToAddress(m.Address))
			if err != nil {
				return clierr.Wrap(clierr.CodeUnavailable, fmt.Sprintf("read glv %s supply", m.Address), err)
			}
			supplies[i] = supply
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return err
	}
	for i, supply := range supplies {
		if supply != nil {
			snap.Markets[i].TotalSupply = supply
		}
	}
	return nil
}
