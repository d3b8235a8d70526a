package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ggonzalez94/synth-cli/internal/cache"
	"github.com/ggonzalez94/synth-cli/internal/deeplink"
	clierr "github.com/ggonzalez94/synth-cli/internal/errors"
	"github.com/ggonzalez94/synth-cli/internal/logging"
	"github.com/ggonzalez94/synth-cli/internal/model"
	"github.com/ggonzalez94/synth-cli/internal/registry"
	"github.com/ggonzalez94/synth-cli/internal/snapshot"
)

const snapshotTTL = 60 * time.Second

// snapshotFlags select the market snapshot a command resolves against.
type snapshotFlags struct {
	chain         string
	file          string
	url           string
	rpcURL        string
	refreshSupply bool
}

func (f *snapshotFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.chain, "chain", "", "Chain id/name/CAIP-2 (defaults to configured chain)")
	cmd.Flags().StringVar(&f.file, "snapshot-file", "", "Market snapshot file (YAML or JSON)")
	cmd.Flags().StringVar(&f.url, "snapshot-url", "", "Market snapshot URL (https)")
	cmd.Flags().StringVar(&f.rpcURL, "rpc-url", "", "RPC URL override for --refresh-supply")
	cmd.Flags().BoolVar(&f.refreshSupply, "refresh-supply", false, "Re-read GLV total supply on-chain before resolving")
}

type snapshotBuildFn func(snap deeplink.Snapshot) (any, error)

// runSnapshotCommand loads the snapshot selected by f, optionally refreshes GLV
// supplies over RPC, and renders build's result. Remote snapshots go through
// the response cache keyed by req; file snapshots are always read fresh.
func (s *runtimeState) runSnapshotCommand(cmd *cobra.Command, f snapshotFlags, req map[string]any, build snapshotBuildFn) error {
	commandPath := trimRootPath(cmd.CommandPath())
	chain, err := s.resolveChain(f.chain)
	if err != nil {
		return err
	}
	if !registry.HasChain(chain.EVMChainID) {
		return clierr.New(clierr.CodeUnsupported, fmt.Sprintf("no deployment on chain %s", chain.Slug))
	}

	path, url := f.file, f.url
	if strings.TrimSpace(path) == "" && strings.TrimSpace(url) == "" {
		path, url = s.settings.SnapshotPath, s.settings.SnapshotURL
	}
	src, err := snapshot.NewSource(path, url, s.httpClient)
	if err != nil {
		return err
	}

	rpcURL := ""
	if f.refreshSupply {
		override := strings.TrimSpace(f.rpcURL)
		if override == "" {
			override = s.settings.RPCURL(chain.EVMChainID)
		}
		rpcURL, err = registry.ResolveRPCURL(override, chain.EVMChainID)
		if err != nil {
			return clierr.Wrap(clierr.CodeUsage, "resolve rpc url", err)
		}
	}

	key := ""
	if src.Remote() {
		if req == nil {
			req = map[string]any{}
		}
		req["chain_id"] = chain.EVMChainID
		req["source"] = src.String()
		req["rpc"] = rpcURL
		key = cache.Key(commandPath, req)
	}

	logger := logging.OrNop(s.logger)
	return s.runCachedCommand(commandPath, key, snapshotTTL, func(ctx context.Context) (any, []model.SourceStatus, []string, bool, error) {
		start := time.Now()
		snap, err := snapshot.Load(ctx, src, chain.EVMChainID)
		sources := []model.SourceStatus{{Name: src.String(), Status: statusFromErr(err), LatencyMS: time.Since(start).Milliseconds()}}
		if err != nil {
			return nil, sources, nil, false, err
		}
		logger.Debug("snapshot loaded", zap.String("source", src.String()), zap.Int("markets", len(snap.Markets)))

		var warnings []string
		partial := false
		if rpcURL != "" {
			start = time.Now()
			err := s.refreshSupply(ctx, rpcURL, &snap)
			sources = append(sources, model.SourceStatus{Name: "rpc", Status: statusFromErr(err), LatencyMS: time.Since(start).Milliseconds()})
			if err != nil {
				logger.Warn("glv supply refresh failed", zap.Error(err))
				warnings = append(warnings, "glv supply refresh failed; using snapshot values")
				partial = true
			}
		}

		data, err := build(snap)
		return data, sources, warnings, partial, err
	})
}

func (s *runtimeState) refreshSupply(ctx context.Context, rpcURL string, snap *deeplink.Snapshot) error {
	reader, closeFn, err := snapshot.DialSupply(ctx, rpcURL)
	if err != nil {
		return err
	}
	defer closeFn()
	return snapshot.RefreshGlvSupply(ctx, snap, reader)
}
