package app

import (
	"strings"

	"github.com/spf13/cobra"

	clierr "github.com/ggonzalez94/synth-cli/internal/errors"
	"github.com/ggonzalez94/synth-cli/internal/id"
	"github.com/ggonzalez94/synth-cli/internal/model"
	"github.com/ggonzalez94/synth-cli/internal/registry"
)

func (s *runtimeState) newChainsCommand() *cobra.Command {
	root := &cobra.Command{Use: "chains", Short: "Supported chains"}
	list := &cobra.Command{
		Use:   "list",
		Short: "List chains with a contract table",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]model.ChainInfo, 0)
			for _, chainID := range registry.Chains() {
				chain, ok := id.ChainByID(chainID)
				if !ok {
					continue
				}
				info := model.ChainInfo{
					ChainID: chain.EVMChainID,
					Name:    chain.Name,
					Slug:    chain.Slug,
					CAIP2:   chain.CAIP2,
				}
				if wrapped, ok := id.WrappedToken(chainID); ok {
					info.NativeToken = wrapped.Symbol
				}
				if rpc, ok := registry.DefaultRPCURL(chainID); ok {
					info.DefaultRPCURL = rpc
				}
				if names, err := registry.Names(chainID); err == nil {
					info.Contracts = len(names)
				}
				items = append(items, info)
			}
			return s.emitSuccess(trimRootPath(cmd.CommandPath()), items, nil, cacheMetaBypass(), nil, false)
		},
	}
	root.AddCommand(list)
	return root
}

func (s *runtimeState) newContractsCommand() *cobra.Command {
	root := &cobra.Command{Use: "contracts", Short: "Deployed contract addresses"}

	var getChainArg string
	var getName string
	getCmd := &cobra.Command{
		Use:     "get",
		Short:   "Look up one contract address",
		Example: "synth contracts get --chain arbitrum --name ExchangeRouter",
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := s.resolveChain(getChainArg)
			if err != nil {
				return err
			}
			name := strings.TrimSpace(getName)
			address, err := registry.Lookup(chain.EVMChainID, name)
			if err != nil {
				return err
			}
			entry := contractEntry(chain, name, address)
			return s.emitSuccess(trimRootPath(cmd.CommandPath()), entry, nil, cacheMetaBypass(), nil, false)
		},
	}
	getCmd.Flags().StringVar(&getChainArg, "chain", "", "Chain id/name/CAIP-2 (defaults to configured chain)")
	getCmd.Flags().StringVar(&getName, "name", "", "Contract name, e.g. DataStore or NATIVE_TOKEN")
	_ = getCmd.MarkFlagRequired("name")
	root.AddCommand(getCmd)

	var listChainArg string
	var deployedOnly bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every contract registered on a chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := s.resolveChain(listChainArg)
			if err != nil {
				return err
			}
			names, err := registry.Names(chain.EVMChainID)
			if err != nil {
				return err
			}
			items := make([]model.ContractEntry, 0, len(names))
			for _, name := range names {
				address, err := registry.Lookup(chain.EVMChainID, name)
				if err != nil {
					return clierr.Wrap(clierr.CodeInternal, "read contract table", err)
				}
				entry := contractEntry(chain, name, address)
				if deployedOnly && !entry.Deployed {
					continue
				}
				items = append(items, entry)
			}
			return s.emitSuccess(trimRootPath(cmd.CommandPath()), items, nil, cacheMetaBypass(), nil, false)
		},
	}
	listCmd.Flags().StringVar(&listChainArg, "chain", "", "Chain id/name/CAIP-2 (defaults to configured chain)")
	listCmd.Flags().BoolVar(&deployedOnly, "deployed-only", false, "Skip zero-address entries")
	root.AddCommand(listCmd)

	return root
}

func contractEntry(chain id.Chain, name, address string) model.ContractEntry {
	return model.ContractEntry{
		ChainID:  chain.EVMChainID,
		Chain:    chain.Slug,
		Name:     name,
		Address:  address,
		Deployed: registry.IsDeployed(address),
	}
}
