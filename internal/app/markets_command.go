package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ggonzalez94/synth-cli/internal/deeplink"
	clierr "github.com/ggonzalez94/synth-cli/internal/errors"
	"github.com/ggonzalez94/synth-cli/internal/id"
	"github.com/ggonzalez94/synth-cli/internal/market"
	"github.com/ggonzalez94/synth-cli/internal/model"
)

func (s *runtimeState) newMarketsCommand() *cobra.Command {
	root := &cobra.Command{Use: "markets", Short: "GM and GLV markets from a snapshot"}

	var listFlags snapshotFlags
	var search string
	var selectedArg string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List markets grouped into GM and GLV",
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := map[string]bool{}
			for _, addr := range splitCSV(selectedArg) {
				selected[id.NormalizeAddress(addr)] = true
			}
			req := map[string]any{"search": strings.TrimSpace(search), "selected": splitCSV(selectedArg)}
			return s.runSnapshotCommand(cmd, listFlags, req, func(snap deeplink.Snapshot) (any, error) {
				isSelected := func(addr string) bool { return selected[id.NormalizeAddress(addr)] }
				filtered := market.FilterGroups(market.Groups(snap.Markets), search, isSelected)
				groups := make([]model.MarketGroup, 0, len(filtered))
				for _, fg := range filtered {
					group := model.MarketGroup{
						GroupName:                    fg.GroupName,
						IsEverythingSelected:         fg.IsEverythingSelected,
						IsEverythingFilteredSelected: fg.IsEverythingFilteredSelected,
						IsSomethingSelected:          fg.IsSomethingSelected,
						Markets:                      make([]model.MarketSummary, 0, len(fg.Items)),
					}
					for _, item := range fg.Items {
						m, ok := market.Find(snap.Markets, item.Data)
						if !ok {
							continue
						}
						group.Markets = append(group.Markets, marketSummary(m, snap, isSelected(m.Address)))
					}
					groups = append(groups, group)
				}
				return groups, nil
			})
		},
	}
	listFlags.bind(listCmd)
	listCmd.Flags().StringVar(&search, "search", "", "Case-insensitive filter on display names")
	listCmd.Flags().StringVar(&selectedArg, "selected", "", "Selected market addresses (comma-separated)")
	root.AddCommand(listCmd)

	var compFlags snapshotFlags
	var marketArg string
	compCmd := &cobra.Command{
		Use:   "composition",
		Short: "Pool composition of a GM market or GLV vault",
		RunE: func(cmd *cobra.Command, args []string) error {
			address := strings.TrimSpace(marketArg)
			if !id.IsAddress(address) {
				return clierr.New(clierr.CodeUsage, fmt.Sprintf("invalid market address: %s", address))
			}
			req := map[string]any{"market": id.NormalizeAddress(address)}
			return s.runSnapshotCommand(cmd, compFlags, req, func(snap deeplink.Snapshot) (any, error) {
				m, ok := market.Find(snap.Markets, address)
				if !ok {
					return nil, clierr.New(clierr.CodeUsage, fmt.Sprintf("market %s not in snapshot", address))
				}
				return market.CompositionOf(m, snap.Markets), nil
			})
		},
	}
	compFlags.bind(compCmd)
	compCmd.Flags().StringVar(&marketArg, "market", "", "GM market or GLV address")
	_ = compCmd.MarkFlagRequired("market")
	root.AddCommand(compCmd)

	return root
}

func marketSummary(m market.Market, snap deeplink.Snapshot, selected bool) model.MarketSummary {
	summary := model.MarketSummary{
		Address:     m.Address,
		Kind:        market.CompositionGM,
		DisplayName: m.DisplayName(),
		IndexName:   m.IndexName(),
		PoolName:    m.PoolName(),
		ShiftAvail:  snap.IsShiftAvailable(m.Address),
		Selected:    selected,
	}
	if m.IsGlv() {
		summary.Kind = market.CompositionGLV
	}
	if m.TotalSupply != nil {
		summary.TotalSupply = m.TotalSupply.String()
	}
	return summary
}
