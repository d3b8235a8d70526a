package schema

import (
	"testing"

	"github.com/spf13/cobra"
)

func newTree() *cobra.Command {
	root := &cobra.Command{Use: "synth"}
	contracts := &cobra.Command{Use: "contracts", Short: "contract registry", Aliases: []string{"c"}}
	get := &cobra.Command{Use: "get", Short: "look up one contract", RunE: func(*cobra.Command, []string) error { return nil }}
	get.Flags().String("chain", "", "chain id or name")
	get.Flags().String("name", "", "contract name")
	_ = get.MarkFlagRequired("name")
	contracts.AddCommand(get)
	root.AddCommand(contracts)
	return root
}

func TestBuildSchema(t *testing.T) {
	s, err := Build(newTree(), "contracts get")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if s.Path != "synth contracts get" || !s.Runnable {
		t.Fatalf("unexpected schema: %+v", s)
	}
	if len(s.Flags) != 2 {
		t.Fatalf("unexpected flags: %+v", s.Flags)
	}
	for _, f := range s.Flags {
		if f.Name == "name" && !f.Required {
			t.Fatal("expected --name to be marked required")
		}
		if f.Name == "chain" && f.Required {
			t.Fatal("did not expect --chain to be required")
		}
	}
}

func TestBuildSchemaAliasAndMissing(t *testing.T) {
	s, err := Build(newTree(), "c")
	if err != nil {
		t.Fatalf("Build via alias failed: %v", err)
	}
	if s.Runnable || len(s.Subcommands) != 1 {
		t.Fatalf("unexpected group schema: %+v", s)
	}
	if _, err := Build(newTree(), "contracts nope"); err == nil {
		t.Fatal("expected missing command error")
	}
}
