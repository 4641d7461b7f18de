package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"protscan/internal/core/motif"
)

func init() {
	cmd := &cobra.Command{
		Use:   "motifs",
		Short: "List the built-in motif catalog",
		Args:  cobra.NoArgs,
		Run:   runMotifs,
	}

	RootCmd.AddCommand(cmd)
}

func runMotifs(cmd *cobra.Command, args []string) {
	cat, err := motif.Load()
	if err != nil {
		exitErr("load motif catalog", err)
	}

	if formatFlag == "json" {
		type row struct {
			Key      string `json:"key"`
			Kind     string `json:"kind"`
			Pattern  string `json:"pattern"`
			Name     string `json:"name"`
			Function string `json:"function"`
			Desc     string `json:"desc,omitempty"`
		}
		rows := make([]row, 0, len(cat.Entries))
		for _, e := range cat.Entries {
			rows = append(rows, row{
				Key: e.Key, Kind: string(e.Kind), Pattern: e.Pattern,
				Name: e.Name, Function: e.Function, Desc: e.Desc,
			})
		}
		out, _ := json.MarshalIndent(rows, "", "  ")
		fmt.Println(string(out))
		return
	}

	for _, e := range cat.Entries {
		fmt.Printf("%-8s %-7s %-24s %-26s %s\n", e.Key, e.Kind, e.Pattern, e.Name, e.Function)
	}
}
