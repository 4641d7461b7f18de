package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"protscan/internal/adapters/uniprot"
	"protscan/internal/core/annotate"
	"protscan/internal/core/motif"
)

func init() {
	cmd := &cobra.Command{
		Use:   "annotate [sequence]",
		Short: "Annotate a protein sequence",
		Long: "Run PTM prediction and motif matching over a sequence given as an " +
			"argument, a file, stdin, or a UniProt accession.",
		Args: cobra.MaximumNArgs(1),
		Run:  runAnnotate,
	}

	cmd.Flags().StringP("file", "i", "", "Read the sequence (or FASTA record) from a file, '-' for stdin")
	cmd.Flags().StringP("accession", "a", "", "Fetch the sequence from UniProtKB by accession")
	cmd.Flags().Bool("no-glycosylation", false, "Disable the N-X-S/T sequon rule")
	cmd.Flags().Bool("no-strip-digits", false, "Do not strip whitespace/digits before validation")
	cmd.Flags().Bool("no-mapping", false, "Skip the PTM-to-domain mapping stage")
	cmd.Flags().Bool("no-summary", false, "Skip the functional summary stage")

	RootCmd.AddCommand(cmd)
}

func runAnnotate(cmd *cobra.Command, args []string) {
	file, _ := cmd.Flags().GetString("file")
	accession, _ := cmd.Flags().GetString("accession")
	noGlyco, _ := cmd.Flags().GetBool("no-glycosylation")
	noStrip, _ := cmd.Flags().GetBool("no-strip-digits")
	noMap, _ := cmd.Flags().GetBool("no-mapping")
	noSum, _ := cmd.Flags().GetBool("no-summary")

	raw, err := readSequence(cmd, args, file, accession)
	if err != nil {
		exitErr("read sequence", err)
	}

	cat, err := motif.Load()
	if err != nil {
		exitErr("load motif catalog", err)
	}

	eng := annotate.NewEngine(cat, annotate.Options{
		StripDigits:    !noStrip,
		Glycosylation:  !noGlyco,
		CrossReference: !noMap,
		Summary:        !noSum,
	})

	res, err := eng.Annotate(raw)
	if err != nil {
		if formatFlag == "json" {
			out, _ := json.MarshalIndent(annotate.Failure(err), "", "  ")
			fmt.Println(string(out))
			os.Exit(1)
		}
		exitErr("annotate", err)
	}

	if formatFlag == "json" {
		out, _ := json.MarshalIndent(res, "", "  ")
		fmt.Println(string(out))
		return
	}
	printReport(res)
}

// readSequence resolves the input: positional arg, file, stdin, or accession
func readSequence(cmd *cobra.Command, args []string, file, accession string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	if file != "" {
		if file == "-" {
			b, err := io.ReadAll(os.Stdin)
			return string(b), err
		}
		b, err := os.ReadFile(file)
		return string(b), err
	}
	if accession != "" {
		c := uniprot.NewClient(uniprot.Options{})
		return c.FetchFASTA(cmd.Context(), accession)
	}
	return "", fmt.Errorf("provide a sequence argument, --file, or --accession")
}

func printReport(res *annotate.Result) {
	fmt.Printf("Sequence (%d aa): %s\n", len(res.Sequence), res.Sequence)

	fmt.Printf("\nPredicted PTM sites (%d):\n", len(res.PTMs))
	for _, p := range res.PTMs {
		fmt.Printf("  %-28s %s%d\n", p.Type, p.Residue, p.Pos)
	}

	fmt.Printf("\nIdentified domains (%d):\n", len(res.Domains))
	for _, d := range res.Domains {
		fmt.Printf("  %-28s %d-%d  %s\n", d.Name, d.Start, d.End, d.Function)
	}

	if len(res.Mapping) > 0 {
		fmt.Printf("\nPTMs inside domains (%d):\n", len(res.Mapping))
		for _, m := range res.Mapping {
			fmt.Printf("  %s -> %s\n", m.PTM, m.Domain)
		}
	}

	if res.Summary != "" {
		fmt.Printf("\n%s\n", res.Summary)
	}
}
