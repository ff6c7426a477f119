package cmd

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/petrosquatr/vlan-replacer/internal/config"
	"github.com/petrosquatr/vlan-replacer/internal/replacement"
	"github.com/petrosquatr/vlan-replacer/internal/report"
	"github.com/petrosquatr/vlan-replacer/internal/vlan"
)

func setupStyling(cfg *config.Config) {
	if cfg.NoColor {
		pterm.DisableStyling()
	}
}

// printBanner shows the tool header and the active replacement sources
// before the pass runs. Suppressed in quiet mode.
func printBanner(cfg *config.Config, rules *vlan.RuleSet) {
	if !cfg.ShouldReport() {
		return
	}

	pterm.DefaultHeader.WithFullWidth().Println("Fortigate Configuration VLAN ID Replacement Tool")

	if rules.HasExplicit() {
		pterm.Printf("Individual mappings: %d VLANs\n", rules.Explicit().Size())
	}
	if rules.HasRange() {
		r := rules.Range()
		pterm.Printf("Old range: %d-%d (%d VLANs)\n", r.OldStart(), r.OldEnd(), r.Size())
		pterm.Printf("New range: %d-%d (%d VLANs)\n", r.NewStart(), r.NewEnd(), r.Size())
		pterm.Printf("Offset: %+d\n", r.Offset())
	}
	if rules.HasExplicit() && rules.HasRange() {
		pterm.Println("\nMode: Combined (individual mappings take precedence)")
	}
}

// renderReport prints the output location, the change summary and the
// closing status line. Suppressed in quiet mode.
func renderReport(cfg *config.Config, result *replacement.Result, outPath string) error {
	if !cfg.ShouldReport() {
		return nil
	}

	pterm.Printf("\nConfiguration written to: %s\n", outPath)

	printer := report.NewPrinter(os.Stdout)
	if err := printer.Print(result.Report); err != nil {
		return err
	}

	pterm.Success.Println("Replacement completed successfully")
	return nil
}
