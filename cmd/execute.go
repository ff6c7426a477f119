// Package cmd implements the command-line interface and the run
// orchestration: configuration and environment handling, rule construction,
// the replacement pass, atomic output writing and report rendering.
package cmd

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/petrosquatr/vlan-replacer/internal/config"
	"github.com/petrosquatr/vlan-replacer/internal/errors"
	"github.com/petrosquatr/vlan-replacer/internal/parser"
	"github.com/petrosquatr/vlan-replacer/internal/replacement"
	"github.com/petrosquatr/vlan-replacer/internal/vlan"
	"github.com/petrosquatr/vlan-replacer/internal/writer"
)

func executeReplace(cfg *config.Config) error {
	rules, err := buildRules(cfg)
	if err != nil {
		return err
	}

	printBanner(cfg, rules)

	log.Debug().Str("path", cfg.InputFile).Msg("reading configuration")
	content, err := os.ReadFile(cfg.InputFile)
	if err != nil {
		return errors.WrapFileError(cfg.InputFile, err)
	}
	log.Info().Str("path", cfg.InputFile).Int("bytes", len(content)).Msg("configuration read")

	engine := replacement.NewEngine()
	result, err := engine.Process(string(content), rules)
	if err != nil {
		return err
	}
	log.Debug().
		Int("replacements", result.Report.TotalReplacements()).
		Int("explicit", result.Report.CountBySource(vlan.SourceExplicit)).
		Int("range", result.Report.CountBySource(vlan.SourceRange)).
		Bool("modified", result.Modified).
		Msg("replacement pass finished")

	outPath := cfg.ResolveOutputPath()
	if err := writer.WriteFile(outPath, []byte(result.Output), outputMode(cfg.InputFile)); err != nil {
		return err
	}
	log.Info().Str("path", outPath).Msg("configuration written")

	return renderReport(cfg, result, outPath)
}

// buildRules assembles the replacement rule set from the mapping file and
// the range flags. At least one source is guaranteed by config validation.
func buildRules(cfg *config.Config) (*vlan.RuleSet, error) {
	var explicit *vlan.ExplicitMapping
	if cfg.HasMapping() {
		var err error
		explicit, err = parser.LoadMappingFile(cfg.MappingFile, cfg.MappingFormat)
		if err != nil {
			return nil, err
		}
		log.Info().
			Int("mappings", explicit.Size()).
			Str("path", cfg.MappingFile).
			Msg("loaded individual VLAN mappings")
	}

	var ranged *vlan.RangeMapping
	if cfg.HasRange() {
		var err error
		ranged, err = vlan.NewRangeMapping(cfg.OldRange[0], cfg.OldRange[1], cfg.NewRange[0], cfg.NewRange[1])
		if err != nil {
			return nil, err
		}
		log.Debug().Int("offset", ranged.Offset()).Msg("range translation configured")
	}

	return vlan.NewRuleSet(explicit, ranged)
}

// outputMode mirrors the input file's permission bits onto the output so a
// restricted configuration stays restricted after rewriting.
func outputMode(inputPath string) os.FileMode {
	if info, err := os.Stat(inputPath); err == nil {
		return info.Mode().Perm()
	}
	return 0644
}
