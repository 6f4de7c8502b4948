package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nafisfuad/boipress/internal/config"
	"github.com/nafisfuad/boipress/internal/extract"
	"github.com/nafisfuad/boipress/internal/fileutil"
	"github.com/nafisfuad/boipress/internal/translate"
)

// runTranslate orchestrates the translate command: extract a page range
// from a PDF, translate it, and write the result as Markdown.
func runTranslate(ctx context.Context, args []string, deps *Dependencies) error {
	flags, positional, err := parseTranslateFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	if len(positional) == 0 {
		return ErrNoInput
	}
	inputPath := positional[0]

	if !fileutil.FileExists(inputPath) {
		return fmt.Errorf("%w: %s: %v", ErrNoInput, inputPath, os.ErrNotExist)
	}

	start, end := flags.start, flags.end
	if end == 0 {
		end, err = extract.PageCount(inputPath)
		if err != nil {
			return err
		}
	}

	if !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "Extracting pages %d-%d from %s\n", start, end, inputPath)
	}

	text, err := extract.Extract(inputPath, start, end)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: %s", extract.ErrNoText, inputPath)
	}

	var progress io.Writer
	if !flags.common.quiet {
		progress = deps.Stdout
	}

	translator, err := buildTranslator(flags, cfg, deps, progress)
	if err != nil {
		return err
	}

	translated, err := translator.Translate(ctx, text)
	if err != nil {
		return err
	}

	outputPath := resolveTranslateOutput(flags.output, inputPath, start, end)
	if err := os.WriteFile(outputPath, []byte(translated), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "Saved translation to %s\n", outputPath)
	}
	return nil
}

// buildTranslator constructs the translation backend from flags and config.
// CLI flags win over config values.
func buildTranslator(flags *translateFlags, cfg *config.Config, deps *Dependencies, progress io.Writer) (translate.Translator, error) {
	backend := cfg.Translate.Backend
	if flags.backend != "" {
		backend = flags.backend
	}

	prompt := cfg.Translate.Prompt

	switch backend {
	case "", "api":
		apiKey := deps.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, ErrMissingAPIKey
		}

		var opts []translate.GeminiOption
		if model := pick(flags.model, cfg.Translate.Model); model != "" {
			opts = append(opts, translate.WithModel(model))
		}
		if prompt != "" {
			opts = append(opts, translate.WithPrompt(prompt))
		}
		if chunkSize := pickInt(flags.chunkSize, cfg.Translate.ChunkSize); chunkSize > 0 {
			opts = append(opts, translate.WithChunkSize(chunkSize))
		}
		if cfg.Translate.Retries > 0 {
			opts = append(opts, translate.WithRetries(cfg.Translate.Retries))
		}
		if progress != nil {
			opts = append(opts, translate.WithProgress(progress))
		}
		return translate.NewGemini(apiKey, opts...), nil

	case "cli":
		var opts []translate.CLIOption
		if prompt != "" {
			opts = append(opts, translate.WithCLIPrompt(prompt))
		}
		if progress != nil {
			opts = append(opts, translate.WithCLIProgress(progress))
		}
		return translate.NewCLI(opts...), nil

	default:
		return nil, fmt.Errorf("%w: %q (want api or cli)", ErrUnknownBackend, backend)
	}
}

// pick returns the flag value when set, falling back to the config value.
func pick(flagVal, cfgVal string) string {
	if flagVal != "" {
		return flagVal
	}
	return cfgVal
}

// pickInt returns the flag value when positive, falling back to the config value.
func pickInt(flagVal, cfgVal int) int {
	if flagVal > 0 {
		return flagVal
	}
	return cfgVal
}

// resolveTranslateOutput picks the Markdown output path. The default
// encodes the page range so repeated runs on different ranges don't
// clobber each other.
func resolveTranslateOutput(output, inputPath string, start, end int) string {
	if output != "" {
		return output
	}
	base := strings.TrimSuffix(inputPath, ".pdf")
	return fmt.Sprintf("%s_translated_%d_%d.md", base, start, end)
}
