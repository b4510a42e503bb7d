// Command zhconv is a demo CLI over package conversion: it loads a
// tab-separated dictionary file, converts a syllable sequence to its
// best phrase segmentation, and can cycle through alternatives. Its
// cobra+viper+logrus shape follows open-policy-agent/opa's cmd/ tree.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-chewing/chewconv/conversion"
	"github.com/go-chewing/chewconv/internal/chewlog"
	"github.com/go-chewing/chewconv/internal/config"
	"github.com/go-chewing/chewconv/internal/memdict"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dictPath  string
		cfgPath   string
		logLevel  string
		cacheSize int
	)

	root := &cobra.Command{
		Use:   "zhconv",
		Short: "Zhuyin phrase-segmentation conversion engine",
	}
	root.PersistentFlags().StringVar(&dictPath, "dict", "", "path to a tab-separated dictionary file (required)")
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "optional YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().IntVar(&cacheSize, "cache-size", 0, "dictionary LRU cache size override")

	loadEngine := func(cmd *cobra.Command) (*loadedEngine, error) {
		if err := config.BindEnvironmentVariables(cmd); err != nil {
			chewlog.Global().WithError(err).Warn("zhconv: failed to bind environment variables")
		}

		cfg, err := config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
		if dictPath != "" {
			cfg.DictionaryPath = dictPath
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if cacheSize > 0 {
			cfg.CacheSize = cacheSize
		}
		if cfg.DictionaryPath == "" {
			return nil, fmt.Errorf("zhconv: --dict (or config dictionary_path) is required")
		}
		if err := chewlog.SetLevel(cfg.LogLevel); err != nil {
			return nil, fmt.Errorf("zhconv: invalid log level %q: %w", cfg.LogLevel, err)
		}

		dict, err := memdict.Load(cfg.DictionaryPath, cfg.CacheSize)
		if err != nil {
			return nil, err
		}
		engine := conversion.NewConversionEngine(dict, conversion.WithWeights(cfg.Weights))
		return &loadedEngine{engine: engine, weights: cfg.Weights}, nil
	}

	root.AddCommand(newConvertCmd(loadEngine))
	root.AddCommand(newNextCmd(loadEngine))
	return root
}

// loadedEngine pairs a built ConversionEngine with the effective weights
// it was constructed from, so commands can report what they're using
// per SPEC_FULL.md's Configuration note.
type loadedEngine struct {
	engine  *conversion.ConversionEngine
	weights conversion.Weights
}

type engineLoader func(cmd *cobra.Command) (*loadedEngine, error)

func newConvertCmd(loadEngine engineLoader) *cobra.Command {
	var breaks []string
	var selections []string

	cmd := &cobra.Command{
		Use:   "convert <syllable...>",
		Short: "print the best phrase segmentation for a syllable sequence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			seq, err := buildSequence(args, breaks, selections)
			if err != nil {
				return err
			}
			intervals, err := loaded.engine.Convert(seq)
			if err != nil {
				return err
			}
			printWeights(cmd, loaded.weights)
			printIntervals(cmd, intervals)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&breaks, "break", nil, "position forbidding a phrase from crossing it, repeatable")
	cmd.Flags().StringSliceVar(&selections, "select", nil, "committed selection as start:end:phrase, repeatable")
	return cmd
}

func newNextCmd(loadEngine engineLoader) *cobra.Command {
	var breaks []string
	var selections []string
	var index int

	cmd := &cobra.Command{
		Use:   "next <syllable...>",
		Short: "print the k-th alternative phrase segmentation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			seq, err := buildSequence(args, breaks, selections)
			if err != nil {
				return err
			}
			intervals, err := loaded.engine.ConvertNext(seq, index)
			if err != nil {
				return err
			}
			printWeights(cmd, loaded.weights)
			printIntervals(cmd, intervals)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&breaks, "break", nil, "position forbidding a phrase from crossing it, repeatable")
	cmd.Flags().StringSliceVar(&selections, "select", nil, "committed selection as start:end:phrase, repeatable")
	cmd.Flags().IntVar(&index, "index", 0, "alternative index to cycle to (wraps modulo the alternative count)")
	return cmd
}

func buildSequence(syllables, breaks, selections []string) (*conversion.ChineseSequence, error) {
	seq := &conversion.ChineseSequence{
		Syllables: make([]conversion.Syllable, len(syllables)),
	}
	for i, s := range syllables {
		seq.Syllables[i] = conversion.Syllable(s)
	}

	for _, b := range breaks {
		pos, err := strconv.Atoi(b)
		if err != nil {
			return nil, fmt.Errorf("zhconv: invalid --break %q: %w", b, err)
		}
		seq.Breaks = append(seq.Breaks, conversion.Break(pos))
	}

	for _, s := range selections {
		parts := strings.SplitN(s, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("zhconv: invalid --select %q, want start:end:phrase", s)
		}
		start, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("zhconv: invalid --select start %q: %w", parts[0], err)
		}
		end, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("zhconv: invalid --select end %q: %w", parts[1], err)
		}
		seq.Selections = append(seq.Selections, conversion.Interval{Start: start, End: end, Phrase: parts[2]})
	}

	if err := seq.Validate(); err != nil {
		return nil, err
	}
	return seq, nil
}

func printWeights(cmd *cobra.Command, w conversion.Weights) {
	fmt.Fprintf(cmd.ErrOrStderr(), "weights: r1=%d r2=%d r3=%d r4=%d\n", w.R1, w.R2, w.R3, w.R4)
}

func printIntervals(cmd *cobra.Command, intervals []conversion.Interval) {
	var b strings.Builder
	for _, iv := range intervals {
		b.WriteString(iv.Phrase)
	}
	fmt.Fprintln(cmd.OutOrStdout(), b.String())
	for _, iv := range intervals {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", iv.String())
	}
}
