package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoverse/kleene/internal/bridge"
	"github.com/gnoverse/kleene/internal/corpus"
	"github.com/gnoverse/kleene/internal/model"
)

var maxWordLen int

var checkCmd = &cobra.Command{
	Use:   "check [corpus files...]",
	Short: "run every case of the given corpora against the engine",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := &bridge.Runner{
			Model:  model.NewLang(maxWordLen),
			Logger: logger,
		}

		failed := 0
		for _, path := range args {
			f, err := corpus.Load(path)
			if err != nil {
				return err
			}

			summary := runner.Run(f)
			logger.Info("corpus checked",
				zap.String("corpus", path),
				zap.Int("total", summary.Total),
				zap.Int("passed", summary.Passed),
				zap.Int("failed", summary.Failed),
			)
			fmt.Printf("%s: %s\n", path, summary)
			for _, failure := range summary.Failures {
				fmt.Printf("  FAIL %s: %s\n", failure.Case, failure.Detail)
			}
			failed += summary.Failed
		}

		if failed > 0 {
			return fmt.Errorf("%d case(s) failed", failed)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().IntVar(&maxWordLen, "max-word-len", 8, "word-length cap of the language model")
}
