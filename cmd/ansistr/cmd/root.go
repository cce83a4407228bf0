// Package cmd implements the ansistr command tree: window-bounded search,
// count, replace, trim and reverse over byte content read from a file or
// stdin.
package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	ansidyn "github.com/maxdz-gmbh/mdz-ansi-dyn"
)

var (
	inputFile string
	verbose   bool
	left      int
	right     int

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "ansistr",
	Short: "Inspect and edit byte strings from the command line",
	Long: `ansistr runs the mdz-ansi-dyn string operations over content read
from a file (--input) or stdin. Content is treated as opaque bytes;
search and edit operations are bounded by an inclusive [left,right]
window that defaults to the whole content.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "read content from file instead of stdin")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVarP(&left, "left", "l", 0, "left window bound (inclusive)")
	rootCmd.PersistentFlags().IntVarP(&right, "right", "r", -1, "right window bound (inclusive, -1 = size-1)")
}

// loadStr reads the input and wraps it in an owned string.
func loadStr() (*ansidyn.Str, error) {
	var (
		data []byte
		err  error
	)
	if inputFile != "" {
		data, err = os.ReadFile(inputFile)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, err
	}

	s, err := ansidyn.New(len(data))
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := s.Insert(0, data); err != nil {
			return nil, err
		}
	}

	log.WithFields(logrus.Fields{
		"size":     s.Size(),
		"capacity": s.Capacity(),
		"source":   sourceName(),
	}).Debug("loaded input")
	return s, nil
}

func sourceName() string {
	if inputFile != "" {
		return inputFile
	}
	return "stdin"
}

// window resolves the persistent window flags against the content size.
func window(s *ansidyn.Str) (int, int) {
	r := right
	if r < 0 {
		r = s.Size() - 1
	}
	return left, r
}

// emit writes the resulting content to stdout as raw bytes.
func emit(s *ansidyn.Str) error {
	_, err := os.Stdout.Write(s.Bytes())
	return err
}
