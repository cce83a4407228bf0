package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	ansidyn "github.com/maxdz-gmbh/mdz-ansi-dyn"
)

var (
	replaceFromRight bool
	replaceStraight  bool
)

var replaceCmd = &cobra.Command{
	Use:   "replace <before> <after>",
	Short: "Replace every occurrence of a pattern in the window",
	Long: `Replace every occurrence of <before> inside the window with <after>.
<after> may be empty, which removes the occurrences.

By default the dual-pass strategy is used for growing replacements: it
is all-or-nothing. --straight selects the single-pass strategy, which
can leave the output partially replaced if capacity runs out.`,
	Args: cobra.ExactArgs(2),
	RunE: runReplace,
}

func init() {
	replaceCmd.Flags().BoolVar(&replaceFromRight, "from-right", false, "scan from the right")
	replaceCmd.Flags().BoolVar(&replaceStraight, "straight", false, "single-pass growth strategy (non-atomic on failure)")
	rootCmd.AddCommand(replaceCmd)
}

func runReplace(cmd *cobra.Command, args []string) error {
	s, err := loadStr()
	if err != nil {
		return err
	}
	defer s.Destroy()

	mode := ansidyn.ReplaceDual
	if replaceStraight {
		mode = ansidyn.ReplaceStraight
	}

	l, r := window(s)
	sizeBefore := s.Size()
	if err := s.Replace(l, r, []byte(args[0]), []byte(args[1]), !replaceFromRight, mode); err != nil {
		return fmt.Errorf("replace: %w", err)
	}

	log.WithFields(logrus.Fields{
		"size_before": sizeBefore,
		"size_after":  s.Size(),
	}).Debug("replaced")
	return emit(s)
}
