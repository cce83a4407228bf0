package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var trimSide string

var trimCmd = &cobra.Command{
	Use:   "trim <byteset>",
	Short: "Trim bytes belonging to a set from the window edges",
	Long: `Trim removes bytes that are members of <byteset> from the edges of
the window until the first non-member byte. The argument is a set of
candidate bytes, not a substring: "ab" trims both 'a' and 'b'.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrim,
}

func init() {
	trimCmd.Flags().StringVar(&trimSide, "side", "both", "which edge to trim: left, right or both")
	rootCmd.AddCommand(trimCmd)
}

func runTrim(cmd *cobra.Command, args []string) error {
	s, err := loadStr()
	if err != nil {
		return err
	}
	defer s.Destroy()

	l, r := window(s)
	set := []byte(args[0])

	switch trimSide {
	case "left":
		err = s.TrimLeft(l, r, set)
	case "right":
		err = s.TrimRight(l, r, set)
	case "both":
		err = s.Trim(l, r, set)
	default:
		return fmt.Errorf("unknown side %q", trimSide)
	}
	if err != nil {
		return err
	}

	return emit(s)
}
