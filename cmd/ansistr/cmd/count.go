package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	countOverlapped bool
	countFromRight  bool
)

var countCmd = &cobra.Command{
	Use:   "count <pattern>",
	Short: "Count pattern occurrences in the window",
	Args:  cobra.ExactArgs(1),
	RunE:  runCount,
}

func init() {
	countCmd.Flags().BoolVar(&countOverlapped, "overlapped", false, "count overlapping matches")
	countCmd.Flags().BoolVar(&countFromRight, "from-right", false, "scan from the right")
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	s, err := loadStr()
	if err != nil {
		return err
	}
	defer s.Destroy()

	l, r := window(s)
	n, err := s.Count(l, r, []byte(args[0]), countOverlapped, !countFromRight)
	if err != nil {
		return err
	}

	fmt.Println(n)
	return nil
}
