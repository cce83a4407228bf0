package cmd

import (
	"github.com/spf13/cobra"
)

var reverseCmd = &cobra.Command{
	Use:   "reverse",
	Short: "Reverse the bytes inside the window",
	Args:  cobra.NoArgs,
	RunE:  runReverse,
}

func init() {
	rootCmd.AddCommand(reverseCmd)
}

func runReverse(cmd *cobra.Command, args []string) error {
	s, err := loadStr()
	if err != nil {
		return err
	}
	defer s.Destroy()

	l, r := window(s)
	if err := s.Reverse(l, r); err != nil {
		return err
	}

	return emit(s)
}
