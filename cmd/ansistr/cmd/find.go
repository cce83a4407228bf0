package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var findLast bool

var findCmd = &cobra.Command{
	Use:   "find <pattern>",
	Short: "Find the first (or last) occurrence of a pattern",
	Args:  cobra.ExactArgs(1),
	RunE:  runFind,
}

func init() {
	findCmd.Flags().BoolVar(&findLast, "last", false, "search from the right")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	s, err := loadStr()
	if err != nil {
		return err
	}
	defer s.Destroy()

	l, r := window(s)
	log.WithFields(logrus.Fields{"left": l, "right": r, "pattern": args[0]}).Debug("searching")

	var pos int
	if findLast {
		pos, err = s.RFind(l, r, []byte(args[0]))
	} else {
		pos, err = s.Find(l, r, []byte(args[0]))
	}
	if err != nil {
		return err
	}

	if pos < 0 {
		fmt.Println("not found")
		return nil
	}
	fmt.Println(pos)
	return nil
}
