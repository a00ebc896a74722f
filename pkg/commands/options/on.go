package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutMonth     = "2006-1"
	layoutMonthOnly = "1"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a month, example: --on="2024-3" or --on="3".`)
}

// GetOn resolves the month flag; empty means the current month. A bare
// month number keeps the current year.
func (o *OnOptions) GetOn() (time.Time, error) {
	if o.OnString == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(layoutMonth, o.OnString, time.Local)
	if err != nil {
		t, err = time.ParseInLocation(layoutMonthOnly, o.OnString, time.Local)
		if err != nil {
			return time.Time{}, err
		}
		t = time.Date(time.Now().Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
	}
	return t, nil
}
