// Package options defines shared flag helpers for CLI commands.
package options

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/lumiere/pkg/mood"
)

// EntryOptions captures the writable fields of an entry.
type EntryOptions struct {
	Title    string
	MoodName string
	Tags     []string
	Images   []string
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Title for the entry. Left empty, a placeholder is shown instead.")
	cmd.Flags().StringVarP(&o.MoodName, "mood", "m", "",
		"Mood for the entry, one of: "+moodList()+".")
	cmd.Flags().StringSliceVar(&o.Tags, "tag", nil,
		"Tag the entry. Repeatable.")
	cmd.Flags().StringSliceVar(&o.Images, "image", nil,
		"Attach an image by file path. Repeatable.")
}

// GetImages embeds each image flag as a data URL. Values that already
// are data URLs pass through untouched.
func (o *EntryOptions) GetImages() ([]string, error) {
	if len(o.Images) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(o.Images))
	for _, img := range o.Images {
		if strings.HasPrefix(img, "data:") {
			out = append(out, img)
			continue
		}
		b, err := os.ReadFile(img)
		if err != nil {
			return nil, fmt.Errorf("read image %q: %w", img, err)
		}
		mt := mime.TypeByExtension(filepath.Ext(img))
		if mt == "" {
			mt = "application/octet-stream"
		}
		out = append(out, "data:"+mt+";base64,"+base64.StdEncoding.EncodeToString(b))
	}
	return out, nil
}

// GetMood resolves the mood flag; empty means neutral.
func (o *EntryOptions) GetMood() (mood.Mood, error) {
	if o.MoodName == "" {
		return mood.Neutral, nil
	}
	return mood.ParseStrict(o.MoodName)
}

func moodList() string {
	names := mood.Names()
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
