package model

import (
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

// Bar counts finished games in batch mode.
type Bar progressbar.ProgressBar

func NewBar(w io.Writer, len int, description string, colors bool) *Bar {
	au := aurora.NewAurora(colors)
	return (*Bar)(progressbar.NewOptions(len,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionEnableColorCodes(colors),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        au.Yellow("█").String(),
			SaucerHead:    au.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	))
}

func (b *Bar) Add(i int) {
	_ = (*progressbar.ProgressBar)(b).Add(i)
}

func (b *Bar) Close() error {
	if err := (*progressbar.ProgressBar)(b).Finish(); err != nil {
		return err
	}
	return (*progressbar.ProgressBar)(b).Close()
}
