package main

import (
	"os"

	"github.com/HuXin0817/doots/pkg/engine"
	"github.com/HuXin0817/doots/pkg/players"
	"github.com/HuXin0817/doots/pkg/pprof"
	"github.com/HuXin0817/doots/pkg/render"
	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/errorx"
	"github.com/zeromicro/go-zero/core/logx"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:          "doots",
		Short:        "Dots and boxes in the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, f)
		},
	}
	f.register(cmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "play",
		Short: "Play one game (the default command)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, f)
		},
	})
	cmd.AddCommand(benchCmd(f))
	return cmd
}

func setup(c Config) {
	logx.MustSetup(c.Log)
	logx.DisableStat()
	if c.Pprof != "" {
		pprof.Start(c.Pprof)
	}
}

func runPlay(cmd *cobra.Command, f *flags) error {
	c, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	setup(c)

	seats, err := players.Choose(c.Player1, c.Player2, players.Options{
		Input:   cmd.InOrStdin(),
		Output:  cmd.OutOrStdout(),
		Rollout: c.RolloutOptions(),
	})
	if err != nil {
		return err
	}

	options := []engine.Option{
		engine.WithOutput(cmd.OutOrStdout()),
		engine.WithQuiet(c.Quiet),
		engine.WithRenderer(render.New(c.Color)),
	}

	var transcript *engine.Transcript
	if c.Transcript.Path != "" {
		transcript, err = engine.OpenTranscript(c.Transcript.Path, c.Transcript.Format, c.Transcript.FlushInterval)
		if err != nil {
			return err
		}
		options = append(options, engine.WithTranscript(transcript))
	}

	var be errorx.BatchError
	if g, err := engine.New(c.BoardSize, seats, options...); err != nil {
		be.Add(err)
	} else {
		_, err = g.Run()
		be.Add(err)
	}
	if transcript != nil {
		be.Add(transcript.Close())
	}
	return be.Err()
}
