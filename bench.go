package main

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/HuXin0817/doots/pkg/assess"
	"github.com/HuXin0817/doots/pkg/engine"
	"github.com/HuXin0817/doots/pkg/models/chess"
	"github.com/HuXin0817/doots/pkg/models/model"
	"github.com/HuXin0817/doots/pkg/players"
	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/errorx"
	"github.com/zeromicro/go-zero/core/mr"
)

var errInteractiveBench = errors.New("bench needs two computer players")

// tally counts outcomes over many games, indexed by seat.
type tally struct {
	Names [2]string
	Wins  [2]int
	Ties  int
	Boxes [2]int
}

func (t *tally) add(r chess.WinnerResult) {
	switch r.Outcome {
	case chess.Winner:
		id, _ := r.Winner()
		t.Wins[id-chess.Player1]++
		t.Boxes[id-chess.Player1] += r.Boxes
	case chess.Tie:
		t.Ties++
		for _, id := range r.Players {
			t.Boxes[id-chess.Player1] += r.Boxes
		}
	}
}

func (t tally) Games() int { return t.Wins[0] + t.Wins[1] + t.Ties }

func (t tally) Report(w io.Writer) {
	for i, id := range chess.PlayerIDs {
		fmt.Fprintf(w, "Player %v (%s): %d wins\n", id, t.Names[i], t.Wins[i])
	}
	fmt.Fprintf(w, "Ties: %d\n", t.Ties)
}

type benchOptions struct {
	games   int
	workers int
}

func benchCmd(f *flags) *cobra.Command {
	opts := benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Play many computer games in parallel and count the results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			setup(c)

			var transcript *engine.Transcript
			if c.Transcript.Path != "" {
				if transcript, err = engine.OpenTranscript(c.Transcript.Path, c.Transcript.Format, c.Transcript.FlushInterval); err != nil {
					return err
				}
			}

			t, err := bench(c, opts, transcript, cmd.ErrOrStderr())
			if err == nil {
				t.Report(cmd.OutOrStdout())
			}

			var be errorx.BatchError
			be.Add(err)
			if transcript != nil {
				be.Add(transcript.Close())
			}
			return be.Err()
		},
	}

	cmd.Flags().IntVarP(&opts.games, "games", "n", 100, "number of games")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "games played at once (0 uses the mr default)")
	return cmd
}

// bench plays opts.games games between the configured players on a worker pool.
// Every game gets its own players, and rollout players a distinct seed. After the
// first failure no new game starts. Games already running finish in the background
// and the transcript drops what they record once it is closed.
func bench(c Config, opts benchOptions, transcript *engine.Transcript, progress io.Writer) (tally, error) {
	if c.Player1 == players.KindHoomin || c.Player2 == players.KindHoomin {
		return tally{}, errInteractiveBench
	}

	sample, err := players.Choose(c.Player1, c.Player2, players.Options{Input: eofReader{}, Output: io.Discard})
	if err != nil {
		return tally{}, err
	}

	bar := model.NewBar(progress, opts.games, "games", c.Color)
	defer bar.Close()

	var failed atomic.Bool
	var mrOptions []mr.Option
	if opts.workers > 0 {
		mrOptions = append(mrOptions, mr.WithWorkers(opts.workers))
	}

	t, err := mr.MapReduce(func(source chan<- int) {
		for i := range opts.games {
			source <- i
		}
	}, func(i int, writer mr.Writer[chess.WinnerResult], cancel func(error)) {
		if failed.Load() {
			return
		}
		fail := func(err error) {
			failed.Store(true)
			cancel(err)
		}

		rollout := c.RolloutOptions()
		if c.Rollout.Seed != 0 {
			rollout = append(rollout, assess.WithSeed(c.Rollout.Seed+int64(i)))
		}

		seats, err := players.Choose(c.Player1, c.Player2, players.Options{Input: eofReader{}, Output: io.Discard, Rollout: rollout})
		if err != nil {
			fail(err)
			return
		}

		options := []engine.Option{engine.WithOutput(io.Discard), engine.WithQuiet(true)}
		if transcript != nil {
			options = append(options, engine.WithTranscript(transcript))
		}
		g, err := engine.New(c.BoardSize, seats, options...)
		if err != nil {
			fail(err)
			return
		}

		result, err := g.Run()
		if err != nil {
			fail(fmt.Errorf("game %d: %w", i, err))
			return
		}
		writer.Write(result)
	}, func(pipe <-chan chess.WinnerResult, writer mr.Writer[tally], cancel func(error)) {
		var t tally
		for result := range pipe {
			t.add(result)
			bar.Add(1)
		}
		writer.Write(t)
	}, mrOptions...)
	if err != nil {
		return t, err
	}

	t.Names = [2]string{sample[0].Name(), sample[1].Name()}
	return t, nil
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
