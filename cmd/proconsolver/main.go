package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/kuragecore/diecore/board"
	"github.com/kuragecore/diecore/debugboard"
	"github.com/kuragecore/diecore/oplog"
	"github.com/kuragecore/diecore/persist"
	"github.com/kuragecore/diecore/solver"
	"github.com/kuragecore/diecore/transport"
)

// VERSION is injected by build flags.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "proconsolver"
	myApp.Usage = "die-cutting board rearrangement solver"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{Name: "input", Usage: "problem JSON path; takes precedence over --debug"},
		cli.StringFlag{Name: "logdir", Value: ".", Usage: "directory to write the dump and answer log into"},
		cli.BoolFlag{Name: "offline", Usage: "solve --input locally without contacting the scoring server"},
		cli.BoolFlag{Name: "debug", Usage: "solve a randomly generated board instead of fetching one"},
		cli.IntFlag{Name: "width", Value: 16, Usage: "debug board width"},
		cli.IntFlag{Name: "height", Value: 16, Usage: "debug board height"},
		cli.Int64Flag{Name: "seed", Value: 1, Usage: "debug board RNG seed"},
		cli.IntFlag{Name: "retries", Value: 3, Usage: "HTTP retry count against the scoring server"},
		cli.DurationFlag{Name: "retry-interval", Value: 2 * time.Second, Usage: "HTTP retry interval"},
	}

	myApp.Action = func(c *cli.Context) error {
		problem, err := loadProblem(c)
		if err != nil {
			color.Red("proconsolver: %v", err)

			return err
		}

		if err := persist.DumpProblem(c.String("logdir")+"/dump.json", problem); err != nil {
			color.Yellow("proconsolver: dump failed: %v", err)
		}

		answer, err := solver.Solve(problem)
		if err != nil {
			color.Red("proconsolver: solve failed: %v", err)

			return err
		}
		color.Green("proconsolver: solved with %d operations", answer.N)

		if err := persist.WriteLog(c.String("logdir")+"/answer.json", answer); err != nil {
			color.Yellow("proconsolver: write log failed: %v", err)
		}

		if !c.Bool("offline") && !c.Bool("debug") {
			return postAnswer(c, answer)
		}

		return nil
	}

	if err := myApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadProblem(c *cli.Context) (solver.Problem, error) {
	switch {
	case c.String("input") != "":
		return persist.LoadProblem(c.String("input"))
	case c.Bool("debug"):
		rng := rand.New(rand.NewSource(c.Int64("seed")))
		start, goal, err := debugboard.Generate(rng, c.Int("width"), c.Int("height"))
		if err != nil {
			return solver.Problem{}, errors.Wrap(err, "proconsolver: generate debug board")
		}

		return solver.Problem{Board: solver.ProblemBoard{
			Width: start.Width, Height: start.Height,
			Start: rowsOf(start), Goal: rowsOf(goal),
		}}, nil
	default:
		client := transport.NewClient(os.Getenv("URL"), os.Getenv("TOKEN"))
		p, err := transport.FetchProblemRetrying(context.Background(), client, c.Int("retries"), c.Duration("retry-interval"))

		return p, errors.Wrap(err, "proconsolver: fetch problem")
	}
}

func postAnswer(c *cli.Context, answer oplog.Answer) error {
	client := transport.NewClient(os.Getenv("URL"), os.Getenv("TOKEN"))
	err := transport.PostAnswerRetrying(context.Background(), client, answer, c.Int("retries"), c.Duration("retry-interval"))
	if err != nil {
		color.Red("proconsolver: post answer failed: %v", err)
	}

	return err
}

func rowsOf(b *board.Board) []string {
	rows := make([]string, b.Height)
	for y := 0; y < b.Height; y++ {
		row := b.Row(y)
		digits := make([]byte, len(row))
		for x, v := range row {
			digits[x] = '0' + v
		}
		rows[y] = string(digits)
	}

	return rows
}
