// Copyright (c) 2026 TTBT Enterprises LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package backend

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ttbt-io/strikezone/backend/command"
	"github.com/ttbt-io/strikezone/backend/engine"
)

const rule = "--------------------------------------------------------------------------------"

// Pacer spaces out the game's narration.
type Pacer struct {
	// Scale multiplies every delay. Zero disables pacing.
	Scale float64
}

// Pause waits for d scaled by the pacer. It returns early with the context's
// error when ctx is done.
func (p Pacer) Pause(ctx context.Context, d time.Duration) error {
	if p.Scale <= 0 || d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(time.Duration(float64(d) * p.Scale))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Console plays a Session on a text terminal.
type Console struct {
	In    io.Reader
	Out   io.Writer
	Pacer Pacer

	scanner *bufio.Scanner
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Console) println(lines ...string) {
	if len(lines) == 0 {
		fmt.Fprintln(c.Out)
	}
	for _, l := range lines {
		fmt.Fprintln(c.Out, l)
	}
}

// pause ignores cancellation. The game loop checks ctx between steps.
func (c *Console) pause(ctx context.Context, seconds float64) {
	_ = c.Pacer.Pause(ctx, time.Duration(seconds*float64(time.Second)))
}

// readLine prompts and returns the next line of input. It returns io.EOF
// when the input is exhausted.
func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	if c.scanner == nil {
		c.scanner = bufio.NewScanner(c.In)
	}
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.scanner.Text(), nil
}

func isQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "q", "quit", "exit":
		return true
	}
	return false
}

// Play runs the game until the pitcher is pulled or the user quits, and
// returns the final score. The input running out counts as quitting.
func (c *Console) Play(ctx context.Context, s *Session) (int, error) {
	c.intro(ctx, s)

	line, err := c.readLine("Press enter to continue (q to quit). ")
	if errors.Is(err, io.EOF) || (err == nil && isQuit(line)) {
		return c.quit(ctx, s), nil
	}
	if err != nil {
		return s.Score, err
	}

	for !s.Over() {
		if err := ctx.Err(); err != nil {
			return s.Score, err
		}
		batter := s.NextBatter()
		c.println()
		c.printf("Stepping up to bat: %s, Batting Avg: %.3f\n", batter.Name(), batter.BatAvg)
		c.pause(ctx, 2)

		ab := s.NewAtBat()
		quit, err := c.atBat(ctx, s, ab, batter)
		if err != nil {
			return s.Score, err
		}
		if quit {
			return c.quit(ctx, s), nil
		}

		out := s.RecordResult(ab.Result())
		c.announce(ctx, out)
		switch {
		case out.Visit != nil:
			c.moundVisit(ctx, out.Visit)
		case out.Milestone != "":
			c.println("", out.Milestone, "")
			c.pause(ctx, 3)
		}
	}

	c.println("", "You are out of Mound Visits", "       GAME OVER!", "", "")
	c.printf("Final score: %d\n", s.Score)
	c.summary(s)
	return s.Score, nil
}

func (c *Console) intro(ctx context.Context, s *Session) {
	c.println("", rule, "")
	c.println(`"Welcome everyone to today's game!"`)
	c.pause(ctx, 0.5)
	c.printf("\"Tonight we have %s pitching against the %s!\"\n\n", s.Pitcher.Name(), s.Opponent)
	c.pause(ctx, 0.5)
	c.printf("\"%s is a real ace, we are expecting great things today.\"\n\n", s.Pitcher.LastName)
	c.println("", rule, "")
	c.pause(ctx, 1)
}

func (c *Console) quit(ctx context.Context, s *Session) int {
	c.println("", "You quit the game.", "")
	c.pause(ctx, 1)
	c.printf("Final score: %d\n", s.Score)
	c.summary(s)
	return s.Score
}

// atBat runs the prompt loop of one at-bat. It reports whether the user quit.
func (c *Console) atBat(ctx context.Context, s *Session, ab *engine.AtBat, batter Batter) (bool, error) {
	for ab.State() != engine.Terminal {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		c.display(s, ab, batter)

		line, err := c.readLine("Please provide a pitch command (q to quit): ")
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		if err != nil {
			return false, err
		}
		cmd, err := command.Parse(line)
		if err != nil {
			c.println("Please provide a valid pitch command.")
			continue
		}
		switch cmd.Kind {
		case command.Quit:
			return true, nil
		case command.Help:
			c.help()
			continue
		case command.Legend:
			c.printf("%s", engine.Legend())
			continue
		}

		res, err := s.Pitch(ab, batter, cmd.PitchType, cmd.Zone)
		switch {
		case errors.Is(err, engine.ErrUnknownPitchType):
			c.printf("%s does not have that pitch type.\n", s.Pitcher.Name())
			c.pause(ctx, 3)
			continue
		case errors.Is(err, engine.ErrUnknownZone):
			c.printf("There is no zone %d. Zones are 1 - 9 and 11 - 14.\n", cmd.Zone.Number())
			c.pause(ctx, 3)
			continue
		case err != nil:
			c.printf("An error occurred during the at-bat: %v\n", err)
			l := WithComponent("console")
			l.Warn().Err(err).Str("pitch", command.Format(cmd.PitchType, cmd.Zone)).Msg("pitch rejected")
			c.pause(ctx, 3)
			continue
		}

		c.pause(ctx, 0.5)
		c.printf("\nThe wind up... ")
		c.pause(ctx, 0.25)
		c.println("and the pitch!")
		c.pause(ctx, 1)
		c.printf("\nPitch resulted in a %s.\n", res.Outcome)
		if !res.Terminal {
			c.pause(ctx, 2.5)
		}
	}
	return false, nil
}

// display prints the game and at-bat header shown before every pitch.
func (c *Console) display(s *Session, ab *engine.AtBat, batter Batter) {
	c.println("", "----------------- BASEBALL GAME INFO -----------------", "")
	c.printf("Player Score: %d\n", s.Score)
	c.printf("Mound Visits Remaining: %d\n\n", s.MoundVisits)
	c.printf("Pitching as: %s\n", s.Pitcher.Player)
	c.printf("Pitch Types Available: %s\n\n", s.Pitcher.Repertoire)
	c.printf("Batters Faced: %d\n", s.BattersFaced())
	c.printf("Game Outcome History: %s\n\n", joinResults(s.OutcomeHistory))

	c.println("", "-------------------- AT BAT INFO --------------------", "")
	c.printf("Up to bat: %s - Bat Avg: %.3f\n\n", batter.Player, batter.BatAvg)

	var pitches, outcomes []string
	for _, h := range ab.History() {
		pitches = append(pitches, h.Pitch.String())
		outcomes = append(outcomes, string(h.Outcome))
	}
	c.printf("  Pitch History: [%s]\n", strings.Join(pitches, ", "))
	c.printf("Outcome History: [%s]\n\n", strings.Join(outcomes, ", "))

	count := ab.Count()
	c.printf("Count: %d balls   (O's)\n", count.Balls)
	c.printf("       %d strikes (X's)\n", count.Strikes)

	if sz := ab.StrikeZone(); !sz.Empty() {
		c.printf("%s", sz.Render())
	} else {
		c.println("", "                     Zone Legend:")
		c.printf("%s", engine.Legend())
	}
	c.println("", "-------------------- USER INPUTS --------------------", "")
	c.println("Command format: [pitch][zone]", "            ex: F2, B12", "")
	c.printf("Pitch codes:  %s\n", strings.Join(command.Codes(), " "))
	c.println("      Zones:  1 - 9, 11 - 14", "")
}

func joinResults(rs []engine.PlateAppearanceResult) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (c *Console) help() {
	c.println(
		"",
		"Pick a pitch type and a zone, e.g. F2 throws a Fastball into zone 2.",
		"Zones 1 - 9 are in the strike zone, 11 - 14 are outside of it.",
		"Type 'legend' to see the zone numbers, 'q' to quit.",
		"",
	)
}

func (c *Console) announce(ctx context.Context, out Outcome) {
	c.println()
	c.printf("It's a %s! Points: %d\n", out.Result, out.Points)
	c.printf("New user score: %d\n\n", out.Score)
	for i := 3; i > 0; i-- {
		c.pause(ctx, 1)
		c.printf("%d\n", i)
	}
	c.println("", "Batter Up!")
}

func (c *Console) moundVisit(ctx context.Context, v *MoundVisit) {
	c.println()
	for _, l := range v.Lines() {
		c.println(l)
		c.pause(ctx, 0.5)
	}
	c.println()
	_, _ = c.readLine("Press enter to continue. ")
}

func (c *Console) summary(s *Session) {
	sum, err := s.Metrics().Summary()
	if err != nil {
		l := WithComponent("console")
		l.Error().Err(err).Msg("game summary")
		return
	}
	c.println("", "Game summary:")
	c.printf("  Batters faced:  %d\n", s.BattersFaced())
	c.printf("  Pitches thrown: %d\n", sum.Pitches)
	for _, r := range ScoreOrder {
		if n := sum.PlateAppearances[r]; n > 0 {
			c.printf("  %-14s  %d\n", string(r)+":", n)
		}
	}
	c.printf("  Mound visits:   %d\n", sum.MoundVisits)
	c.println()
}

// Info explains how pitches are resolved with an example for p facing b.
func (c *Console) Info(p *Pitcher, b Batter, r engine.Resolver) error {
	c.println(
		"",
		"StrikeZone: Arcade",
		"",
		"You pitch as a major league pitcher. Pick a pitch type and a zone of the",
		"strike zone, and the outcome of the pitch is drawn from the pitcher's",
		"Statcast outcome table for that pitch and zone.",
		"",
		"Pitch outcomes include:",
	)
	for _, o := range engine.Outcomes {
		c.printf("  - %s\n", o)
	}
	c.println(
		"",
		"The batter's batting average is compared against the league average and",
		"base hits are scaled accordingly: good batters get more of them.",
		"",
	)

	pt := p.Repertoire[0]
	const zone engine.Zone = "zone3"
	d, err := r.Resolve(pt, zone, b.BatAvg, p.Repertoire, p.Table)
	if err != nil {
		return err
	}
	c.printf("Example: %s facing %s (Bat Avg %.3f), %s in zone %d (%s):\n\n",
		p.Name(), b.Name(), b.BatAvg, pt, zone.Number(), command.Format(pt, zone))
	for _, e := range d {
		c.printf("  %-16s %6.2f\n", string(e.Outcome)+":", e.Percent)
	}
	c.println("", "Outcomes are scored as such:", "")
	for _, res := range ScoreOrder {
		c.printf("  %-16s %6d\n", string(res)+":", ScoreTable[res])
	}
	c.println()
	return nil
}
