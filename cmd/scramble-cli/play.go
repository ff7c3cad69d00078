package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/enescakir/emoji"

	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/words"
)

const (
	cmdRestart = ":restart"
	cmdQuit    = ":quit"
)

type player struct {
	round *game.Round
	roots *words.List
	out   io.Writer
}

// play reads commands and candidates from in until EOF, ":quit" or ctx ends.
func (p *player) play(ctx context.Context, in io.Reader) error {
	p.render()
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line := sc.Text()
		switch strings.TrimSpace(line) {
		case cmdQuit:
			return nil
		case cmdRestart:
			p.round.Restart(p.roots.Random())
			fmt.Fprintf(p.out, "%s new round\n", emoji.ChequeredFlag)
			p.render()
			continue
		}

		out, err := p.round.Submit(ctx, line)
		if err != nil {
			return err
		}
		switch out.Status {
		case game.StatusIgnored:
			continue
		case game.StatusRejected:
			fmt.Fprintf(p.out, "%s %s: %s\n", emoji.WomanGesturingNo, out.Title, out.Message)
			continue
		}
		fmt.Fprintf(p.out, "%s %s\n", emoji.Fire, out.Word)
		p.render()
	}
	return sc.Err()
}

// render prints the root word, accepted words and score.
func (p *player) render() {
	fmt.Fprintf(p.out, "\n== %s ==\n", p.round.Root())
	for _, e := range p.round.Entries() {
		fmt.Fprintf(p.out, "  %s %s\n", glyph(e.Letters), e.Word)
	}
	fmt.Fprintf(p.out, "%s total score : %d\n> ", emoji.Star, p.round.Score())
}

// glyph renders a letter count as a circled number (①..⑳, ㉑..㊿).
func glyph(n int) string {
	switch {
	case n >= 1 && n <= 20:
		return string(rune(0x2460 + n - 1))
	case n >= 21 && n <= 35:
		return string(rune(0x3251 + n - 21))
	case n >= 36 && n <= 50:
		return string(rune(0x32B1 + n - 36))
	}
	return fmt.Sprintf("(%d)", n)
}
