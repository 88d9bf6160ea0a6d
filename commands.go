package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/xuning888/wstr/config"
	"github.com/xuning888/wstr/logger"
	"github.com/xuning888/wstr/pkg/check"
	"github.com/xuning888/wstr/pkg/datastruct/wstr"
	"github.com/xuning888/wstr/pkg/selfcheck"
)

var (
	checkCommand = &cli.Command{
		Name:   "check",
		Usage:  "run the built-in scenarios against wstr",
		Action: checkCmd,
	}

	repeatCommand = &cli.Command{
		Name:      "repeat",
		Usage:     "read one line from stdin and print it repeated",
		UsageText: "wstr repeat --count N < input",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "How many times to repeat the line `NUMBER`",
				Value:   2,
			},
		},
		Action: repeatCmd,
	}

	findCommand = &cli.Command{
		Name:      "find",
		Usage:     "print the index of a pattern in every line read from stdin",
		UsageText: "wstr find --pattern P < input",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "pattern",
				Aliases:  []string{"p"},
				Usage:    "Text to look for `PATTERN`",
				Required: true,
			},
		},
		Action: findCmd,
	}
)

func checkCmd(c *cli.Context) error {
	suite := check.NewSuite()
	failed := selfcheck.Run(suite)
	total := len(suite.Results())
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d scenarios failed", failed, total), 1)
	}
	logger.InfoF("all %d scenarios passed", total)
	return nil
}

func repeatCmd(c *cli.Context) error {
	count := c.Int("count")
	if err := checkRepeatCount(count, config.Current.MaxRepeat); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if err := repeatLine(bufio.NewReader(c.App.Reader), c.App.Writer, count); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

func checkRepeatCount(count, maxRepeat int) error {
	if count > maxRepeat {
		logger.WarnF("repeat count %d rejected, maxrepeat is %d", count, maxRepeat)
		return errors.Errorf("count %d exceeds maxrepeat %d", count, maxRepeat)
	}
	return nil
}

func findCmd(c *cli.Context) error {
	pattern := wstr.New(c.String("pattern"))
	if err := findLines(bufio.NewReader(c.App.Reader), c.App.Writer, pattern); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

func repeatLine(in io.ByteScanner, out io.Writer, count int) error {
	line := wstr.NewEmpty()
	if err := line.Scan(in); err != nil && err != io.EOF {
		return err
	}
	repeated, err := line.Repeat(count)
	if err != nil {
		return err
	}
	if err = repeated.AppendByte('\n'); err != nil {
		return err
	}
	_, err = repeated.WriteTo(out)
	return err
}

func findLines(in io.ByteScanner, out io.Writer, pattern *wstr.Wstr) error {
	for lineNo := 1; ; lineNo++ {
		line := wstr.NewEmpty()
		err := line.Scan(in)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		result := "-1"
		if pos, exists := line.IndexOf(pattern); exists {
			result = strconv.Itoa(pos)
		}
		if logger.IsEnabledDebug() {
			logger.DebugF("line %d: %s -> %s", lineNo, line, result)
		}
		if _, err = fmt.Fprintln(out, result); err != nil {
			return err
		}
		// drop the newline left by Scan
		if _, err = in.ReadByte(); err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
	}
}
