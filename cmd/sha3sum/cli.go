package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"

	keccak "github.com/Giulio2002/keccakp"
	"github.com/Giulio2002/keccakp/encoding"
	"github.com/Giulio2002/keccakp/internal/config"
	"github.com/Giulio2002/keccakp/internal/log"
)

var configFlag = &cli.StringFlag{
	Name:  "config",
	Usage: "TOML file with default algorithm, output length, encoding and log settings",
}

var algorithmFlag = &cli.StringFlag{
	Name:    "algorithm",
	Aliases: []string{"a"},
	Usage:   "sha3-224|256|384|512, shake128|256, rawshake128|256 or keccak-224|256|384|512",
}

var bitsFlag = &cli.IntFlag{
	Name:    "bits",
	Aliases: []string{"b"},
	Usage:   "output length in bits for shake, rawshake and keccak (default: 2x the security level)",
}

var encodingFlag = &cli.StringFlag{
	Name:    "encoding",
	Aliases: []string{"e"},
	Usage:   "hex, base64, multihash or a multibase name such as base32",
}

var stringFlag = &cli.StringFlag{
	Name:    "string",
	Aliases: []string{"s"},
	Usage:   "hash this string instead of files",
}

var checkFlag = &cli.BoolFlag{
	Name:    "check",
	Aliases: []string{"c"},
	Usage:   "read '<digest>  <file>' lines from the given files and verify them",
}

var verboseFlag = &cli.BoolFlag{
	Name:  "verbose",
	Usage: "print debug-level log messages",
}

var jsonLogsFlag = &cli.BoolFlag{
	Name:  "json-logs",
	Usage: "log in JSON instead of console format",
}

// CLI builds the sha3sum application.
func CLI() *cli.App {
	app := cli.NewApp()
	app.Name = "sha3sum"
	app.Version = version
	app.Usage = "print or check SHA-3, SHAKE, RawSHAKE and Keccak checksums"
	app.ArgsUsage = "[FILE]..."
	app.Flags = []cli.Flag{
		configFlag, algorithmFlag, bitsFlag, encodingFlag,
		stringFlag, checkFlag, verboseFlag, jsonLogsFlag,
	}
	app.Action = sumCmd
	app.Commands = []*cli.Command{
		{
			Name:   "vectors",
			Usage:  "run the built-in known-answer tests",
			Action: vectorsCmd,
		},
	}
	// main reports errors and picks the exit status.
	app.ExitErrHandler = func(*cli.Context, error) {}
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintf(c.App.Writer, "sha3sum %v (date %v, commit %v)\n", version, buildDate, gitCommit)
	}
	return app
}

// settings is the merged view of the config file and the flags. The
// logger travels on the cli.Context.
type settings struct {
	params   keccak.Params
	bits     int
	encoding string
}

func loadSettings(c *cli.Context) (*settings, error) {
	conf := config.Default()
	if path := c.String(configFlag.Name); path != "" {
		var err error
		if conf, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if c.IsSet(algorithmFlag.Name) {
		conf.Hash.Algorithm = c.String(algorithmFlag.Name)
		// Bits from the file belong to the file's algorithm.
		conf.Hash.Bits = 0
	}
	if c.IsSet(bitsFlag.Name) {
		conf.Hash.Bits = c.Int(bitsFlag.Name)
	}
	if c.IsSet(encodingFlag.Name) {
		conf.Hash.Encoding = c.String(encodingFlag.Name)
	}
	if c.Bool(verboseFlag.Name) {
		conf.Log.Level = "debug"
	}
	if c.Bool(jsonLogsFlag.Name) {
		conf.Log.JSON = true
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	p, bits, err := conf.Params()
	if err != nil {
		return nil, err
	}
	level, err := log.ParseLevel(conf.Log.Level)
	if err != nil {
		return nil, err
	}
	l := log.New(zapcore.AddSync(c.App.ErrWriter), level, conf.Log.JSON).Named("sha3sum")
	l.Debugw("settings", "algorithm", p.Name(), "rate", p.Rate(), "bits", bits, "encoding", conf.Hash.Encoding)
	c.Context = log.ToContext(c.Context, l)
	return &settings{params: p, bits: bits, encoding: conf.Hash.Encoding}, nil
}

func sumCmd(c *cli.Context) error {
	s, err := loadSettings(c)
	if err != nil {
		return err
	}
	defer log.FromContextOrDefault(c.Context).Sync() //nolint:errcheck

	if c.Bool(checkFlag.Name) {
		return checkFiles(c, s)
	}
	if c.IsSet(stringFlag.Name) {
		msg := c.String(stringFlag.Name)
		digest, err := keccak.Sum(s.params, s.bits, []byte(msg))
		if err != nil {
			return err
		}
		return printDigest(c.App.Writer, s, digest, fmt.Sprintf("%q", msg))
	}

	names := c.Args().Slice()
	if len(names) == 0 {
		names = []string{"-"}
	}
	for _, name := range names {
		digest, err := hashFile(c, s, name)
		if err != nil {
			return err
		}
		if err := printDigest(c.App.Writer, s, digest, name); err != nil {
			return err
		}
	}
	return nil
}

func printDigest(w io.Writer, s *settings, digest []byte, name string) error {
	out, err := encoding.Format(s.encoding, s.params, digest)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s  %s\n", out, name)
	return err
}

// hashFile streams name ("-" is stdin) through a Hasher.
func hashFile(c *cli.Context, s *settings, name string) ([]byte, error) {
	var r io.Reader = c.App.Reader
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		r = f
	}

	h, err := keccak.NewHasher(s.params)
	if err != nil {
		return nil, err
	}
	n, err := io.Copy(h, r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	log.FromContextOrDefault(c.Context).Debugw("absorbed",
		"file", name, "bytes", n, "blocks", n/int64(h.BlockSize())+1)

	if s.params.XOF() {
		return h.ReadBits(s.bits)
	}
	return h.Sum(nil), nil
}

// checkFiles verifies '<digest>  <file>' lines in the style of sha256sum -c.
func checkFiles(c *cli.Context, s *settings) error {
	lists := c.Args().Slice()
	if len(lists) == 0 {
		lists = []string{"-"}
	}
	var failed, malformed int
	for _, list := range lists {
		f, m, err := checkList(c, s, list)
		if err != nil {
			return err
		}
		failed += f
		malformed += m
	}
	if malformed > 0 {
		log.FromContextOrDefault(c.Context).Warnw("some lines are improperly formatted", "count", malformed)
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d computed checksum(s) did NOT match", failed), 1)
	}
	return nil
}

// checkList verifies one checksum list ("-" is stdin).
func checkList(c *cli.Context, s *settings, list string) (failed, malformed int, err error) {
	l := log.FromContextOrDefault(c.Context)
	var r io.Reader = c.App.Reader
	if list != "-" {
		f, err := os.Open(list)
		if err != nil {
			return 0, 0, errors.Wrap(err, "opening checksum list")
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		want, name, ok := strings.Cut(line, "  ")
		if !ok {
			malformed++
			l.Warnw("malformed checksum line", "list", list, "line", line)
			continue
		}
		if name == "-" && list == "-" {
			// stdin is the list itself and is already being consumed.
			failed++
			l.Errorw("cannot check stdin from a list read on stdin", "list", list)
			fmt.Fprintf(c.App.Writer, "%s: FAILED stdin is the checksum list\n", name)
			continue
		}
		digest, err := hashFile(c, s, name)
		if err != nil {
			failed++
			l.Errorw("cannot hash", "file", name, "err", err)
			fmt.Fprintf(c.App.Writer, "%s: FAILED open or read\n", name)
			continue
		}
		got, err := encoding.Format(s.encoding, s.params, digest)
		if err != nil {
			return failed, malformed, err
		}
		if got == want {
			fmt.Fprintf(c.App.Writer, "%s: OK\n", name)
		} else {
			failed++
			fmt.Fprintf(c.App.Writer, "%s: FAILED\n", name)
		}
	}
	if err := scanner.Err(); err != nil {
		return failed, malformed, errors.Wrapf(err, "reading %s", list)
	}
	return failed, malformed, nil
}
