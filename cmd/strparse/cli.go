package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/indigo-web/strparser/config"
	"github.com/indigo-web/strparser/hexconv"
	"github.com/indigo-web/strparser/intlist"
	"github.com/indigo-web/strparser/kv"
	"github.com/indigo-web/strparser/split"
	"github.com/indigo-web/strparser/status"
	"github.com/indigo-web/strparser/urlencoded"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var errSeparator = errors.New("separator must be exactly one byte")

type CLI struct {
	Verbose bool   `short:"v" help:"Log diagnostics to stderr."`
	Config  string `type:"existingfile" help:"JSON file overriding the default limits."`

	Ints      IntsCmd      `cmd:"" name:"ints" help:"Parse a comma-separated list of integers."`
	Split     SplitCmd     `cmd:"" name:"split" help:"Split the input by a single-byte separator."`
	KV        KVCmd        `cmd:"" name:"kv" help:"Parse a single key=value pair."`
	KVList    KVListCmd    `cmd:"" name:"kvlist" help:"Parse separator-delimited key=value pairs, skipping malformed ones."`
	URLDecode URLDecodeCmd `cmd:"" name:"urldecode" help:"Decode percent-encoded input, + meaning a space."`
	HexDecode HexDecodeCmd `cmd:"" name:"hexdecode" help:"Decode a string of hex digit pairs."`
}

// Globals are bound to every command's Run method.
type Globals struct {
	Config *config.Config
	Logger *zap.Logger
	Stdin  io.Reader
	Out    *jsoniter.Encoder
}

func (c *CLI) globals(stdin io.Reader, stdout io.Writer) (*Globals, error) {
	logger := zap.NewNop()
	if c.Verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, err
		}
	}

	cfg := config.Default()
	if len(c.Config) > 0 {
		var err error
		if cfg, err = config.Load(c.Config); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		logger.Debug("config loaded", zap.String("path", c.Config))
	}

	out := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(stdout)
	out.SetIndent("", "  ")

	return &Globals{
		Config: cfg,
		Logger: logger,
		Stdin:  stdin,
		Out:    out,
	}, nil
}

// read returns the input argument, or the stdin contents with the trailing line break
// stripped if the argument is "-".
func (g *Globals) read(arg string) ([]byte, error) {
	if arg != "-" {
		return []byte(arg), nil
	}

	data, err := io.ReadAll(g.Stdin)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\r"))

	return data, nil
}

// fail prefixes the error with its outcome code, so scripts can tell failures apart.
func (g *Globals) fail(command string, err error) error {
	code, _ := status.CodeOf(err)
	g.Logger.Debug("command failed",
		zap.String("command", command),
		zap.Stringer("code", code),
		zap.Error(err),
	)

	return fmt.Errorf("%s: %w", code, err)
}

func separator(sep string) (byte, error) {
	if len(sep) != 1 {
		return 0, errSeparator
	}

	return sep[0], nil
}

func orDefault(value, def int) int {
	if value > 0 {
		return value
	}

	return def
}

type IntsCmd struct {
	Input string `arg:"" help:"Input text, or - to read it from stdin."`
	Max   int    `help:"Maximal number of elements. Defaults to the config value."`
}

func (c *IntsCmd) Run(g *Globals) error {
	data, err := g.read(c.Input)
	if err != nil {
		return err
	}

	parser := intlist.Parser{MaxElements: orDefault(c.Max, g.Config.IntList.MaxElements)}
	values, err := parser.Parse(data)
	if err != nil {
		return g.fail("ints", err)
	}

	g.Logger.Debug("parsed integer list", zap.Int("count", len(values)))

	if values == nil {
		values = []int{}
	}

	return g.Out.Encode(struct {
		Values []int `json:"values"`
	}{values})
}

type SplitCmd struct {
	Input string `arg:"" help:"Input text, or - to read it from stdin."`
	Sep   string `short:"s" default:"," help:"Single-byte separator."`
	Max   int    `help:"Maximal number of tokens. Defaults to the config value."`
}

func (c *SplitCmd) Run(g *Globals) error {
	sep, err := separator(c.Sep)
	if err != nil {
		return err
	}

	data, err := g.read(c.Input)
	if err != nil {
		return err
	}

	into := make([][]byte, orDefault(c.Max, g.Config.Split.MaxTokens))
	n, err := split.Bytes(data, sep, into)
	if err != nil {
		return g.fail("split", err)
	}

	g.Logger.Debug("split input", zap.Int("tokens", n), zap.Int("capacity", len(into)))

	tokens := make([]string, n)
	for i, token := range into[:n] {
		tokens[i] = string(token)
	}

	return g.Out.Encode(struct {
		Tokens []string `json:"tokens"`
	}{tokens})
}

type pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type KVCmd struct {
	Input string `arg:"" help:"Input text, or - to read it from stdin."`
}

func (c *KVCmd) Run(g *Globals) error {
	data, err := g.read(c.Input)
	if err != nil {
		return err
	}

	p, err := kv.Parse(data)
	if err != nil {
		return g.fail("kv", err)
	}

	return g.Out.Encode(pair{string(p.Key), string(p.Value)})
}

type KVListCmd struct {
	Input string `arg:"" help:"Input text, or - to read it from stdin."`
	Sep   string `short:"s" help:"Single-byte separator. Defaults to the config value."`
	Max   int    `help:"Maximal number of segments. Defaults to the config value."`
}

func (c *KVListCmd) Run(g *Globals) error {
	sepstr := c.Sep
	if len(sepstr) == 0 {
		sepstr = g.Config.KV.Separator
	}

	sep, err := separator(sepstr)
	if err != nil {
		return err
	}

	data, err := g.read(c.Input)
	if err != nil {
		return err
	}

	into := make([]kv.Pair, orDefault(c.Max, g.Config.KV.MaxPairs))
	n, err := kv.ParseList(data, sep, into)
	if err != nil {
		return g.fail("kvlist", err)
	}

	g.Logger.Debug("parsed key-value list",
		zap.Int("pairs", n),
		zap.Int("segments", split.Count(data, sep)),
	)

	pairs := make([]pair, n)
	for i, p := range into[:n] {
		pairs[i] = pair{string(p.Key), string(p.Value)}
	}

	return g.Out.Encode(struct {
		Pairs []pair `json:"pairs"`
	}{pairs})
}

type URLDecodeCmd struct {
	Input string `arg:"" help:"Input text, or - to read it from stdin."`
	Size  int    `help:"Output buffer size, terminator included. Defaults to the config value."`
}

func (c *URLDecodeCmd) Run(g *Globals) error {
	data, err := g.read(c.Input)
	if err != nil {
		return err
	}

	dst := make([]byte, orDefault(c.Size, g.Config.Decode.BufferSize))
	n, err := urlencoded.Decode(data, dst)
	if err != nil {
		return g.fail("urldecode", err)
	}

	g.Logger.Debug("percent-decoded", zap.Int("in", len(data)), zap.Int("out", n))

	return g.Out.Encode(struct {
		Decoded string `json:"decoded"`
	}{string(dst[:n])})
}

type HexDecodeCmd struct {
	Input string `arg:"" help:"Input text, or - to read it from stdin."`
	Size  int    `help:"Output buffer size. Defaults to the config value."`
}

func (c *HexDecodeCmd) Run(g *Globals) error {
	data, err := g.read(c.Input)
	if err != nil {
		return err
	}

	dst := make([]byte, orDefault(c.Size, g.Config.Decode.BufferSize))
	n, err := hexconv.Decode(data, dst)
	if err != nil {
		return g.fail("hexdecode", err)
	}

	g.Logger.Debug("hex-decoded", zap.Int("in", len(data)), zap.Int("out", n))

	return g.Out.Encode(struct {
		Length int    `json:"length"`
		Bytes  []byte `json:"bytes"`
	}{n, dst[:n]})
}
