package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-identity/internal/adapter"
	"github.com/feral-file/ff-identity/internal/binding"
	"github.com/feral-file/ff-identity/internal/caip10"
	"github.com/feral-file/ff-identity/internal/config"
	"github.com/feral-file/ff-identity/internal/did"
	"github.com/feral-file/ff-identity/internal/logger"
	"github.com/feral-file/ff-identity/internal/registry"
)

const usage = `Usage: didctl [flags] <command> [args]

Commands:
  normalize <did>...          print the canonical form of each DID
  hash <did>                  print the keccak-256 DID hash
  address <did> [address]     print the DID address, or check it against address
  account <caip10>...         normalize CAIP-10 accounts
  message <did> <caip10>      print the binding message for a wallet to sign
  chains [query]              list or search known chains

Flags:
`

// cli holds the parsed global flags and output streams
type cli struct {
	stdout   io.Writer
	stderr   io.Writer
	json     adapter.JSON
	asJSON   bool
	limit    int
	registry registry.ChainRegistry
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("didctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "Path to configuration file")
	envPath := fs.String("env", "config/", "Path to environment files")
	asJSON := fs.Bool("json", false, "Print results as JSON")
	limit := fs.Int("limit", 20, "Maximum number of chains to print")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.LoadCLIConfig(*configFile, *envPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}
	if cfg.Debug {
		if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
			fmt.Fprintf(stderr, "failed to initialize logger: %v\n", err)
			return 1
		}
		defer logger.Flush(0)
	}

	c := &cli{
		stdout: stdout,
		stderr: stderr,
		json:   adapter.NewJSON(),
		asJSON: *asJSON,
		limit:  *limit,
	}

	command, rest := fs.Arg(0), fs.Args()[1:]
	logger.Debug("Running command", zap.String("command", command), zap.Strings("args", rest))

	switch command {
	case "normalize":
		return c.normalize(rest)
	case "hash":
		return c.hash(rest)
	case "address":
		return c.address(rest)
	case "account":
		return c.account(rest)
	case "message":
		return c.message(rest)
	case "chains":
		if err := c.loadRegistry(cfg.Registry.ChainsPath); err != nil {
			fmt.Fprintf(stderr, "failed to load chain registry: %v\n", err)
			return 1
		}
		return c.chains(rest)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", command)
		fs.Usage()
		return 2
	}
}

func (c *cli) normalize(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(c.stderr, "normalize requires at least one DID")
		return 2
	}

	code := 0
	for _, arg := range args {
		normalized, err := did.Normalize(arg)
		if err != nil {
			fmt.Fprintf(c.stderr, "%s: %v\n", arg, err)
			code = 1
			continue
		}
		fmt.Fprintln(c.stdout, normalized)
	}
	return code
}

func (c *cli) hash(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(c.stderr, "hash requires exactly one DID")
		return 2
	}

	normalized, err := did.Normalize(args[0])
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return 1
	}
	h, err := did.ComputeDIDHash(normalized)
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return 1
	}

	fmt.Fprintln(c.stdout, h)
	return 0
}

func (c *cli) address(args []string) int {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(c.stderr, "address requires a DID and an optional address")
		return 2
	}

	normalized, err := did.Normalize(args[0])
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return 1
	}

	if len(args) == 2 {
		if did.ValidateDIDAddress(normalized, args[1]) {
			fmt.Fprintln(c.stdout, "valid")
			return 0
		}
		fmt.Fprintln(c.stdout, "invalid")
		return 1
	}

	address, err := did.ToAddress(normalized)
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return 1
	}
	fmt.Fprintln(c.stdout, address)
	return 0
}

func (c *cli) account(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(c.stderr, "account requires at least one CAIP-10 account")
		return 2
	}

	code := 0
	for _, arg := range args {
		result := caip10.Normalize(arg)
		if !result.Valid {
			code = 1
		}

		if c.asJSON {
			if err := c.printJSON(result); err != nil {
				return 1
			}
			continue
		}

		if result.Valid {
			fmt.Fprintln(c.stdout, result.Normalized)
		} else {
			fmt.Fprintf(c.stderr, "%s: %s (%s)\n", arg, result.Error, result.Kind)
		}
	}
	return code
}

func (c *cli) message(args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(c.stderr, "message requires a DID and a CAIP-10 account")
		return 2
	}

	binder := binding.NewBinder(adapter.NewJCS(), c.json, adapter.NewClock(), binding.NewVerifier())
	record, err := binder.NewRecord(args[0], args[1])
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return 1
	}

	fmt.Fprintln(c.stdout, binding.Message(record))
	return 0
}

func (c *cli) chains(args []string) int {
	var chains []registry.ChainInfo
	if len(args) == 0 {
		chains = c.registry.List()
		if c.limit > 0 && len(chains) > c.limit {
			chains = chains[:c.limit]
		}
	} else {
		chains = c.registry.Search(strings.Join(args, " "), c.limit)
	}

	if c.asJSON {
		if err := c.printJSON(chains); err != nil {
			return 1
		}
		return 0
	}

	for _, chain := range chains {
		testnet := ""
		if chain.Testnet {
			testnet = "\ttestnet"
		}
		fmt.Fprintf(c.stdout, "%s\t%s%s\n", chain.Chain, chain.Name, testnet)
	}
	return 0
}

func (c *cli) loadRegistry(path string) error {
	if path == "" {
		reg, err := registry.NewChainRegistry(registry.DefaultChains())
		c.registry = reg
		return err
	}

	reg, err := registry.NewChainRegistryLoader(adapter.NewFileSystem(), c.json).Load(path)
	c.registry = reg
	return err
}

func (c *cli) printJSON(v any) error {
	data, err := c.json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(c.stderr, "failed to encode output: %v\n", err)
		return err
	}
	fmt.Fprintln(c.stdout, string(data))
	return nil
}
