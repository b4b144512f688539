package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"notation/move"
	"notation/profile"
	"notation/service"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	profileName := flag.String("profile", "permissive", "builtin validation profile (permissive, chess, shogi, go)")
	profileFile := flag.String("profile-file", "", "YAML file with additional validation profiles")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	codec, err := buildCodec(*profileName, *profileFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build codec")
	}

	switch args[0] {
	case "parse":
		runParse(codec, args[1:])
	case "valid":
		runValid(codec, args[1:])
	case "load":
		runLoad(codec, args[1:])
	case "dump":
		runDump(codec, args[1:])
	case "serve":
		runServe()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: notation [-profile name] [-profile-file path] <command>

commands:
  parse <token>...   decode a flat token sequence and print the move as JSON
  valid <token>...   exit 0 if the token sequence decodes, 1 otherwise
  load <text>        parse a wire string and print each move's tokens
  dump <text>        reprint a wire string from its parsed form (round-trip check)
  serve              run the HTTP service (NOTATION_ADDR, NOTATION_PROFILE)`)
}

func buildCodec(name, file string) (*move.Codec, error) {
	if file != "" {
		profiles, err := profile.LoadFile(file)
		if err != nil {
			return nil, err
		}
		for _, p := range profiles {
			if p.Name() == name {
				return move.New(move.WithValidator(p)), nil
			}
		}
		return nil, fmt.Errorf("profile %q not found in %s", name, file)
	}
	p, err := profile.Builtin(name)
	if err != nil {
		return nil, err
	}
	return move.New(move.WithValidator(p)), nil
}

func runParse(c *move.Codec, tokens []string) {
	m, err := c.Parse(tokens)
	if err != nil {
		log.Fatal().Err(err).Msg("parse failed")
	}
	out := struct {
		Tokens   []string `json:"tokens"`
		Wire     string   `json:"wire"`
		Actions  int      `json:"actions"`
		Compound bool     `json:"compound"`
		Drops    bool     `json:"drops"`
		Captures bool     `json:"captures"`
		Inferred bool     `json:"inferred"`
	}{
		Tokens:   m.Tokens(),
		Wire:     c.Dump([]move.Move{m}),
		Actions:  m.Size(),
		Compound: m.IsCompound(),
		Drops:    m.HasDrops(),
		Captures: m.HasCaptures(),
		Inferred: m.HasInferred(),
	}
	json.NewEncoder(os.Stdout).Encode(out)
}

func runValid(c *move.Codec, tokens []string) {
	if !c.IsValid(tokens) {
		os.Exit(1)
	}
}

func runLoad(c *move.Codec, args []string) {
	if len(args) != 1 {
		log.Fatal().Msg("load takes exactly one wire string")
	}
	moves, err := c.Load(args[0])
	if err != nil {
		log.Fatal().Err(err).Msg("load failed")
	}
	for _, m := range moves {
		json.NewEncoder(os.Stdout).Encode(m.Tokens())
	}
}

func runDump(c *move.Codec, args []string) {
	if len(args) != 1 {
		log.Fatal().Msg("dump takes exactly one wire string")
	}
	moves, err := c.Load(args[0])
	if err != nil {
		log.Fatal().Err(err).Msg("load failed")
	}
	fmt.Println(c.Dump(moves))
}

func runServe() {
	cfg, err := service.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	codec, err := cfg.Codec()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build codec")
	}
	log.Info().Str("profile", cfg.Profile).Msg("starting notation service")
	if err := service.NewServer(codec).Start(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
