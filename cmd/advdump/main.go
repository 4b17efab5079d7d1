// Command advdump loads a Scott Adams adventure data file and dumps it
// in a developer-readable form, optionally rewriting it and verifying
// that the rewrite reproduces the original bytes.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chaosotter/rustoleum/adventure"
)

func main() {
	var (
		asYAML = flag.Bool("yaml", false, "dump the game as YAML instead of a flat listing")
		out    = flag.String("out", "", "rewrite the game data to this path")
		verify = flag.Bool("verify", false, "check that re-encoding reproduces the input bytes")
		quiet  = flag.Bool("quiet", false, "suppress the dump (useful with -out or -verify)")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: advdump [flags] <game.dat>\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("reading %s: %v", path, err)
	}

	game, err := adventure.Decode(data)
	if err != nil {
		log.Fatalf("decoding %s: %v", path, err)
	}

	if !*quiet {
		if *asYAML {
			if err := game.DumpYAML(os.Stdout); err != nil {
				log.Fatalf("dumping %s: %v", path, err)
			}
		} else {
			game.Dump(os.Stdout)
		}
	}

	if *verify {
		raw, err := adventure.Decompress(data)
		if err != nil {
			log.Fatalf("decompressing %s: %v", path, err)
		}
		if encoded := adventure.Encode(game); !bytes.Equal(encoded, raw) {
			log.Fatalf("%s: re-encoded output differs from the original (%d bytes vs %d)",
				path, len(encoded), len(raw))
		}
		fmt.Fprintf(os.Stderr, "%s: round trip ok\n", path)
	}

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("creating %s: %v", *out, err)
		}
		if err := adventure.Write(f, game); err != nil {
			f.Close()
			log.Fatalf("writing %s: %v", *out, err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("writing %s: %v", *out, err)
		}
	}
}
