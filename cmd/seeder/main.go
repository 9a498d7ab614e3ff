package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/demorse"
	"github.com/poiesic/demorse/morse"
)

// words is a small starter vocabulary of common and procedural-radio terms.
var words = []string{
	"A", "ABOUT", "ALL", "AND", "ARE", "AS", "AT", "BE", "BREAK", "BY",
	"CALL", "CAN", "COME", "DAY", "DO", "FIRE", "FOR", "FROM", "GET", "GO",
	"GOOD", "HAVE", "HE", "HELLO", "HELP", "HERE", "HI", "HOW", "I", "IN",
	"IS", "IT", "KNOW", "LAND", "LOST", "MAYDAY", "ME", "MORE", "MY", "NEED", "NO",
	"NORTH", "NOT", "NOW", "OF", "ON", "ONE", "OR", "OUT", "OVER", "RADIO",
	"SEA", "SEND", "SHIP", "SOS", "SOUTH", "STOP", "THAT", "THE", "THEY",
	"THIS", "TIME", "TO", "UP", "URGENT", "WE", "WEST", "WHAT", "WILL",
	"WITH", "YES", "YOU",
}

// sentences are sample transmissions encoded into the seed bitstream file.
// Every word appears in the seed vocabulary so the decoder can recover them.
var sentences = []string{
	"SOS",
	"HELLO",
	"SOS SOS SOS",
	"SEND HELP NOW",
	"WE NEED HELP",
	"SHIP LOST AT SEA",
	"MAYDAY MAYDAY",
	"FIRE ON SHIP",
	"GO NORTH NOW",
	"ALL GOOD HERE",
	"CALL ME ON RADIO",
	"STOP SEND NO MORE",
	"HOW ARE YOU",
	"THEY WILL COME",
	"URGENT COME NOW",
}

var (
	dbPath       = flag.String("db", "./demorse_db", "path to BadgerDB database directory")
	wordlistName = flag.String("name", "common", "name to store the seed wordlist under")
	srcFileName  = flag.String("src", "", "optional wordlist file replacing the built-in vocabulary")
	outFileName  = flag.String("out", "bitstreams.txt", "file to write sample bitstreams to")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// writeBitstreams encodes the sample sentences and writes them one per line.
func writeBitstreams(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, sentence := range sentences {
		bitstream, ok := morse.EncodeBitstream(sentence)
		if !ok {
			return fmt.Errorf("cannot encode %q", sentence)
		}
		if _, err := fmt.Fprintln(f, bitstream); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	db, err := demorse.NewDatabase(*dbPath)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	ctx := context.Background()

	// Determine source of seed words
	var source *strings.Reader
	if *srcFileName != "" {
		data, err := os.ReadFile(*srcFileName)
		if err != nil {
			panic(err)
		}
		source = strings.NewReader(string(data))
	} else {
		source = strings.NewReader(strings.Join(words, "\n"))
	}

	wordlist, err := db.ImportWordlist(ctx, *wordlistName, source)
	if err != nil {
		panic(err)
	}
	slog.Info("seeded wordlist", "name", wordlist.Name, "words", len(wordlist.Words))

	if err := writeBitstreams(*outFileName); err != nil {
		panic(err)
	}
	slog.Info("wrote sample bitstreams", "file", *outFileName, "lines", len(sentences))
}
