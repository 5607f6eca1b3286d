package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/accentlab/lexicon/internal/config"
	"github.com/accentlab/lexicon/internal/ortho"
)

// LexCommand lists words belonging to a lexical set or consonant phoneme
// straight from the CMU index, without starting the server.
type LexCommand struct {
	DictPath string
	FreqPath string
	Limit    int
	Stress   string

	label string
}

func NewLexCommand() *LexCommand {
	return &LexCommand{}
}

func (cmd *LexCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("lex", flag.ExitOnError)

	fs.StringVar(&cmd.DictPath, "dict", config.DefaultCMUDictPath, "Path to the CMU pronouncing dictionary file")
	fs.StringVar(&cmd.FreqPath, "freq", config.DefaultFrequencyPath, "Path to the word-frequency list (optional)")
	fs.IntVar(&cmd.Limit, "limit", 20, "Maximum number of words to print")
	fs.StringVar(&cmd.Stress, "stress", "", "Stress digits to keep, e.g. \"1\" or \"12\"")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s lex [options] <LABEL>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List words belonging to a Wells lexical set or consonant phoneme.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s lex TRAP\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s lex -limit 50 -stress 1 NURSE\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("exactly one lexical set or phoneme label is required")
	}
	cmd.label = fs.Arg(0)

	return nil
}

func (cmd *LexCommand) Run() error {
	index, err := ortho.LoadIndex(cmd.DictPath, cmd.FreqPath)
	if err != nil {
		return fmt.Errorf("failed to load pronunciation index: %w", err)
	}

	words, err := index.Lex(cmd.label, cmd.Limit, cmd.Stress)
	if err != nil {
		return err
	}

	for _, w := range words {
		var phones []string
		for _, p := range w.Pronunciations {
			phones = append(phones, strings.Join(p.Phones, " "))
		}
		fmt.Printf("%-20s %10d  %s\n", w.Word, w.Frequency, strings.Join(phones, " | "))
	}
	fmt.Printf("\n%d words (index: %d headwords)\n", len(words), index.Size())

	return nil
}

// WordCommand prints the CMU pronunciations of a single word.
type WordCommand struct {
	DictPath string
	FreqPath string

	word string
}

func NewWordCommand() *WordCommand {
	return &WordCommand{}
}

func (cmd *WordCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("word", flag.ExitOnError)

	fs.StringVar(&cmd.DictPath, "dict", config.DefaultCMUDictPath, "Path to the CMU pronouncing dictionary file")
	fs.StringVar(&cmd.FreqPath, "freq", config.DefaultFrequencyPath, "Path to the word-frequency list (optional)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s word [options] <WORD>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print the CMU pronunciations of a word.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("exactly one word is required")
	}
	cmd.word = fs.Arg(0)

	return nil
}

func (cmd *WordCommand) Run() error {
	index, err := ortho.LoadIndex(cmd.DictPath, cmd.FreqPath)
	if err != nil {
		return fmt.Errorf("failed to load pronunciation index: %w", err)
	}

	result, ok := index.Word(cmd.word)
	if !ok {
		return fmt.Errorf("word not in dictionary: %s", cmd.word)
	}

	fmt.Printf("%s (frequency %d)\n", result.Word, result.Frequency)
	for _, p := range result.Pronunciations {
		if p.Variant > 0 {
			fmt.Printf("  (%d) %s\n", p.Variant, strings.Join(p.Phones, " "))
		} else {
			fmt.Printf("      %s\n", strings.Join(p.Phones, " "))
		}
	}

	return nil
}
