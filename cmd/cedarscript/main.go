// Command cedarscript is the CLI for the CedarScript text toolkit.
// It classifies the language of ancient-text passages, resolves verses from
// translation documents, and inspects cross-versification alignment.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/CedarScript/core/canon"
	"github.com/FocuswithJustin/CedarScript/core/language"
	"github.com/FocuswithJustin/CedarScript/core/refs"
	"github.com/FocuswithJustin/CedarScript/core/translation"
	"github.com/FocuswithJustin/CedarScript/core/versification"
	"github.com/FocuswithJustin/CedarScript/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for cedarscript.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log output format"`

	Classify ClassifyCmd `cmd:"" help:"Classify the language of a passage"`
	Resolve  ResolveCmd  `cmd:"" help:"Resolve a verse from a translation document"`
	Offset   OffsetCmd   `cmd:"" help:"Show the versification offset for a chapter"`
	Books    BooksCmd    `cmd:"" help:"List the canonical book catalog"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// ClassifyCmd classifies passage text, optionally anchored to a reference.
type ClassifyCmd struct {
	Ref  string `name:"ref" short:"r" help:"Verse reference for the text (e.g. 'Dan 2:4')"`
	JSON bool   `name:"json" help:"Emit the full result as JSON"`
	Text string `arg:"" optional:"" help:"Passage text (reads stdin if omitted)"`
}

func (c *ClassifyCmd) Run() error {
	text := c.Text
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}

	var ref *language.Ref
	if c.Ref != "" {
		parsed, err := refs.Parse(c.Ref)
		if err != nil {
			return err
		}
		ref = &language.Ref{Book: parsed.Book, Chapter: parsed.Chapter, Verse: parsed.Verse}
	}

	result := language.ClassifyRef(text, ref)
	if c.JSON {
		return printJSON(classifyOutput{
			Language:            string(result.Language),
			Confidence:          result.Confidence,
			Matches:             result.Matches,
			HebrewCount:         result.HebrewCount,
			GreekCount:          result.GreekCount,
			AramaicCount:        result.AramaicCount,
			AramaicWords:        result.AramaicWords,
			KnownAramaicPassage: result.KnownAramaicPassage,
		})
	}

	fmt.Printf("%s (confidence %.2f)\n", result.Language, result.Confidence)
	if len(result.AramaicWords) > 0 {
		fmt.Printf("aramaic vocabulary: %s\n", strings.Join(result.AramaicWords, ", "))
	}
	if result.KnownAramaicPassage {
		fmt.Println("reference is a registered aramaic passage")
	}
	return nil
}

type classifyOutput struct {
	Language            string   `json:"language"`
	Confidence          float64  `json:"confidence"`
	Matches             []string `json:"matches,omitempty"`
	HebrewCount         int      `json:"hebrew_count"`
	GreekCount          int      `json:"greek_count"`
	AramaicCount        int      `json:"aramaic_count"`
	AramaicWords        []string `json:"aramaic_words,omitempty"`
	KnownAramaicPassage bool     `json:"known_aramaic_passage"`
}

// ResolveCmd resolves one verse from a translation's document.
type ResolveCmd struct {
	DataDir        string        `name:"data-dir" short:"d" default:"." type:"existingdir" help:"Directory holding translation documents"`
	Timeout        time.Duration `name:"timeout" default:"30s" help:"Translation load timeout"`
	SourceNumbered []string      `name:"source-numbered" help:"Translation ids that follow source-language verse numbering (default wlc,bhs,masoretic)"`
	JSON           bool          `name:"json" help:"Emit the result as JSON"`

	Translation string `arg:"" help:"Translation id (document basename, e.g. 'kjv')"`
	Ref         string `arg:"" help:"Verse reference (e.g. 'Ps 23:1')"`
}

func (c *ResolveCmd) Run() error {
	ref, err := refs.Parse(c.Ref)
	if err != nil {
		return err
	}

	cfg := translation.DefaultConfig()
	cfg.LoadTimeout = c.Timeout
	if len(c.SourceNumbered) > 0 {
		cfg.SourceNumbered = c.SourceNumbered
	}
	resolver := translation.NewResolver(translation.DirLoader{Dir: c.DataDir}, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout+time.Second)
	defer cancel()
	if err := resolver.WaitLoaded(ctx, c.Translation); err != nil {
		return err
	}

	verse, err := resolver.ResolveVerse(c.Translation, ref.Book, ref.Chapter, ref.Verse)
	if err != nil {
		return err
	}

	if c.JSON {
		return printJSON(resolveOutput{
			Translation:    c.Translation,
			Reference:      ref.String(),
			Text:           verse.Text,
			Superscription: verse.Superscription,
		})
	}
	if verse.Superscription != "" {
		fmt.Printf("[%s]\n", verse.Superscription)
	}
	fmt.Println(verse.Text)
	return nil
}

type resolveOutput struct {
	Translation    string `json:"translation"`
	Reference      string `json:"reference"`
	Text           string `json:"text"`
	Superscription string `json:"superscription,omitempty"`
}

// OffsetCmd reports the superscription offset between a source-numbered
// chapter and its destination numbering.
type OffsetCmd struct {
	Book        string `arg:"" help:"Book name (e.g. 'Psalms')"`
	Chapter     int    `arg:"" help:"Chapter number"`
	SourceCount int    `arg:"" help:"Verse count in the source-numbered edition"`
	DestCount   int    `arg:"" optional:"" help:"Verse count in the destination edition (defaults to the English table)"`
}

func (c *OffsetCmd) Run() error {
	if !canon.IsKnown(c.Book) {
		return fmt.Errorf("unknown book %q", c.Book)
	}
	dest := c.DestCount
	if dest == 0 {
		count, ok := versification.EnglishVerseCount(c.Book, c.Chapter)
		if !ok {
			return fmt.Errorf("no tabulated destination count for %s %d; pass one explicitly", c.Book, c.Chapter)
		}
		dest = count
	}

	a := versification.Align(c.Book, c.Chapter, c.SourceCount, dest)
	fmt.Printf("offset %d", a.Offset)
	if a.HasSuperscription() {
		fmt.Printf(" (logical verse 1 is physical verse %d)", a.Physical(1))
	}
	fmt.Println()
	return nil
}

// BooksCmd lists the canonical catalog.
type BooksCmd struct {
	Testament string `name:"testament" enum:",old,new" default:"" help:"Filter by testament"`
}

func (c *BooksCmd) Run() error {
	for _, b := range canon.Books() {
		if c.Testament != "" && b.Testament.String() != c.Testament {
			continue
		}
		fmt.Printf("%-20s %-20s %3d chapters\n", b.ID, b.Name, b.Chapters)
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("cedarscript version %s\n", version)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func initLogging() {
	level := logging.LevelInfo
	switch CLI.LogLevel {
	case "debug":
		level = logging.LevelDebug
	case "warn":
		level = logging.LevelWarn
	case "error":
		level = logging.LevelError
	}
	format := logging.FormatText
	if CLI.LogFormat == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("cedarscript"),
		kong.Description("CedarScript - ancient-text language classification and verse alignment"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	initLogging()
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
