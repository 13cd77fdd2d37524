package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"yashubustudio/surveycloud/wordcloud"
)

type cliOptions struct {
	configPath     string
	inputPath      string
	label          string
	outputPath     string
	wordsPath      string
	responseColumn string
	labelColumn    string
	width          int
	height         int
	seed           int64
	stdout         bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		log.Fatalf("surveycloud-cli: %v", err)
	}
	if err := run(opts); err != nil {
		log.Fatalf("surveycloud-cli: %v", err)
	}
}

func parseFlags() (cliOptions, error) {
	var opts cliOptions
	flag.StringVar(&opts.configPath, "config", "", "Path to config.json (default: ./config.json)")
	flag.StringVar(&opts.inputPath, "input", "", "CSV/TSV/text file containing survey responses")
	flag.StringVar(&opts.label, "label", "", "Question label (overrides the label detected in the file)")
	flag.StringVar(&opts.outputPath, "out", "wordcloud.png", "PNG file to write the rendered cloud")
	flag.StringVar(&opts.wordsPath, "words-out", "", "Optional CSV file for the ranked word frequencies")
	flag.StringVar(&opts.responseColumn, "response-column", "", "Column name or #index for the response column")
	flag.StringVar(&opts.labelColumn, "label-column", "", "Column name or #index for the question label column")
	flag.IntVar(&opts.width, "width", 900, "Canvas width in pixels")
	flag.IntVar(&opts.height, "height", 560, "Canvas height in pixels")
	flag.Int64Var(&opts.seed, "seed", 0, "Random seed for reproducible sampling and colors (0 = time-based)")
	flag.BoolVar(&opts.stdout, "stdout", false, "Print the ranked words to STDOUT")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --input FILE [options]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.inputPath = strings.TrimSpace(opts.inputPath)
	if opts.inputPath == "" {
		flag.Usage()
		return opts, errors.New("missing required --input file")
	}
	if opts.width <= 0 || opts.height <= 0 {
		return opts, fmt.Errorf("canvas size %dx%d has no usable area", opts.width, opts.height)
	}
	return opts, nil
}

func run(opts cliOptions) error {
	cfg, err := wordcloud.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	question, err := wordcloud.ParseResponseFileWithOptions(opts.inputPath, wordcloud.ResponseParseOptions{
		ResponseColumn: opts.responseColumn,
		LabelColumn:    opts.labelColumn,
	})
	if err != nil {
		return fmt.Errorf("read responses: %w", err)
	}
	if len(question.Responses) == 0 {
		return errors.New("input file does not contain any responses")
	}
	if opts.label != "" {
		question.Label = opts.label
	}

	tagger, err := wordcloud.NewProseTagger()
	if err != nil {
		return fmt.Errorf("init tagger: %w", err)
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	counts, distinct := wordcloud.CountResponses(question.Responses)
	sampled, ratio := wordcloud.SampleResponses(distinct, cfg.MaxUniqueResponses, rng)
	scores := wordcloud.ExtractFrequencies(counts, sampled, ratio, tagger)
	ranked := wordcloud.RankWords(scores, cfg.MaxWords)
	if len(ranked) == 0 {
		return errors.New("no words survived extraction")
	}

	sizes := wordcloud.FontSizes(ranked, opts.height)
	palette := wordcloud.ChoosePalette(question.Label, cfg)
	colors := wordcloud.AssignColors(palette, len(ranked), rng)
	layout := wordcloud.Layout(ranked, sizes, colors, opts.width, opts.height, cfg, nil)
	img := wordcloud.Render(layout, opts.width, opts.height)

	if err := writePNG(opts.outputPath, img); err != nil {
		return err
	}
	fmt.Printf("ワードクラウドを %s に保存しました (%d語配置, %d語ドロップ)\n",
		opts.outputPath, len(layout.Placed), len(layout.Dropped))

	if opts.wordsPath != "" {
		if err := writeWordCSV(opts.wordsPath, ranked); err != nil {
			return err
		}
		fmt.Printf("頻度テーブルを %s に保存しました\n", opts.wordsPath)
	}
	if opts.stdout {
		printWords(ranked, layout.Dropped)
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	if img == nil {
		return errors.New("nothing to render")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer f.Close()
	if err := wordcloud.EncodePNG(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func writeWordCSV(path string, words []wordcloud.WordFrequency) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create word csv: %w", err)
	}
	defer f.Close()
	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"word", "frequency"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, w := range words {
		if err := writer.Write([]string{w.Word, fmt.Sprintf("%d", w.Frequency)}); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush word csv: %w", err)
	}
	return nil
}

func printWords(words []wordcloud.WordFrequency, dropped []string) {
	fmt.Println()
	fmt.Println("==== 頻度テーブル ====")
	for i, w := range words {
		fmt.Printf("%2d. %s (%d)\n", i+1, w.Word, w.Frequency)
	}
	if len(dropped) > 0 {
		fmt.Printf("配置できなかった単語: %s\n", strings.Join(dropped, ", "))
	}
}
