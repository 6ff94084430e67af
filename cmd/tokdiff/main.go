// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// tokdiff prints a unified diff between two text files after splitting them into tokens.
//
// Usage:
//
//	tokdiff [flags] [old [new]]
//
// Without arguments the files old.txt and new.txt in the current directory are compared.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/histdiff/tokdiff"
	"github.com/histdiff/tokdiff/tokenizer"
)

// errFlagParse signals that the flag package already reported the problem.
var errFlagParse = errors.New("flag parse error")

func main() {
	code, err := run(os.Args, os.Stdout, os.Stderr)
	if err != nil && err != errFlagParse {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	os.Exit(code)
}

type options struct {
	mode      tokenizer.Mode
	parser    tokenizer.ParserMode
	format    tokdiff.Format
	vocab     string
	saveVocab string
	vocabSize int
}

func run(args []string, w io.Writer, wErr io.Writer) (int, error) {
	flags := flag.NewFlagSet("tokdiff", flag.ContinueOnError)
	flags.SetOutput(wErr)
	mode := flags.String("tokenizer", tokenizer.ModeWord.String(), "tokenizer `mode`: word, whitespace, character, line, bpe or tiktoken")
	format := flags.String("format", tokdiff.Histogram.String(), "diff `algorithm`: histogram or patience")
	bytes := flags.Bool("bytes", false, "treat every byte as a character instead of decoding UTF-8")
	vocab := flags.String("vocab", "", "load the tokenizer vocabulary from `file`")
	saveVocab := flags.String("save-vocab", "", "save the tokenizer vocabulary to `file` after diffing")
	vocabSize := flags.Int("vocab-size", 1000, "target vocabulary size when training the bpe tokenizer")
	verbose := flags.Bool("v", false, "log debug information to stderr")
	flags.Usage = func() {
		_, _ = fmt.Fprintln(wErr, "tokdiff prints the differences between two texts token by token")
		_, _ = fmt.Fprintln(wErr, "")
		_, _ = fmt.Fprintln(wErr, "usage: tokdiff [flags] [old [new]]")
		_, _ = fmt.Fprintln(wErr, "")
		flags.PrintDefaults()
	}

	err := flags.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return 0, nil
		}
		return 2, errFlagParse
	}

	var opts options
	if opts.mode, err = tokenizer.ParseMode(*mode); err != nil {
		return 2, err
	}
	if opts.format, err = tokdiff.ParseFormat(*format); err != nil {
		return 2, err
	}
	if *bytes {
		opts.parser = tokenizer.Bytes
	}
	opts.vocab = *vocab
	opts.saveVocab = *saveVocab
	opts.vocabSize = *vocabSize

	oldFile, newFile := "old.txt", "new.txt"
	switch flags.NArg() {
	case 0:
	case 2:
		oldFile, newFile = flags.Arg(0), flags.Arg(1)
	default:
		flags.Usage()
		return 2, nil
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(wErr, &slog.HandlerOptions{Level: level}))

	return files(w, logger, oldFile, newFile, opts)
}

func files(w io.Writer, logger *slog.Logger, oldFile, newFile string, opts options) (int, error) {
	oldText, err := readFile(oldFile)
	if err != nil {
		return 1, err
	}
	newText, err := readFile(newFile)
	if err != nil {
		return 1, err
	}

	tok, err := newTokenizer(logger, oldText, newText, opts)
	if err != nil {
		return 1, err
	}

	d, err := tokdiff.New(tok, oldText, newText, tokdiff.OldLabel(oldFile), tokdiff.NewLabel(newFile))
	if err != nil {
		return 1, err
	}
	x, y := d.Tokens()
	logger.Debug("tokenized inputs", "tokenizer", opts.mode, "old", len(x), "new", len(y))

	if opts.saveVocab != "" {
		v, ok := tok.(tokenizer.Vocabulary)
		if !ok {
			return 1, fmt.Errorf("tokenizer %v has no vocabulary to save", opts.mode)
		}
		if err := v.Save(opts.saveVocab); err != nil {
			return 1, err
		}
		logger.Debug("saved vocabulary", "path", opts.saveVocab, "size", len(v.Vocabulary()))
	}

	if d.Identical() {
		_, err := fmt.Fprintln(w, "Texts are identical")
		return 0, err
	}
	if err := d.WriteUnified(w, opts.format); err != nil {
		return 1, err
	}
	return 0, nil
}

// newTokenizer creates the tokenizer selected by opts. Vocabulary based tokenizers start from the
// vocabulary file if one is given. Without one, the BPE tokenizer is trained on both inputs.
func newTokenizer(logger *slog.Logger, oldText, newText string, opts options) (tokenizer.Tokenizer, error) {
	tok, err := tokenizer.New(opts.mode, opts.parser)
	if err != nil {
		return nil, err
	}

	if opts.vocab != "" {
		v, ok := tok.(tokenizer.Vocabulary)
		if !ok {
			return nil, fmt.Errorf("tokenizer %v does not support loading a vocabulary", opts.mode)
		}
		if err := v.Load(opts.vocab); err != nil {
			return nil, err
		}
		logger.Debug("loaded vocabulary", "path", opts.vocab, "size", len(v.Vocabulary()))
		return tok, nil
	}

	if bpe, ok := tok.(*tokenizer.BPE); ok {
		if err := bpe.Train([]string{oldText, newText}, opts.vocabSize, 2); err != nil {
			return nil, err
		}
		logger.Debug("trained bpe", "merges", len(bpe.Merges()), "size", len(bpe.Vocabulary()))
	}
	return tok, nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: file does not exist", path)
		}
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%s: file is empty", path)
	}
	return string(data), nil
}
