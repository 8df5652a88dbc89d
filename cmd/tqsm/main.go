// Command tqsm is a thin command-line adapter around tqsm.Segment.
// It reads from a file or stdin, segments per line or per buffer, and
// writes the CRLF-joined sentences to a file or stdout.
package main

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/mush42/tqsm"
	"github.com/spf13/cobra"
)

type options struct {
	inputFile   string
	outputFile  string
	language    string
	interactive bool
}

func main() {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "tqsm",
		Short:         "Split text into sentences using language-specific rules",
		Long:          "Split text into sentences using language-specific rules.\n\nSupported languages: " + strings.Join(tqsm.SupportedLanguages(), " "),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().StringVarP(&opts.inputFile, "input-file", "f", "", "input file (default stdin)")
	cmd.Flags().StringVarP(&opts.outputFile, "output-file", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.language, "language", "l", "en", "language code")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "interactive mode (useful for testing)")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts *options) error {
	if opts.inputFile != "" || opts.outputFile != "" {
		if opts.interactive {
			return errors.New("interactive mode is not available when --input-file or --output-file is passed")
		}
	} else {
		opts.interactive = true
	}

	if opts.interactive {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			if err := segmentAndWrite(opts, line); err != nil {
				return err
			}
		}
		return scanner.Err()
	}

	input, err := readInput(opts)
	if err != nil {
		return err
	}
	return segmentAndWrite(opts, input)
}

// segmentAndWrite segments one unit of input and writes the result. File
// input is handled line by line so huge inputs do not become one paragraph.
func segmentAndWrite(opts *options, input string) error {
	var out strings.Builder
	if opts.inputFile == "" {
		sents, err := tqsm.Segment(opts.language, input)
		if err != nil {
			return err
		}
		out.WriteString(strings.Join(sents, "\r\n"))
		out.WriteString("\r\n")
	} else {
		for _, line := range strings.Split(input, "\n") {
			line = strings.TrimSuffix(line, "\r")
			if line == "" {
				continue
			}
			sents, err := tqsm.Segment(opts.language, line)
			if err != nil {
				return err
			}
			out.WriteString(strings.Join(sents, "\r\n"))
			out.WriteString("\r\n")
		}
	}

	if opts.outputFile != "" {
		return os.WriteFile(opts.outputFile, []byte(out.String()), 0o644)
	}
	return writeToStdout(out.String())
}

func readInput(opts *options) (string, error) {
	if opts.inputFile != "" {
		data, err := os.ReadFile(opts.inputFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return line, nil
}

func writeToStdout(text string) error {
	w := bufio.NewWriter(os.Stdout)
	if _, err := w.WriteString(text); err != nil {
		return err
	}
	if err := w.WriteByte('\n'); err != nil {
		return err
	}
	return w.Flush()
}
