package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haukened/urlrisk/internal/urlrisk/gateways/report"
)

// scanPrompt is shown when scan runs without an argument.
const scanPrompt = "Enter a url for phishing link scanning: "

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [url]",
		Short: "Evaluate one URL for phishing indicators",
		Long: `Scan evaluates a single URL and prints the verdict followed by one
line per triggered heuristic.

When no URL is given it is read from standard input after a prompt.

Examples:
  urlrisk scan http://paypa1-login.verify-account.tk/update-info
  urlrisk scan --format json https://google.com/
  echo "http://192.168.1.1/login" | urlrisk scan`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScanCmd,
	}

	formats := make([]string, 0, len(report.Formats()))
	for _, f := range report.Formats() {
		formats = append(formats, string(f))
	}
	cmd.Flags().StringP("format", "f", string(report.FormatText),
		"Output format: "+strings.Join(formats, ", "))

	return cmd
}

func runScanCmd(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("format")
	format, err := report.ParseFormat(name)
	if err != nil {
		return err
	}

	app, err := loadApplication(cmd)
	if err != nil {
		return err
	}

	var raw string
	if len(args) == 1 {
		raw = args[0]
	} else {
		raw, err = promptURL(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	result, err := app.evaluator.Evaluate(raw)
	if err != nil {
		return err
	}

	w, err := report.NewWriter(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return w.Write(result)
}

// promptURL asks for a URL and reads one line. Only the line terminator is
// removed; the rest is evaluated verbatim.
func promptURL(in io.Reader, out io.Writer) (string, error) {
	if _, err := fmt.Fprint(out, scanPrompt); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read url: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
