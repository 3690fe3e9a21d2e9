package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/chinmay1088/alph/api"
)

// withSpinner shows a spinner on stderr while fn runs
func withSpinner(description string, fn func() error) error {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	err := fn()
	close(done)
	wg.Wait()
	_ = bar.Finish()

	return err
}

// printJSON pretty-prints a node response as-is
func printJSON(out io.Writer, raw json.RawMessage) error {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Fprintln(out, pretty.String())
	return nil
}

// describeNodeError turns a client failure into a user-facing message
func describeNodeError(err error) error {
	switch {
	case api.IsKind(err, api.KindTimeout):
		return fmt.Errorf("the node did not answer in time (%s): %w", cfg.NodeURL, err)
	case api.IsKind(err, api.KindTransport):
		return fmt.Errorf("the node is unreachable (%s): %w", cfg.NodeURL, err)
	case api.IsKind(err, api.KindRejected):
		return fmt.Errorf("the node rejected the request: %w", err)
	case api.IsKind(err, api.KindParse):
		return fmt.Errorf("the node sent an unexpected response: %w", err)
	default:
		return err
	}
}

// confirm asks a yes/no question on in; anything but y/yes is no
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", color.YellowString(question))
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
