// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult], [FormatExecutionDuration].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Kronuz/base-x-go/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows the full result value, bypassing truncation.
	Verbose bool
}

// WriteResultToFile writes an encode/decode/arith result to a file.
//
// Parameters:
//   - result: The rendered result string (encoded text, or a decoded
//     value's text form).
//   - operation: The operation name ("encode", "decode", or an arithmetic
//     operation such as "add").
//   - duration: How long the operation took.
//   - alphabet: The alphabet name used, if applicable.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(result string, operation string, duration time.Duration, alphabet string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# BaseX %s Result\n", operation)
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	if alphabet != "" {
		fmt.Fprintf(file, "# Alphabet: %s\n", alphabet)
	}
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Length: %d\n", len(result))
	fmt.Fprintf(file, "\n%s\n", result)

	return nil
}

// FormatQuietResult formats a result for quiet mode output: a single line
// suitable for scripting, with no surrounding commentary.
func FormatQuietResult(result string) string {
	return result
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, result string) {
	fmt.Fprintln(out, FormatQuietResult(result))
}

// DisplayResult writes a full, human-facing rendering of an operation's
// result: the operation name, duration, and the result itself (truncated
// unless verbose is set).
func DisplayResult(out io.Writer, operation, result string, duration time.Duration, verbose bool) {
	shown, truncated := result, false
	if !verbose {
		shown, truncated = truncate(result)
	}
	fmt.Fprintf(out, "%s%s%s: %s\n", ui.ColorGreen(), operation, ui.ColorReset(), shown)
	if truncated {
		fmt.Fprintf(out, "  %s(truncated, %d characters total; use --verbose to see the full value)%s\n",
			ui.ColorYellow(), len(result), ui.ColorReset())
	}
	fmt.Fprintf(out, "  %sduration:%s %s\n", ui.ColorCyan(), ui.ColorReset(), FormatExecutionDuration(duration))
}

// DisplayResultWithConfig displays a result with the given output
// configuration, handling quiet mode and optional file output.
func DisplayResultWithConfig(out io.Writer, operation, result string, duration time.Duration, alphabet string, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, result)
	} else {
		DisplayResult(out, operation, result, duration, config.Verbose)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(result, operation, duration, alphabet, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}
