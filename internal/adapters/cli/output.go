package cli

import (
	"fmt"
	"io"
	"os"
)

type Output struct {
	out          io.Writer
	errOut       io.Writer
	enableColors bool
}

func NewOutput() *Output {
	return &Output{
		out:          os.Stdout,
		errOut:       os.Stderr,
		enableColors: isTerminal(),
	}
}

// NewWriterOutput writes both streams to w without colors.
func NewWriterOutput(w io.Writer) *Output {
	return &Output{out: w, errOut: w}
}

func (o *Output) DisableColors() {
	o.enableColors = false
}

func (o *Output) Green(text string) string {
	return o.color("32", text)
}

func (o *Output) Yellow(text string) string {
	return o.color("33", text)
}

func (o *Output) Red(text string) string {
	return o.color("31", text)
}

func (o *Output) Gray(text string) string {
	return o.color("90", text)
}

func (o *Output) color(code, text string) string {
	if !o.enableColors {
		return text
	}
	return "\033[" + code + "m" + text + "\033[0m"
}

func (o *Output) PrintHeader(msg string) {
	_, _ = fmt.Fprintln(o.out, msg)
	_, _ = fmt.Fprintln(o.out)
}

func (o *Output) PrintStep(emoji, msg string, args ...any) {
	prefix := "  "
	if emoji != "" {
		prefix += emoji + " "
	}
	_, _ = fmt.Fprintf(o.out, prefix+msg+"\n", args...)
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	_, _ = fmt.Fprintf(o.out, "  "+o.Green("✓ ")+"%s\n", fmt.Sprintf(msg, args...))
}

func (o *Output) PrintWarning(msg string, args ...any) {
	_, _ = fmt.Fprintf(o.out, "  "+o.Yellow("⚠ ")+"%s\n", fmt.Sprintf(msg, args...))
}

func (o *Output) PrintError(msg string, args ...any) {
	_, _ = fmt.Fprintf(o.errOut, "  "+o.Red("✗ ")+"%s\n", fmt.Sprintf(msg, args...))
}

func (o *Output) PrintFile(path string) {
	_, _ = fmt.Fprintf(o.out, "    %s\n", o.Gray(path))
}

func (o *Output) PrintDone(msg string) {
	_, _ = fmt.Fprintln(o.out, msg)
}

func isTerminal() bool {
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}
