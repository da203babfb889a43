package colors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.lines = append(r.lines, "debug:"+msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.lines = append(r.lines, "info:"+msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.lines = append(r.lines, "warn:"+msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.lines = append(r.lines, "error:"+msg) }

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	origOut, origErr := stdout, stderr
	SetOutput(&out, &errOut)
	t.Cleanup(func() { SetOutput(origOut, origErr) })
	return &out, &errOut
}

func TestPrinters(t *testing.T) {
	out, errOut := captureOutput(t)

	Info("hello", "world")
	Success("done")
	Warning("careful")
	Error("broken")

	assert.Contains(t, out.String(), "hello world")
	assert.Contains(t, out.String(), checkmark+Reset+" done")
	assert.Contains(t, errOut.String(), "Warning:"+Reset+" careful")
	assert.Contains(t, errOut.String(), "Error:"+Reset+" broken")
}

func TestDebugRespectsFlag(t *testing.T) {
	_, errOut := captureOutput(t)
	orig := debugEnabled
	defer SetDebug(orig)

	SetDebug(false)
	Debug("hidden")
	assert.NotContains(t, errOut.String(), "hidden")

	SetDebug(true)
	Debug("visible")
	assert.Contains(t, errOut.String(), "visible")
}

func TestQuietStillMirrorsToLogger(t *testing.T) {
	out, _ := captureOutput(t)
	rec := &recordingLogger{}
	SetLogger(rec)
	SetQuiet(true)
	defer func() {
		SetQuiet(false)
		SetLogger(nil)
	}()

	Info("from dashboard")
	Warning("slow pdf")

	assert.Empty(t, out.String())
	assert.Equal(t, []string{"info:from dashboard", "warn:slow pdf"}, rec.lines)
}
