package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessageAndKind(t *testing.T) {
	cause := stderrors.New("context deadline exceeded")
	err := ForItem(KindRender, "render pdf", "b.pdf", cause)

	assert.Equal(t, "render pdf b.pdf: render failure: context deadline exceeded", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrRender)
	assert.NotErrorIs(t, err, ErrNetwork)

	wrapped := fmt.Errorf("batch 2: %w", err)
	assert.Equal(t, KindRender, KindOf(wrapped))
	assert.Equal(t, KindUnknown, KindOf(cause))
}

func TestLoadError(t *testing.T) {
	err := LoadError("list certificates", "unexpected status %d", 502)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, "list certificates: network failure: unexpected status 502", err.Error())
}

type recordingOutput struct {
	calls []string
}

func (r *recordingOutput) Error(msgs ...string)   { r.calls = append(r.calls, "error:"+msgs[0]) }
func (r *recordingOutput) Warning(msgs ...string) { r.calls = append(r.calls, "warning:"+msgs[0]) }
func (r *recordingOutput) Info(msgs ...string)    { r.calls = append(r.calls, "info:"+msgs[0]) }
func (r *recordingOutput) Success(msgs ...string) { r.calls = append(r.calls, "success:"+msgs[0]) }

func TestReportRoutesByKind(t *testing.T) {
	out := &recordingOutput{}
	h := NewCLIHandler(out)

	Report(h, New(KindAutoplay, "play", stderrors.New("no player")))
	Report(h, New(KindNetwork, "list videos", stderrors.New("refused")))
	Report(h, nil)
	h.Success("ok")

	assert.Equal(t, []string{
		"warning:play: autoplay blocked: no player",
		"error:list videos: network failure: refused",
		"success:ok",
	}, out.calls)
}

func TestTUIHandler(t *testing.T) {
	var seen []Message
	h := NewTUIHandler(func(msg Message) { seen = append(seen, msg) })
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }

	_, ok := h.GetLatest()
	require.False(t, ok)

	h.Warning("slow")
	h.Error("broken")
	latest, ok := h.GetLatest()
	require.True(t, ok)
	assert.Equal(t, "broken", latest.Text)
	assert.Equal(t, MessageTypeError, latest.Type)
	assert.Len(t, seen, 2)

	_, ok = h.Latest(time.Second)
	assert.True(t, ok)
	now = now.Add(2 * time.Second)
	_, ok = h.Latest(time.Second)
	assert.False(t, ok)

	for i := 0; i < maxTUIMessages+10; i++ {
		h.Info("tick")
	}
	assert.Len(t, h.GetAll(), maxTUIMessages)

	h.Clear()
	assert.Empty(t, h.GetAll())
}
