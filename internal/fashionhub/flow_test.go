package fashionhub

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlow() (*flow, *bytes.Buffer) {
	var buf bytes.Buffer
	site := &Site{Logger: slog.New(slog.NewTextHandler(&buf, nil))}
	return &flow{site: site}, &buf
}

func TestFlow_FirstErrorSticks(t *testing.T) {
	f, logs := newTestFlow()
	errTimeout := errors.New("locator timed out")

	var ran []string
	f.do("fill username", func() error { ran = append(ran, "username"); return nil })
	f.do("click login", func() error { ran = append(ran, "login"); return errTimeout })
	f.do("expect welcome heading visible", func() error { ran = append(ran, "heading"); return nil })

	assert.Equal(t, []string{"username", "login"}, ran)
	require.ErrorIs(t, f.Err(), errTimeout)
	assert.EqualError(t, f.Err(), "click login: locator timed out")
	assert.Contains(t, logs.String(), "page step failed")
	assert.Contains(t, logs.String(), `step="click login"`)
}

func TestFlow_NoError(t *testing.T) {
	f, logs := newTestFlow()
	f.do("goto", func() error { return nil })

	assert.NoError(t, f.Err())
	assert.Empty(t, logs.String())
}

func TestFlow_SharedByHeader(t *testing.T) {
	f, _ := newTestFlow()
	h := &HeaderPanel{flow: f}

	h.do("click About", func() error { return errors.New("detached") })
	assert.Error(t, f.Err())
	assert.Same(t, f, h.flow)
}

func TestScreenshotName(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 5, 0, time.UTC)

	assert.Equal(t, "20260301T093005-click-login.png", screenshotName("click login", at))
	assert.Equal(t,
		"20260301T093005-goto-https-pocketaces2-github-io-fashionhub.png",
		screenshotName("goto https://pocketaces2.github.io/fashionhub/", at))
}
