package main

import (
	"bytes"
	"strings"
	"testing"

	"keybridge/internal/device"
	"keybridge/internal/ime"
	"keybridge/internal/key"
	"keybridge/internal/listener"
)

func newScriptHarness(t *testing.T) (*listener.Listener, *device.ScriptedDevice, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	dev := device.NewScriptedDevice()
	l := listener.New(listener.Options{
		Device:  dev,
		Sink:    &printSink{w: &buf},
		IMEMode: ime.ModeEnabled,
	})
	t.Cleanup(l.Close)
	return l, dev, &buf
}

func TestRunScriptBasic(t *testing.T) {
	l, dev, buf := newScriptHarness(t)

	script := `
# press an arrow and release it
press ArrowDown
tick
release ArrowDown
tick
type !
compose ni
compose
`
	if err := runScript(strings.NewReader(script), l, dev); err != nil {
		t.Fatalf("runScript: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"down  ArrowDown",
		"up    ArrowDown",
		"down  !",
		"up    !",
		`ime   changed "ni"`,
		"ime   cancelled",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunScriptErrors(t *testing.T) {
	l, dev, _ := newScriptHarness(t)

	tests := []string{
		"press NoSuchKey",
		"tick zero",
		"tick 0",
		"type",
		"wait soon",
		"launch missiles",
	}
	for _, script := range tests {
		if err := runScript(strings.NewReader(script), l, dev); err == nil {
			t.Errorf("script %q: expected error", script)
		}
	}
}

func TestRunScriptMeta(t *testing.T) {
	l, dev, buf := newScriptHarness(t)

	script := `
press Meta
tick
release Meta
tick
`
	if err := runScript(strings.NewReader(script), l, dev); err != nil {
		t.Fatalf("runScript: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"down  Meta", "up    Meta"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCodesForArg(t *testing.T) {
	if _, err := codesForArg("a"); err != nil {
		t.Errorf("single character should resolve: %v", err)
	}
	if _, err := codesForArg("Enter"); err != nil {
		t.Errorf("named key should resolve: %v", err)
	}
	if _, err := codesForArg(""); err == nil {
		t.Error("empty arg should fail")
	}

	// "Meta" must land on a code this platform's modifier poll watches.
	codes, err := codesForArg("Meta")
	if err != nil {
		t.Fatalf("Meta should resolve: %v", err)
	}
	if codes[0] != key.MetaCodes()[0] {
		t.Errorf("codesForArg(Meta)[0] = %v, want %v", codes[0], key.MetaCodes()[0])
	}
}
