// keybridge-trace is a manual testing tool for the key event listener.
//
// It reads a small event script, drives a scripted keyboard device
// through tick cycles, and prints every event the listener emits. With
// tracing enabled in the config, events are also recorded to SQLite.
//
// Usage:
//
//	keybridge-trace [-config keybridge.toml] [-script events.txt]
//
// Script commands, one per line ('#' starts a comment):
//
//	press <key>      mark a key newly pressed (ArrowDown, Shift, a, ...)
//	release <key>    mark a key newly released
//	tick [n]         run n poll cycles (default 1)
//	type <text>      deliver each rune as a character-typed callback
//	compose [text]   deliver a composition change; no text ends composition
//	wait <duration>  sleep, letting the repeat timer fire (e.g. 600ms)
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"keybridge/internal/config"
	"keybridge/internal/device"
	"keybridge/internal/ime"
	"keybridge/internal/key"
	"keybridge/internal/listener"
	"keybridge/internal/logging"
	"keybridge/internal/metrics"
	"keybridge/internal/trace"
)

func main() {
	configPath := flag.String("config", "keybridge.toml", "path to the configuration file")
	scriptPath := flag.String("script", "", "event script to run (default stdin)")
	flag.Parse()

	if err := run(*configPath, *scriptPath); err != nil {
		fmt.Fprintf(os.Stderr, "keybridge-trace: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, scriptPath string) error {
	loader := config.NewLoader(configPath)
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	logCfg, err := cfg.Logging.LoggerConfig()
	if err != nil {
		return err
	}
	log, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	defer log.Close()
	logging.SetDefault(log)

	// Interactive stdin sessions can run long; tell the user when the
	// config changes under them instead of silently ignoring the edit.
	loader.OnChange(func(*config.Config) {
		log.Info("configuration file changed on disk; restart to apply")
	})
	if err := loader.Watch(); err != nil {
		log.Warn("config watch unavailable", "error", err)
	} else {
		defer loader.Close()
		go func() {
			for err := range loader.Errors() {
				log.Warn("config reload failed", "error", err)
			}
		}()
	}

	gateMode, err := cfg.IME.GateMode()
	if err != nil {
		return err
	}

	caps := ime.HostCapabilities{Engine: cfg.IME.EngineVersion()}
	log.Info("host", "os", caps.OS(), "osVersion", caps.OSVersion())

	var sink listener.Sink = &printSink{w: os.Stdout}
	if cfg.Trace.Enabled {
		rec, err := trace.Open(cfg.Trace.DBPath, sink)
		if err != nil {
			return err
		}
		defer func() {
			if n, err := rec.Count(); err == nil {
				log.Info("trace recorded", "events", n, "path", cfg.Trace.DBPath)
			}
			rec.Close()
		}()
		sink = rec
	}

	reg := metrics.NewRegistry()
	sink = metrics.NewEventCounter(reg, sink)
	defer func() {
		for name, v := range reg.Snapshot() {
			if v > 0 {
				log.Info("event count", "metric", name, "value", v)
			}
		}
	}()

	dev := device.NewScriptedDevice()
	l := listener.New(listener.Options{
		Device:             dev,
		Sink:               sink,
		Capabilities:       caps,
		IMEMode:            gateMode,
		RepeatInitialDelay: cfg.Repeat.InitialDelay(),
		RepeatInterval:     cfg.Repeat.Interval(),
		Logger:             log,
	})
	defer l.Close()

	script := os.Stdin
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return err
		}
		defer f.Close()
		script = f
	}

	return runScript(script, l, dev)
}

func runScript(r io.Reader, l *listener.Listener, dev *device.ScriptedDevice) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := runCommand(line, l, dev); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

func runCommand(line string, l *listener.Listener, dev *device.ScriptedDevice) error {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "press", "release":
		codes, err := codesForArg(arg)
		if err != nil {
			return err
		}
		if cmd == "press" {
			dev.Press(codes[0])
		} else {
			dev.Release(codes[0])
		}

	case "tick":
		n := 1
		if arg != "" {
			var err error
			if n, err = strconv.Atoi(arg); err != nil || n < 1 {
				return fmt.Errorf("bad tick count %q", arg)
			}
		}
		for i := 0; i < n; i++ {
			l.Tick()
			dev.EndTick()
		}

	case "type":
		if arg == "" {
			return fmt.Errorf("type needs text")
		}
		for _, r := range arg {
			dev.Type(r)
		}

	case "compose":
		dev.Compose(arg)

	case "wait":
		d, err := time.ParseDuration(arg)
		if err != nil {
			return fmt.Errorf("bad wait duration %q", arg)
		}
		time.Sleep(d)

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// codesForArg resolves a key argument: a canonical name ("ArrowDown",
// "Shift") or a single character ("a"). "Meta" resolves to this
// platform's pair so pressing codes[0] lands on a code the device layer
// reports here.
func codesForArg(arg string) ([]key.Code, error) {
	if arg == "" {
		return nil, fmt.Errorf("missing key name")
	}
	if arg == key.NameMeta {
		return key.MetaCodes(), nil
	}
	if codes, ok := key.CodesForName(arg); ok {
		return codes, nil
	}
	return nil, fmt.Errorf("unknown key %q", arg)
}

// printSink writes each emitted event as one line.
type printSink struct {
	w io.Writer
}

func (s *printSink) KeyDown(ev key.Event) {
	fmt.Fprintf(s.w, "down  %s\n", ev)
}

func (s *printSink) KeyUp(ev key.Event) {
	fmt.Fprintf(s.w, "up    %s\n", ev)
}

func (s *printSink) CompositionChanged(text string) {
	fmt.Fprintf(s.w, "ime   changed %q\n", text)
}

func (s *printSink) CompositionFinished(text string) {
	fmt.Fprintf(s.w, "ime   finished %q\n", text)
}

func (s *printSink) CompositionCancelled() {
	fmt.Fprintf(s.w, "ime   cancelled\n")
}
