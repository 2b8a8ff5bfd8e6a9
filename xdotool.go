package main

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// InputTool abstracts the X11 automation commands this program needs: window
// search plus synthetic key, button and pointer events.
type InputTool interface {
	Search(title string, onlyVisible bool) ([]string, error)
	Key(window, key string, count int, clearModifiers bool) error
	Click(window, button string, count int) error
	MoveRelative(dx, dy int) error
}

// XDoTool shells out to the xdotool binary.
type XDoTool struct {
	// output runs a command and returns its stdout. Swapped out in tests.
	output func(name string, args ...string) ([]byte, error)
}

func NewXDoTool() *XDoTool {
	return &XDoTool{
		output: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).Output()
		},
	}
}

// Search lists the IDs of windows whose title matches, one per output line,
// in the order xdotool reports them.
func (x *XDoTool) Search(title string, onlyVisible bool) ([]string, error) {
	args := []string{"search"}
	if onlyVisible {
		args = append(args, "--onlyvisible")
	}
	args = append(args, "--name", title)
	out, err := x.output("xdotool", args...)
	if err != nil {
		return nil, fmt.Errorf("xdotool search: %w", err)
	}
	var ids []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			ids = append(ids, line)
		}
	}
	return ids, nil
}

// Key sends count presses of an X keysym to the window.
func (x *XDoTool) Key(window, key string, count int, clearModifiers bool) error {
	args := []string{"key", "--window", window}
	if clearModifiers {
		args = append(args, "--clearmodifiers")
	}
	args = append(args, "--repeat", strconv.Itoa(count), key)
	if _, err := x.output("xdotool", args...); err != nil {
		return fmt.Errorf("xdotool key %s: %w", key, err)
	}
	return nil
}

// Click sends count clicks of a pointer button to the window.
func (x *XDoTool) Click(window, button string, count int) error {
	args := []string{"click", "--window", window, "--repeat", strconv.Itoa(count), button}
	if _, err := x.output("xdotool", args...); err != nil {
		return fmt.Errorf("xdotool click %s: %w", button, err)
	}
	return nil
}

// MoveRelative moves the pointer by (dx, dy) pixels. The "--" keeps negative
// deltas from being parsed as flags.
func (x *XDoTool) MoveRelative(dx, dy int) error {
	_, err := x.output("xdotool", "mousemove_relative", "--", strconv.Itoa(dx), strconv.Itoa(dy))
	if err != nil {
		return fmt.Errorf("xdotool mousemove_relative: %w", err)
	}
	return nil
}
