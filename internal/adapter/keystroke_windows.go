//go:build windows

package adapter

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	m "here.dev/pkg/here/internal/model"
)

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

const (
	inputKeyboard    = 1
	keyeventfKeyup   = 0x0002
	keyeventfUnicode = 0x0004
	vkReturn         = 0x0D
)

// keyboardInput mirrors the KEYBDINPUT structure.
type keyboardInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

// input mirrors the INPUT structure. The trailing padding keeps the size at
// 40 bytes on amd64, the size of the full MOUSEINPUT union member.
type input struct {
	inputType uint32
	ki        keyboardInput
	padding   [8]byte
}

// ConsoleInjector types the command into the foreground console using
// SendInput unicode events. The console delivers the characters to the shell
// once this process exits.
type ConsoleInjector struct{}

// NewPlatformKeystrokeEmitter returns the KeystrokeEmitter for the build
// platform.
func NewPlatformKeystrokeEmitter() KeystrokeEmitter {
	return &ConsoleInjector{}
}

// EmitChangeDirectory queues `cd <path>` followed by an Enter keystroke.
func (e *ConsoleInjector) EmitChangeDirectory(path m.Path) error {
	line := "cd " + string(path)

	events := make([]input, 0, len(line)*2+2)
	for _, r := range line {
		events = append(events, unicodeKey(uint16(r), 0), unicodeKey(uint16(r), keyeventfKeyup))
	}

	events = append(events, virtualKey(vkReturn, 0), virtualKey(vkReturn, keyeventfKeyup))

	sent, _, callErr := procSendInput.Call(
		uintptr(len(events)),
		uintptr(unsafe.Pointer(&events[0])),
		unsafe.Sizeof(events[0]),
	)
	if int(sent) != len(events) {
		return fmt.Errorf("queue keystrokes: %w", callErr)
	}

	return nil
}

func unicodeKey(scan uint16, flags uint32) input {
	return input{
		inputType: inputKeyboard,
		ki: keyboardInput{
			wScan:   scan,
			dwFlags: keyeventfUnicode | flags,
		},
	}
}

func virtualKey(vk uint16, flags uint32) input {
	return input{
		inputType: inputKeyboard,
		ki: keyboardInput{
			wVk:     vk,
			dwFlags: flags,
		},
	}
}
