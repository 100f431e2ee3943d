//go:build windows

package dispatch

import (
	"context"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/rgould/autonudge/internal/errors"
)

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

const (
	inputKeyboard    = 1
	keyEventfKeyUp   = 0x0002
	keyEventfUnicode = 0x0004
	vkReturn         = 0x0D
)

// keybdInput mirrors KEYBDINPUT.
type keybdInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

// input mirrors the INPUT struct for keyboard events. The trailing pad
// brings the union up to MOUSEINPUT size on 64-bit Windows.
type input struct {
	inputType uint32
	_         uint32
	ki        keybdInput
	_         [8]byte
}

// sendInputInjector types the response via user32 SendInput.
type sendInputInjector struct {
	response string
}

func forHost(response string) Dispatcher {
	return &sendInputInjector{response: response}
}

func (s *sendInputInjector) SendConfirmation(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Failed, errors.WrapDispatchError(err, "windows")
	}

	var events []input
	for _, r := range s.response {
		events = append(events,
			input{inputType: inputKeyboard, ki: keybdInput{wScan: uint16(r), dwFlags: keyEventfUnicode}},
			input{inputType: inputKeyboard, ki: keybdInput{wScan: uint16(r), dwFlags: keyEventfUnicode | keyEventfKeyUp}},
		)
	}
	events = append(events,
		input{inputType: inputKeyboard, ki: keybdInput{wVk: vkReturn}},
		input{inputType: inputKeyboard, ki: keybdInput{wVk: vkReturn, dwFlags: keyEventfKeyUp}},
	)

	sent, _, callErr := procSendInput.Call(
		uintptr(len(events)),
		uintptr(unsafe.Pointer(&events[0])),
		unsafe.Sizeof(events[0]),
	)
	if int(sent) != len(events) {
		return Failed, errors.WrapDispatchError(
			fmt.Errorf("SendInput delivered %d of %d events: %v", sent, len(events), callErr),
			"windows")
	}
	return Sent, nil
}
