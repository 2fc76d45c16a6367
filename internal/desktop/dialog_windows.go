//go:build windows
// +build windows

package desktop

import (
	"io"
	"syscall"
	"unsafe"
)

var (
	user32      = syscall.NewLazyDLL("user32.dll")
	messageBoxW = user32.NewProc("MessageBoxW")
)

const (
	MB_OK              = 0x00000000
	MB_ICONWARNING     = 0x00000030
	MB_ICONINFORMATION = 0x00000040
)

func showWarning(_ io.Writer, title, message string) {
	showMessageBox(title, message, MB_OK|MB_ICONWARNING)
}

func showMessageBox(title, message string, flags uintptr) {
	titlePtr, _ := syscall.UTF16PtrFromString(title)
	messagePtr, _ := syscall.UTF16PtrFromString(message)
	messageBoxW.Call(
		0,
		uintptr(unsafe.Pointer(messagePtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		flags,
	)
}
