package desktop

import _ "embed"

//go:embed icon.ico
var trayIcon []byte
