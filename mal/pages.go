package mal

import (
	"fmt"
	"html"
	"net/http"
)

const callbackPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%[1]s</title>
    <style>
        body { margin: 0; background-color: #0f0f11; color: #ffffff; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; display: flex; justify-content: center; align-items: center; height: 100vh; text-align: center; }
        h1 { font-size: 24px; font-weight: 500; margin-bottom: 8px; color: %[3]s; }
        p { font-size: 15px; color: #88888b; }
    </style>
</head>
<body>
    <div>
        <h1>%[1]s</h1>
        <p>%[2]s</p>
    </div>
</body>
</html>`

func writePage(w http.ResponseWriter, status int, title, message string) {
	accent := "#2e51a2"
	if status >= 400 {
		accent = "#ff5555"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, callbackPage, html.EscapeString(title), html.EscapeString(message), accent)
}
