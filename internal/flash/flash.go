// Package flash implements one-shot status messages carried in a short-lived
// cookie. A message set during one request is read and cleared by the next
// view that renders it, mirroring the flash mechanism of classic web stacks.
package flash

import (
	"net/http"
	"net/url"
)

const cookieName = "flash"

// Set stores a flash message for the next request
func Set(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		MaxAge:   300, // expires on its own if never rendered
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop reads the pending flash message, clears it, and reports whether one was set
func Pop(w http.ResponseWriter, r *http.Request) (string, bool) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return "", false
	}

	message, err := url.QueryUnescape(cookie.Value)
	if err != nil || message == "" {
		return "", false
	}

	// Clear the cookie so the message shows only once
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return message, true
}
