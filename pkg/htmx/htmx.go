// Package htmx reads and writes the HTMX request and response headers.
package htmx

import (
	"encoding/json"
	"net/http"
)

func IsHxRequest(r *http.Request) bool {
	return r.Header.Get("Hx-Request") == "true"
}

// IsBoosted reports a request made by an hx-boost link or form.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get("Hx-Boosted") == "true"
}

// Target returns the id of the element the response will be swapped into.
func Target(r *http.Request) string {
	return r.Header.Get("Hx-Target")
}

func CurrentUrl(r *http.Request) string {
	return r.Header.Get("Hx-Current-Url")
}

func PushUrl(w http.ResponseWriter, url string) {
	w.Header().Set("Hx-Push-Url", url)
}

func ReplaceUrl(w http.ResponseWriter, url string) {
	w.Header().Set("Hx-Replace-Url", url)
}

// Redirect asks the browser to do a full client side redirect.
func Redirect(w http.ResponseWriter, url string) {
	w.Header().Set("Hx-Redirect", url)
}

// Refresh asks the browser to reload the current page.
func Refresh(w http.ResponseWriter) {
	w.Header().Set("Hx-Refresh", "true")
}

func Retarget(w http.ResponseWriter, selector string) {
	w.Header().Set("Hx-Retarget", selector)
}

func Reswap(w http.ResponseWriter, swap string) {
	w.Header().Set("Hx-Reswap", swap)
}

// SetTrigger adds a client event to the response. Multiple events are merged
// into one Hx-Trigger header.
func SetTrigger(w http.ResponseWriter, event string, detail any) {
	events := map[string]any{}
	if existing := w.Header().Get("Hx-Trigger"); existing != "" {
		_ = json.Unmarshal([]byte(existing), &events)
	}
	events[event] = detail
	payload, err := json.Marshal(events)
	if err != nil {
		return
	}
	w.Header().Set("Hx-Trigger", string(payload))
}

type ToastVariant string

const (
	ToastSuccess ToastVariant = "success"
	ToastError   ToastVariant = "error"
)

type Toast struct {
	Variant ToastVariant `json:"variant"`
	Message string       `json:"message"`
}

// ShowToast triggers the "toast" event handled by the page script.
func ShowToast(w http.ResponseWriter, variant ToastVariant, message string) {
	SetTrigger(w, "toast", Toast{Variant: variant, Message: message})
}
