package shared

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/form"
	"github.com/gorilla/mux"

	"github.com/jobsboard/web/pkg/htmx"
)

var Decoder = form.NewDecoder()

func init() {
	Decoder.SetTagName("form")
}

// Redirect sends the browser to path. HTMX requests get Hx-Redirect so the
// whole page is replaced rather than swapped into a target.
func Redirect(w http.ResponseWriter, r *http.Request, path string) {
	if htmx.IsHxRequest(r) {
		htmx.Redirect(w, path)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// ParseID returns the {id} route variable.
func ParseID(r *http.Request) (string, bool) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	return id, id != ""
}

// SetFlash stores a one-shot value read back by composables.UseFlash.
func SetFlash(w http.ResponseWriter, name string, value []byte) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    base64.URLEncoding.EncodeToString(value),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func SetFlashMap[K comparable, V any](w http.ResponseWriter, name string, value map[K]V) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	SetFlash(w, name, payload)
}

// ToastFlash is the flash cookie the layout turns into a toast.
const ToastFlash = "toast"

// FlashToast shows message on the next full page, which is what a redirect
// needs.
func FlashToast(w http.ResponseWriter, variant htmx.ToastVariant, message string) {
	SetFlashMap(w, ToastFlash, map[string]string{
		"variant": string(variant),
		"message": message,
	})
}

// Toast shows message on the current page for HTMX requests and on the next
// full page otherwise.
func Toast(w http.ResponseWriter, r *http.Request, variant htmx.ToastVariant, message string) {
	if htmx.IsHxRequest(r) {
		htmx.ShowToast(w, variant, message)
		return
	}
	FlashToast(w, variant, message)
}
