package viewkit

import (
	"net/http"
	"net/url"

	"github.com/starfederation/datastar-go/datastar"
)

// redirectResponse handles redirects for both Datastar and plain requests.
type redirectResponse struct {
	url  string
	code int
}

func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if IsDataStar(req) {
		sse := datastar.NewSSE(w, req)
		return sse.Redirect(r.url)
	}
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect creates a redirect response with status 303 (See Other). Datastar
// requests get a client-side redirect over SSE; plain requests a standard
// HTTP redirect.
//
// Example:
//
//	return viewkit.Redirect("/gallery/datepicker")
func Redirect(url string) Response {
	return redirectResponse{
		url:  url,
		code: http.StatusSeeOther,
	}
}

// RedirectWithCode creates a redirect response with a specific status code.
func RedirectWithCode(url string, code int) Response {
	return redirectResponse{
		url:  url,
		code: code,
	}
}

// redirectBackResponse redirects to the referrer.
type redirectBackResponse struct {
	fallback string
	code     int
}

func (r redirectBackResponse) Render(w http.ResponseWriter, req *http.Request) error {
	referer := req.Header.Get("Referer")
	targetURL := r.fallback

	if referer != "" && isValidRedirectURL(referer, req) {
		targetURL = referer
	}

	if IsDataStar(req) {
		sse := datastar.NewSSE(w, req)
		return sse.Redirect(targetURL)
	}

	http.Redirect(w, req, targetURL, r.code)
	return nil
}

// RedirectBack redirects to the referrer, or to the fallback URL when the
// referrer is missing or from another host. Uses status 303 (See Other).
func RedirectBack(fallback string) Response {
	return redirectBackResponse{
		fallback: fallback,
		code:     http.StatusSeeOther,
	}
}

// RedirectBackWithCode is RedirectBack with a specific status code.
func RedirectBackWithCode(fallback string, code int) Response {
	return redirectBackResponse{
		fallback: fallback,
		code:     code,
	}
}

// isValidRedirectURL permits only same-host or relative redirect targets.
func isValidRedirectURL(urlStr string, r *http.Request) bool {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	return parsed.Host == "" || parsed.Host == r.Host
}
