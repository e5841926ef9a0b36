package mhaksa

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"ajou-backend/lib/browser"

	"go.opentelemetry.io/otel/codes"
)

// session cookie set by the portal
const SessionCookie = "JSESSIONID"

// the post-login cookie embeds the servlet route of the authenticated
// area. a cookie without it belongs to the pre-auth page and yields
// empty payloads.
const TokenMarker = "chusa_servlet_HAKSA01"

var (
	ErrTokenNotFound      = errors.New("session cookie not found after login")
	ErrTokenNotValid      = errors.New("session cookie never passed the authenticated-area check")
	ErrMissingCredentials = errors.New("portal credentials are not set")
)

// bounded replacement for what would otherwise be an endless wait on
// the SSO backend to settle the cookie
const tokenValidationAttempts = 30

type LoginOptions struct {
	// portal entry point, also the post-login home url
	EntryUrl string
	// where the SSO handshake parks unauthenticated visitors
	SsoLoginUrl string
	HomeUrl     string

	Username string
	Password string

	// upper bound for each url-transition poll
	RedirectWait time.Duration

	Browser browser.Options
}

// tokenValid is the content predicate a returned session token always
// satisfies.
func tokenValid(token string) bool {
	return strings.Contains(token, TokenMarker)
}

// AcquireSession drives a browser through the SSO login handshake and
// returns a validated session token. The browser is torn down on every
// exit path, the token is the only thing that survives.
func AcquireSession(ctx context.Context, opts LoginOptions) (string, error) {
	ctx, span := tracer.Start(ctx, "AcquireSession")
	defer span.End()

	if opts.Username == "" || opts.Password == "" {
		return "", ErrMissingCredentials
	}
	if opts.RedirectWait == 0 {
		opts.RedirectWait = time.Second * 5
	}
	if opts.Browser.UserAgent == "" {
		opts.Browser.UserAgent = UserAgent
	}

	handle, err := browser.Launch(ctx, opts.Browser)
	if err != nil {
		span.SetStatus(codes.Error, "browser launch failed")
		return "", err
	}
	defer handle.Close()

	err = handle.Navigate(opts.EntryUrl, time.Second*5)
	if err != nil {
		span.SetStatus(codes.Error, "failed to open portal entry")
		return "", err
	}

	redirected, err := handle.WaitForURL(opts.SsoLoginUrl, opts.RedirectWait)
	if err != nil {
		return "", err
	}
	if redirected {
		err = loginIfNeeded(handle, opts)
		if err != nil {
			span.SetStatus(codes.Error, "login failed")
			return "", err
		}
	}
	// not redirected: the cached profile still holds a live session

	_, err = handle.WaitForURL(opts.HomeUrl, opts.RedirectWait)
	if err != nil {
		return "", err
	}

	token, found, err := handle.Cookie(SessionCookie)
	if err != nil {
		return "", err
	}
	if !found {
		span.SetStatus(codes.Error, "session cookie missing")
		return "", ErrTokenNotFound
	}

	// the SSO backend sets a preliminary cookie first, poll until the
	// post-login value lands
	for attempt := 0; !tokenValid(token); attempt++ {
		if attempt >= tokenValidationAttempts {
			span.SetStatus(codes.Error, "token validation attempts exhausted")
			return "", ErrTokenNotValid
		}

		_, err = handle.WaitForURL(opts.HomeUrl, time.Second)
		if err != nil {
			return "", err
		}
		token, found, err = handle.Cookie(SessionCookie)
		if err != nil {
			return "", err
		}
		if !found {
			return "", ErrTokenNotFound
		}
	}

	slog.DebugContext(ctx, "session acquired")
	return token, nil
}

// loginIfNeeded fills the SSO form when it is actually shown. A missing
// username input means the handshake already went through, not an error.
func loginIfNeeded(handle *browser.Handle, opts LoginOptions) error {
	present, err := handle.HasElement("input#userId")
	if err != nil {
		return err
	}
	if !present {
		return nil
	}

	err = handle.Type("input#userId", opts.Username)
	if err != nil {
		return err
	}
	err = handle.Type("input#password", opts.Password)
	if err != nil {
		return err
	}
	return handle.Click("a#loginSubmit")
}
